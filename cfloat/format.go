package cfloat

import (
	"fmt"
	"io"
)

// String formats x like x.Text('g', 10) for each part, as "(re im)".
func (x *Complex) String() string {
	return "(" + x.re.Text('g', 10) + " " + x.im.Text('g', 10) + ")"
}

// Format implements fmt.Formatter. Each part is formatted with
// big.Float.Format and the result is written as "(re im)".
func (x *Complex) Format(s fmt.State, format rune) {
	if format == 's' {
		format = 'g'
	}
	io.WriteString(s, "(")
	x.re.Format(s, format)
	io.WriteString(s, " ")
	x.im.Format(s, format)
	io.WriteString(s, ")")
}
