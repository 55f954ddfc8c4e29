package ball

import (
	"fmt"
	"io"
)

// String returns x formatted as "centre ± radius".
func (x *Ball) String() string {
	return x.c.String() + " ± " + x.r.String()
}

// Format implements fmt.Formatter. The format verb and flags apply to the
// centre; the radius is always written like Radius.String.
func (x *Ball) Format(s fmt.State, format rune) {
	x.c.Format(s, format)
	io.WriteString(s, " ± ")
	io.WriteString(s, x.r.String())
}
