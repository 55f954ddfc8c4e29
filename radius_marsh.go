// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Radius values.

package ball

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const radiusGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Radius) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	sz := 1 + 1 // version + form
	if x.form == finite {
		sz += 4 + 8 // mant + exp
	}
	buf := make([]byte, sz)
	buf[0] = radiusGobVersion
	buf[1] = byte(x.form)
	if x.form == finite {
		binary.BigEndian.PutUint32(buf[2:], uint32(x.mant))
		binary.BigEndian.PutUint64(buf[6:], uint64(x.exp))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Radius) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Radius{}
		return nil
	}
	if buf[0] != radiusGobVersion {
		return fmt.Errorf("Radius.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return fmt.Errorf("Radius.GobDecode: buffer too small")
	}
	switch f := form(buf[1]); f {
	case zero, inf:
		*z = Radius{form: f}
		return nil
	case finite:
		if len(buf) < 14 {
			return fmt.Errorf("Radius.GobDecode: buffer too small for finite radius")
		}
		m := uint64(binary.BigEndian.Uint32(buf[2:]))
		if m < mantMin || m >= mantMax {
			return fmt.Errorf("Radius.GobDecode: mantissa %#x not normalized", m)
		}
		z.mant, z.exp, z.form = m, int64(binary.BigEndian.Uint64(buf[6:])), finite
		return nil
	default:
		return fmt.Errorf("Radius.GobDecode: invalid form %d", f)
	}
}

// MarshalText implements the encoding.TextMarshaler interface. A finite radius
// is written exactly as "mantpexp", for instance "1073741824p-30" for 1. Zero
// and +∞ are written "0" and "+Inf".
func (x *Radius) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.append(nil), nil
}

func (x *Radius) append(buf []byte) []byte {
	switch x.form {
	case zero:
		return append(buf, '0')
	case inf:
		return append(buf, "+Inf"...)
	}
	buf = strconv.AppendUint(buf, x.mant, 10)
	buf = append(buf, 'p')
	return strconv.AppendInt(buf, x.exp, 10)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the output of MarshalText, and more generally any "mpexp" with m a positive
// integer; the result is rounded up.
func (z *Radius) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "0":
		z.SetZero()
		return nil
	case "+Inf", "Inf", "inf":
		z.SetInf()
		return nil
	}
	i := strings.IndexByte(s, 'p')
	if i < 0 {
		return fmt.Errorf("ball: cannot unmarshal %q into a Radius", s)
	}
	m, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return fmt.Errorf("ball: cannot unmarshal %q into a Radius: %w", s, err)
	}
	e, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return fmt.Errorf("ball: cannot unmarshal %q into a Radius: %w", s, err)
	}
	if e > maxRadiusExp || e < -maxRadiusExp {
		return fmt.Errorf("ball: cannot unmarshal %q into a Radius: exponent out of range", s)
	}
	z.mant, z.exp, z.form = m, e, finite
	z.norm(Up)
	return nil
}

// String formats x like x.Float(nil).Text('g', 6).
func (x *Radius) String() string {
	return x.Float(nil).Text('g', 6)
}

// Format implements fmt.Formatter like big.Float. The 's' verb is 'g', and
// the 'v' verb writes the MarshalText form.
func (x *Radius) Format(s fmt.State, format rune) {
	switch format {
	case 'v':
		s.Write(x.append(nil))
		return
	case 's':
		format = 'g'
	}
	x.Float(nil).Format(s, format)
}
