// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ball

import (
	"math/bits"

	"github.com/db47h/ball/cfloat"
)

// DefaultPrec is the working precision of operations whose operands all have
// precision 0.
const DefaultPrec = 64

// A Ball is a complex ball: a centre c, which is a multi-precision complex
// number, and a relative radius r. The ball represents the unknown complex
// value t it is known to enclose:
//
//	|t - c| ≤ r × |c|
//
// where |·| is the Euclidean norm. A zero radius means that c is exact, and an
// infinite radius that nothing is known about t.
//
// The zero value for a Ball is an exact 0 with precision 0.
type Ball struct {
	c cfloat.Complex
	r Radius
}

// New returns a new Ball with centre 0 at precision prec and an infinite
// radius.
func New(prec uint) *Ball {
	return new(Ball).SetPrec(prec)
}

// NewComplex returns a new exact Ball with centre c. The centre keeps the
// precision of c.
func NewComplex(c *cfloat.Complex) *Ball {
	return new(Ball).SetComplex(c)
}

// SetPrec sets the precision of z's centre to prec and z's radius to +∞, then
// returns z.
func (z *Ball) SetPrec(prec uint) *Ball {
	z.c.SetPrec(prec)
	z.r.SetInf()
	return z
}

// Prec returns the precision of the centre of x: the larger of its real and
// imaginary parts' precisions.
func (x *Ball) Prec() uint {
	return x.c.Prec()
}

// Set sets z to an exact copy of x, precision included, and returns z.
func (z *Ball) Set(x *Ball) *Ball {
	if z != x {
		z.c.Copy(&x.c)
		z.r = x.r
	}
	return z
}

// SetComplex sets z to the exact ball of centre c and returns z. The centre
// keeps the precision of c.
func (z *Ball) SetComplex(c *cfloat.Complex) *Ball {
	z.c.Copy(c)
	z.r.SetZero()
	return z
}

// SetInt64s sets z to the exact ball re + im·i and returns z. The precision of
// the centre is prec, or larger if needed to represent re and im exactly.
func (z *Ball) SetInt64s(re, im int64, prec uint) *Ball {
	if n := intLen(re); n > prec {
		prec = n
	}
	if n := intLen(im); n > prec {
		prec = n
	}
	z.c.SetPrec(prec).SetInt64s(re, im)
	z.r.SetZero()
	return z
}

func intLen(x int64) uint {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	if u == 0 {
		return 1
	}
	return uint(bits.Len64(u) - bits.TrailingZeros64(u))
}

// SetInf sets the radius of z to +∞ and returns z.
func (z *Ball) SetInf() *Ball {
	z.r.SetInf()
	return z
}

// SetRadius sets the radius of z to r and returns z.
func (z *Ball) SetRadius(r *Radius) *Ball {
	z.r = *r
	return z
}

// Centre sets c to the centre of x and returns c. If c is nil, a new Complex
// is allocated.
func (x *Ball) Centre(c *cfloat.Complex) *cfloat.Complex {
	if c == nil {
		c = new(cfloat.Complex)
	}
	return c.Copy(&x.c)
}

// Radius returns the radius of x.
func (x *Ball) Radius() Radius {
	return x.r
}

// IsExact reports whether the radius of x is zero.
func (x *Ball) IsExact() bool {
	return x.r.IsZero()
}

// commit moves the result c, r into z.
func (z *Ball) commit(c *cfloat.Complex, r *Radius) *Ball {
	z.c.Swap(c)
	z.r = *r
	return z
}

// workPrec returns the working precision of an operation on x and y.
func workPrec(x, y *Ball) uint {
	p, q := x.Prec(), y.Prec()
	if p == 0 || q != 0 && q < p {
		p = q
	}
	if p == 0 {
		p = DefaultPrec
	}
	return p
}
