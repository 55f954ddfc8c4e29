// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements ball arithmetic. Each operation computes the centre
// with the scalar operation at the working precision, then a radius that
// accounts for the input radii (the generic error) and for the rounding of the
// centre.
//
// Results are computed into temporaries and committed last, so the receiver
// may alias any operand.

package ball

import (
	"math/big"
	"math/bits"

	"github.com/db47h/ball/cfloat"
)

// Neg sets z to -x and returns z. The result is exact.
func (z *Ball) Neg(x *Ball) *Ball {
	var c cfloat.Complex
	c.SetPrec2(x.c.PrecRe(), x.c.PrecIm()).Neg(&x.c, cfloat.ModeNN)
	r := x.r
	return z.commit(&c, &r)
}

// Mul2Exp sets z to x × 2**e and returns z. The result is exact.
func (z *Ball) Mul2Exp(x *Ball, e int) *Ball {
	var c cfloat.Complex
	c.SetPrec2(x.c.PrecRe(), x.c.PrecIm()).SetMantExp(&x.c, e, cfloat.ModeNN)
	r := x.r
	return z.commit(&c, &r)
}

// Quo2Exp sets z to x / 2**e and returns z. The result is exact.
func (z *Ball) Quo2Exp(x *Ball, e int) *Ball {
	return z.Mul2Exp(x, -e)
}

// Mul sets z to the product x×y and returns z.
func (z *Ball) Mul(x, y *Ball) *Ball {
	p := workPrec(x, y)
	var c cfloat.Complex
	c.SetPrec(p).Mul(&x.c, &y.c, cfloat.ModeNN)

	// (1+r1)(1+r2) - 1
	var r Radius
	r.Mul(&x.r, &y.r)
	r.Add(&r, &x.r)
	r.Add(&r, &y.r)
	r.AddRoundingError(&r, p, Nearest)
	return z.commit(&c, &r)
}

// Sqr sets z to x² and returns z.
func (z *Ball) Sqr(x *Ball) *Ball {
	p := workPrec(x, x)
	var c cfloat.Complex
	c.SetPrec(p).Sqr(&x.c, cfloat.ModeNN)

	// (1+r)² - 1
	var r, t Radius
	r.Sqr(&x.r)
	t.Mul2Exp(&x.r, 1)
	r.Add(&r, &t)
	r.AddRoundingError(&r, p, Nearest)
	return z.commit(&c, &r)
}

// Add sets z to the sum x+y and returns z.
//
// The centre is rounded toward zero, which keeps |c| from growing through
// rounding.
func (z *Ball) Add(x, y *Ball) *Ball {
	p := workPrec(x, y)
	var c cfloat.Complex
	c.SetPrec(p).Add(&x.c, &y.c, cfloat.ModeZZ)

	// (|x|·r1 + |y|·r2) / |x+y|
	var r Radius
	if !x.r.IsZero() || !y.r.IsZero() {
		var t, d Radius
		r.SetAbs(&x.c, Up)
		r.Mul(&r, &x.r)
		t.SetAbs(&y.c, Up)
		t.Mul(&t, &y.r)
		r.Add(&r, &t)
		if !r.IsZero() {
			d.SetAbs(&c, Down)
			r.Quo(&r, &d)
		}
	}
	r.AddRoundingError(&r, p, Directed)
	return z.commit(&c, &r)
}

// Sub sets z to the difference x-y and returns z.
func (z *Ball) Sub(x, y *Ball) *Ball {
	var t Ball
	t.Neg(y)
	return z.Add(x, &t)
}

// Quo sets z to the quotient x/y and returns z.
//
// If y's centre is zero, or y's radius is not smaller than 1 so that y may
// contain 0, the radius of z is +∞.
func (z *Ball) Quo(x, y *Ball) *Ball {
	p := workPrec(x, y)
	var c cfloat.Complex
	var r Radius
	c.SetPrec(p)
	switch {
	case y.c.IsZero():
		r.SetInf()
	case !y.r.LessThanOne():
		c.Quo(&x.c, &y.c, cfloat.ModeNN)
		r.SetInf()
	default:
		c.Quo(&x.c, &y.c, cfloat.ModeNN)
		// (r1 + r2) / (1 - r2)
		one := RadiusOne()
		var d Radius
		r.Add(&x.r, &y.r)
		d.sub(&one, &y.r, Down)
		r.Quo(&r, &d)
		r.AddRoundingError(&r, p, Nearest)
	}
	return z.commit(&c, &r)
}

// Sqrt sets z to the principal square root of x and returns z.
//
// If the radius of x is not smaller than 1/2, the radius of z is +∞.
//
// The principal square root is discontinuous across the negative real axis:
// the enclosure only holds if x does not cross it. A zero imaginary part of
// the centre selects a side by its sign, so √(-4-0i) is -2i.
func (z *Ball) Sqrt(x *Ball) *Ball {
	p := workPrec(x, x)
	var c cfloat.Complex
	c.SetPrec(p).Sqrt(&x.c, cfloat.ModeNN)

	var r Radius
	if x.r.LessThanHalf() {
		// r/2 × (1+r)
		one := RadiusOne()
		var t Radius
		t.Add(&one, &x.r)
		r.Mul2Exp(&x.r, -1)
		r.Mul(&r, &t)
		r.AddRoundingError(&r, p, Nearest)
	} else {
		r.SetInf()
	}
	return z.commit(&c, &r)
}

// PowUint sets z to x**n and returns z. x**0 is an exact 1.
func (z *Ball) PowUint(x *Ball, n uint64) *Ball {
	if n == 0 {
		return z.SetInt64s(1, 0, workPrec(x, x))
	}
	var y, t Ball
	y.Set(x)
	t.Set(x)
	for i := bits.Len64(n) - 2; i >= 0; i-- {
		t.Sqr(&t)
		if n>>uint(i)&1 != 0 {
			t.Mul(&t, &y)
		}
	}
	return z.commit(&t.c, &t.r)
}

// RoundPrec sets z to x with its centre rounded to nearest at precision prec,
// and returns z. The radius of z accounts for the rounding error. If prec is 0,
// the precision of x is kept. Raising the precision is exact.
func (z *Ball) RoundPrec(x *Ball, prec uint) *Ball {
	if prec == 0 {
		prec = workPrec(x, x)
	}
	var c cfloat.Complex
	c.SetPrec(prec).Set(&x.c, cfloat.ModeNN)
	r := x.r
	if re, im := c.Acc(); re != big.Exact || im != big.Exact {
		r.AddRoundingError(&r, prec, Nearest)
	}
	return z.commit(&c, &r)
}

// AddError sets z to x with its radius enlarged by an absolute error e, so that
// z contains every number within distance e of a number in x, and returns z.
//
// If the centre of x is zero and e is not, the radius of z is +∞.
func (z *Ball) AddError(x *Ball, e *Radius) *Ball {
	var c cfloat.Complex
	c.Copy(&x.c)
	r := x.r
	if !e.IsZero() {
		var d, t Radius
		d.SetAbs(&x.c, Down)
		t.Quo(e, &d)
		r.Add(&r, &t)
	}
	return z.commit(&c, &r)
}
