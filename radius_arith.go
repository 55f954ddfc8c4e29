// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements radius arithmetic. Bounds are computed on integer
// mantissas; directed rounding never depends on a floating-point mode.

package ball

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/db47h/ball/cfloat"
)

// guard bits used by the subtraction
const subGuard = 32

// Mul sets z to x×y, rounded up, and returns z.
func (z *Radius) Mul(x, y *Radius) *Radius {
	return z.mul(x, y, Up)
}

// Sqr sets z to x², rounded up, and returns z.
func (z *Radius) Sqr(x *Radius) *Radius {
	return z.mul(x, x, Up)
}

// Add sets z to x+y, rounded up, and returns z.
func (z *Radius) Add(x, y *Radius) *Radius {
	return z.add(x, y, Up)
}

// Sub sets z to max(x-y, 0), rounded up, and returns z. If either operand is
// infinite, z is set to +∞.
func (z *Radius) Sub(x, y *Radius) *Radius {
	return z.sub(x, y, Up)
}

// Quo sets z to x/y, rounded up, and returns z. Division by zero yields +∞.
func (z *Radius) Quo(x, y *Radius) *Radius {
	return z.quo(x, y, Up)
}

// Sqrt sets z to √x, rounded up, and returns z.
func (z *Radius) Sqrt(x *Radius) *Radius {
	return z.sqrt(x, Up)
}

// Mul2Exp sets z to x × 2**e and returns z. The result is exact unless it
// leaves the exponent range, where it rounds up to +∞ or to the smallest
// finite radius.
func (z *Radius) Mul2Exp(x *Radius, e int64) *Radius {
	*z = *x
	if z.form == finite {
		z.exp = satExp(z.exp, e)
		z.norm(Up)
	}
	return z
}

// SetAbs sets z to the absolute value |c| of a complex number, rounded in
// direction dir, and returns z.
func (z *Radius) SetAbs(c *cfloat.Complex, dir Direction) *Radius {
	var re, im Radius
	re.setFloat(c.Re(), dir)
	im.setFloat(c.Im(), dir)
	switch {
	case re.form == inf || im.form == inf:
		return z.SetInf()
	case re.form == zero:
		*z = im
		return z
	case im.form == zero:
		*z = re
		return z
	}
	// squares of 31 bits mantissas are exact
	re.mant *= re.mant
	re.exp *= 2
	im.mant *= im.mant
	im.exp *= 2
	z.add(&re, &im, dir)
	return z.sqrt(z, dir)
}

// AddRoundingError sets z to x + (1+x) × 2**-prec for a centre rounded to
// nearest, or x + (1+x) × 2**(1-prec) for a directed rounding, and returns z.
//
// If a ball's centre c is rounded to c' with precision prec, a radius x
// relative to c becomes z relative to c'.
func (z *Radius) AddRoundingError(x *Radius, prec uint, r Rounding) *Radius {
	one := RadiusOne()
	var t Radius
	t.Add(&one, x)
	e := -int64(prec)
	if r == Directed {
		e++
	}
	t.Mul2Exp(&t, e)
	return z.Add(x, &t)
}

func (z *Radius) mul(x, y *Radius, dir Direction) *Radius {
	switch {
	case x.form == inf || y.form == inf:
		return z.SetInf()
	case x.form == zero || y.form == zero:
		return z.SetZero()
	}
	m, e := x.mant*y.mant, x.exp+y.exp
	z.mant, z.exp, z.form = m, e, finite
	z.norm(dir)
	return z
}

// add accepts mantissas of up to 62 bits.
func (z *Radius) add(x, y *Radius, dir Direction) *Radius {
	switch {
	case x.form == inf || y.form == inf:
		return z.SetInf()
	case x.form == zero:
		*z = *y
		z.norm(dir)
		return z
	case y.form == zero:
		*z = *x
		z.norm(dir)
		return z
	}
	if x.exp < y.exp {
		x, y = y, x
	}
	m := x.mant
	var lost bool
	if d := uint64(x.exp - y.exp); d < 64 {
		m += y.mant >> d
		lost = y.mant&(1<<d-1) != 0
	} else {
		lost = true
	}
	if lost && dir == Up {
		m++
	}
	z.mant, z.exp, z.form = m, x.exp, finite
	z.norm(dir)
	return z
}

func (z *Radius) sub(x, y *Radius, dir Direction) *Radius {
	switch {
	case x.form == inf:
		if dir == Down && y.form == inf {
			return z.SetZero()
		}
		return z.SetInf()
	case y.form == inf:
		if dir == Up {
			return z.SetInf()
		}
		return z.SetZero()
	case y.form == zero:
		*z = *x
		return z
	case x.Cmp(y) <= 0:
		return z.SetZero()
	}
	// x > y, so x.exp >= y.exp
	mx := x.mant << subGuard
	var my uint64
	lost := true
	if d := uint64(x.exp - y.exp); d < 63 {
		t := y.mant << subGuard
		my = t >> d
		lost = t&(1<<d-1) != 0
	}
	if lost && dir == Down {
		my++
	}
	z.mant, z.exp, z.form = mx-my, x.exp-subGuard, finite
	z.norm(dir)
	return z
}

func (z *Radius) quo(x, y *Radius, dir Direction) *Radius {
	switch {
	case x.form == inf || y.form == inf || y.form == zero:
		return z.SetInf()
	case x.form == zero:
		return z.SetZero()
	}
	n := x.mant << 32
	q, r := n/y.mant, n%y.mant
	if r != 0 && dir == Up {
		q++
	}
	z.mant, z.exp, z.form = q, x.exp-32-y.exp, finite
	z.norm(dir)
	return z
}

func (z *Radius) sqrt(x *Radius, dir Direction) *Radius {
	switch x.form {
	case inf:
		return z.SetInf()
	case zero:
		return z.SetZero()
	}
	m, e := x.mant, x.exp
	if e&1 != 0 {
		m <<= 1
		e--
	}
	m <<= 32
	e -= 32
	r := isqrt(m)
	if dir == Up && r*r != m {
		r++
	}
	z.mant, z.exp, z.form = r, e/2, finite
	z.norm(dir)
	return z
}

// isqrt returns ⌊√n⌋.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for !sqrLE(r, n) {
		r--
	}
	for sqrLE(r+1, n) {
		r++
	}
	return r
}

// sqrLE reports whether r² ≤ n.
func sqrLE(r, n uint64) bool {
	hi, lo := bits.Mul64(r, r)
	return hi == 0 && lo <= n
}

// setFloat sets z to |x| rounded to 31 bits in direction dir. The result is
// normalized.
func (z *Radius) setFloat(x *big.Float, dir Direction) *Radius {
	switch {
	case x.IsInf():
		return z.SetInf()
	case x.Sign() == 0:
		return z.SetZero()
	}
	mode := big.ToZero
	if dir == Up {
		mode = big.AwayFromZero
	}
	var f big.Float
	f.SetPrec(_W).SetMode(mode).Abs(x)
	e := f.MantExp(&f)
	f.SetMantExp(&f, _W)
	m, _ := f.Uint64()
	z.mant, z.exp, z.form = m, int64(e)-_W, finite
	return z
}
