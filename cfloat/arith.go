// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfloat

import "math/big"

// Neg sets z to the (possibly rounded) value of -x and returns z.
func (z *Complex) Neg(x *Complex, mode Mode) *Complex {
	z.adoptPrec(x, x)
	z.re.SetMode(mode.Re()).Neg(&x.re)
	z.im.SetMode(mode.Im()).Neg(&x.im)
	z.setAcc()
	return z
}

// SetMantExp sets z to x × 2**exp, rounded, and returns z.
func (z *Complex) SetMantExp(x *Complex, exp int, mode Mode) *Complex {
	z.adoptPrec(x, x)
	z.re.SetMode(mode.Re()).SetMantExp(&x.re, exp)
	z.im.SetMode(mode.Im()).SetMantExp(&x.im, exp)
	z.setAcc()
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (z *Complex) Add(x, y *Complex, mode Mode) *Complex {
	z.adoptPrec(x, y)
	z.re.SetMode(mode.Re()).Add(&x.re, &y.re)
	z.im.SetMode(mode.Im()).Add(&x.im, &y.im)
	z.setAcc()
	return z
}

// Sub sets z to the rounded difference x-y and returns z.
func (z *Complex) Sub(x, y *Complex, mode Mode) *Complex {
	z.adoptPrec(x, y)
	z.re.SetMode(mode.Re()).Sub(&x.re, &y.re)
	z.im.SetMode(mode.Im()).Sub(&x.im, &y.im)
	z.setAcc()
	return z
}

// Mul sets z to the rounded product x×y and returns z.
//
// Each part of the result is rounded once from its exact value.
func (z *Complex) Mul(x, y *Complex, mode Mode) *Complex {
	z.adoptPrec(x, y)
	if !x.isFinite() || !y.isFinite() {
		return z.mulInf(x, y, mode)
	}
	a, b := &x.re, &x.im
	c, d := &y.re, &y.im
	ac, bd := exactMul(a, c), exactMul(b, d)
	ad, bc := exactMul(a, d), exactMul(b, c)
	z.re.SetMode(mode.Re()).Sub(ac, bd)
	z.im.SetMode(mode.Im()).Add(ad, bc)
	z.setAcc()
	return z
}

// mulInf handles products with an infinite operand.
func (z *Complex) mulInf(x, y *Complex, mode Mode) *Complex {
	a, b := &x.re, &x.im
	c, d := &y.re, &y.im
	ac, bd := new(big.Float).Mul(a, c), new(big.Float).Mul(b, d)
	ad, bc := new(big.Float).Mul(a, d), new(big.Float).Mul(b, c)
	z.re.SetMode(mode.Re()).Sub(ac, bd)
	z.im.SetMode(mode.Im()).Add(ad, bc)
	z.setAcc()
	return z
}

// Sqr sets z to the rounded square x² and returns z.
func (z *Complex) Sqr(x *Complex, mode Mode) *Complex {
	return z.Mul(x, x, mode)
}

// Quo sets z to the rounded quotient x/y and returns z. Quo panics with
// big.ErrNaN if y is zero.
//
// Each part of the result is rounded once from its exact value.
func (z *Complex) Quo(x, y *Complex, mode Mode) *Complex {
	z.adoptPrec(x, y)
	a, b := &x.re, &x.im
	c, d := &y.re, &y.im
	var n, re, im *big.Float
	if x.isFinite() && y.isFinite() {
		n = exactAdd(exactMul(c, c), exactMul(d, d))
		re = exactAdd(exactMul(a, c), exactMul(b, d))
		im = exactSub(exactMul(b, c), exactMul(a, d))
	} else {
		n = new(big.Float).Mul(c, c)
		n.Add(n, new(big.Float).Mul(d, d))
		re = new(big.Float).Mul(a, c)
		re.Add(re, new(big.Float).Mul(b, d))
		im = new(big.Float).Mul(b, c)
		im.Sub(im, new(big.Float).Mul(a, d))
	}
	// y == 0 yields 0/0 here
	z.re.SetMode(mode.Re()).Quo(re, n)
	z.im.SetMode(mode.Im()).Quo(im, n)
	z.setAcc()
	return z
}
