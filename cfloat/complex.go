// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfloat implements multi-precision complex floating-point numbers on
// top of math/big.Float.
//
// A Complex is a pair of big.Float values with independent precisions. All
// arithmetic operations take a Mode giving the rounding direction for each
// part, and the result of every operation is correctly rounded: each part is
// the exact result rounded once to the receiver's precision. The accuracy of
// each part with respect to the exact result is reported by Acc.
//
// Like big.Float, operations set the receiver to the result and return it, and
// the receiver may alias any of the operands. A receiver part with precision 0
// takes the larger precision of the corresponding operand parts.
//
// Operations that have no defined result, like 0 × ∞, panic with a
// big.ErrNaN.
package cfloat

import (
	"math/big"
	"strings"
)

// A Complex represents a multi-precision complex number re + im·i. The zero
// value for a Complex is 0 + 0i with precision 0.
type Complex struct {
	re, im       big.Float
	accRe, accIm big.Accuracy
}

// New returns a new Complex with value 0 and both parts at precision prec.
func New(prec uint) *Complex {
	return new(Complex).SetPrec(prec)
}

// NewPrec2 returns a new Complex with value 0 and the given precisions for the
// real and imaginary parts.
func NewPrec2(precRe, precIm uint) *Complex {
	return new(Complex).SetPrec2(precRe, precIm)
}

// SetPrec sets the precision of both parts of z to prec and returns the
// (possibly) rounded value of z. Rounding uses the rounding mode of each part.
func (z *Complex) SetPrec(prec uint) *Complex {
	return z.SetPrec2(prec, prec)
}

// SetPrec2 sets the precision of the real part to precRe and that of the
// imaginary part to precIm.
func (z *Complex) SetPrec2(precRe, precIm uint) *Complex {
	z.re.SetPrec(precRe)
	z.im.SetPrec(precIm)
	z.setAcc()
	return z
}

// Prec returns the larger of the precisions of the real and imaginary parts
// of x.
func (x *Complex) Prec() uint {
	return umax(x.re.Prec(), x.im.Prec())
}

// PrecRe returns the precision of the real part of x.
func (x *Complex) PrecRe() uint { return x.re.Prec() }

// PrecIm returns the precision of the imaginary part of x.
func (x *Complex) PrecIm() uint { return x.im.Prec() }

// Re returns the real part of x. The returned value is x's own storage.
func (x *Complex) Re() *big.Float { return &x.re }

// Im returns the imaginary part of x. The returned value is x's own storage.
func (x *Complex) Im() *big.Float { return &x.im }

// Acc returns the accuracy of each part of x produced by the most recent
// operation.
func (x *Complex) Acc() (re, im big.Accuracy) {
	return x.accRe, x.accIm
}

// IsZero reports whether both parts of x are zero.
func (x *Complex) IsZero() bool {
	return x.re.Sign() == 0 && x.im.Sign() == 0
}

// IsInf reports whether either part of x is infinite.
func (x *Complex) IsInf() bool {
	return x.re.IsInf() || x.im.IsInf()
}

func (x *Complex) isFinite() bool {
	return !x.IsInf()
}

// Equal reports whether x and y have the same value. Signed zeros compare
// equal.
func (x *Complex) Equal(y *Complex) bool {
	return x.re.Cmp(&y.re) == 0 && x.im.Cmp(&y.im) == 0
}

// Copy sets z to x, with the same precisions and accuracies as x, and returns
// z.
func (z *Complex) Copy(x *Complex) *Complex {
	if z != x {
		z.re.Copy(&x.re)
		z.im.Copy(&x.im)
		z.accRe, z.accIm = x.accRe, x.accIm
	}
	return z
}

// Swap exchanges the values of z and x.
func (z *Complex) Swap(x *Complex) {
	*z, *x = *x, *z
}

// Set sets z to the (possibly rounded) value of x and returns z.
func (z *Complex) Set(x *Complex, mode Mode) *Complex {
	z.adoptPrec(x, x)
	z.re.SetMode(mode.Re()).Set(&x.re)
	z.im.SetMode(mode.Im()).Set(&x.im)
	z.setAcc()
	return z
}

// SetFloats sets z to the (possibly rounded) value re + im·i.
func (z *Complex) SetFloats(re, im *big.Float, mode Mode) *Complex {
	if z.re.Prec() == 0 {
		z.re.SetPrec(re.Prec())
	}
	if z.im.Prec() == 0 {
		z.im.SetPrec(im.Prec())
	}
	z.re.SetMode(mode.Re()).Set(re)
	z.im.SetMode(mode.Im()).Set(im)
	z.setAcc()
	return z
}

// SetFloat64s sets z to the (possibly rounded) value re + im·i. A part with
// precision 0 is set to 53. SetFloat64s panics with big.ErrNaN if either
// argument is a NaN.
func (z *Complex) SetFloat64s(re, im float64) *Complex {
	z.re.SetFloat64(re)
	z.im.SetFloat64(im)
	z.setAcc()
	return z
}

// SetInt64s sets z to the (possibly rounded) value re + im·i. A part with
// precision 0 is set to 64.
func (z *Complex) SetInt64s(re, im int64) *Complex {
	z.re.SetInt64(re)
	z.im.SetInt64(im)
	z.setAcc()
	return z
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s has the form "(re im)" or "re im", where re and im are in any
// format accepted by big.Float.SetString. A part with precision 0 is set to
// 64.
func (z *Complex) SetString(s string) (*Complex, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return nil, false
		}
		s = s[1 : len(s)-1]
	}
	f := strings.Fields(s)
	if len(f) != 2 {
		return nil, false
	}
	if _, ok := z.re.SetString(f[0]); !ok {
		return nil, false
	}
	if _, ok := z.im.SetString(f[1]); !ok {
		return nil, false
	}
	z.setAcc()
	return z, true
}

func (z *Complex) setAcc() {
	z.accRe, z.accIm = z.re.Acc(), z.im.Acc()
}

// adoptPrec gives the parts of z with precision 0 the larger precision of the
// matching parts of x and y.
func (z *Complex) adoptPrec(x, y *Complex) {
	if z.re.Prec() == 0 {
		z.re.SetPrec(umax(x.re.Prec(), y.re.Prec()))
	}
	if z.im.Prec() == 0 {
		z.im.SetPrec(umax(x.im.Prec(), y.im.Prec()))
	}
}

func umax(x, y uint) uint {
	if x > y {
		return x
	}
	return y
}
