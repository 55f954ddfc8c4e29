// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfloat

import "math/big"

// Sqrt sets z to the rounded principal square root of x and returns z. The
// real part of the result is nonnegative and the imaginary part has the sign
// of the imaginary part of x.
func (z *Complex) Sqrt(x *Complex, mode Mode) *Complex {
	// both parts of the result depend on both parts of x
	if z.re.Prec() == 0 {
		z.re.SetPrec(x.Prec())
	}
	if z.im.Prec() == 0 {
		z.im.SetPrec(x.Prec())
	}
	precRe, precIm := z.re.Prec(), z.im.Prec()
	a, b := &x.re, &x.im
	neg := b.Signbit()

	switch {
	case a.IsInf() || b.IsInf():
		return z.sqrtInf(x)
	case b.Sign() == 0 && a.Sign() >= 0:
		var re big.Float
		acc := big.Exact
		if a.Sign() > 0 {
			acc = sqrtRound(&re, a, precRe, mode.Re())
		}
		z.re.Set(&re)
		z.im.SetInt64(0)
		if neg {
			z.im.Neg(&z.im)
		}
		z.accRe, z.accIm = acc, big.Exact
		return z
	case b.Sign() == 0:
		var im, t big.Float
		acc := sqrtRound(&im, t.Neg(a), precIm, imMode(mode, neg))
		if neg {
			im.Neg(&im)
			acc = -acc
		}
		z.re.SetInt64(0)
		z.im.Set(&im)
		z.accRe, z.accIm = big.Exact, acc
		return z
	}

	// General case. With t = |x|, w = (t+|a|)/2 and s = √w, the result is
	// s + i·b/(2s) when a ≥ 0 and |b|/(2s) + i·sign(b)·s otherwise. The loop
	// encloses both parts in directed intervals until each interval rounds
	// to a single value with a single accuracy.
	var absA, absB big.Float
	absA.Abs(a)
	absB.Abs(b)
	n := exactAdd(exactMul(a, a), exactMul(b, b))
	for q := umax(precRe, precIm) + 32; ; q *= 2 {
		var tl, tu, wl, wu, sl, su, yl, yu big.Float
		sqrtRound(&tl, n, q, big.ToNegativeInf)
		sqrtRound(&tu, n, q, big.ToPositiveInf)
		wl.SetPrec(q).SetMode(big.ToNegativeInf).Add(&tl, &absA)
		wu.SetPrec(q).SetMode(big.ToPositiveInf).Add(&tu, &absA)
		wl.SetMantExp(&wl, -1)
		wu.SetMantExp(&wu, -1)
		sqrtRound(&sl, &wl, q, big.ToNegativeInf)
		sqrtRound(&su, &wu, q, big.ToPositiveInf)
		yl.SetPrec(q).SetMode(big.ToNegativeInf).Quo(&absB, &su)
		yu.SetPrec(q).SetMode(big.ToPositiveInf).Quo(&absB, &sl)
		yl.SetMantExp(&yl, -1)
		yu.SetMantExp(&yu, -1)

		reLo, reHi, imLo, imHi := &sl, &su, &yl, &yu
		if a.Sign() < 0 {
			reLo, reHi, imLo, imHi = imLo, imHi, reLo, reHi
		}
		re, accRe, okRe := roundInterval(reLo, reHi, false, precRe, mode.Re())
		if !okRe {
			continue
		}
		im, accIm, okIm := roundInterval(imLo, imHi, neg, precIm, mode.Im())
		if !okIm {
			continue
		}
		z.re.Set(re)
		z.im.Set(im)
		z.accRe, z.accIm = accRe, accIm
		return z
	}
}

func (z *Complex) sqrtInf(x *Complex) *Complex {
	a, b := &x.re, &x.im
	neg := b.Signbit()
	switch {
	case b.IsInf():
		z.re.SetInf(false)
		z.im.SetInf(neg)
	case !a.Signbit():
		z.re.SetInf(false)
		z.im.SetInt64(0)
		if neg {
			z.im.Neg(&z.im)
		}
	default:
		z.re.SetInt64(0)
		z.im.SetInf(neg)
	}
	z.accRe, z.accIm = big.Exact, big.Exact
	return z
}

func imMode(m Mode, neg bool) big.RoundingMode {
	if neg {
		return flip(m.Im())
	}
	return m.Im()
}

// roundInterval rounds both ends of [lo, hi] to prec bits. It reports whether
// they round to the same value with the same accuracy. If neg is set, the
// interval holds the magnitude of a negative value, and the returned value and
// accuracy are those of the negated interval.
func roundInterval(lo, hi *big.Float, neg bool, prec uint, mode big.RoundingMode) (*big.Float, big.Accuracy, bool) {
	if neg {
		mode = flip(mode)
	}
	l := new(big.Float).SetPrec(prec).SetMode(mode).Set(lo)
	h := new(big.Float).SetPrec(prec).SetMode(mode).Set(hi)
	acc := l.Acc()
	if l.Cmp(h) != 0 || acc != h.Acc() || (acc == big.Exact && lo.Cmp(hi) != 0) {
		return nil, 0, false
	}
	if neg {
		l.Neg(l)
		acc = -acc
	}
	return l, acc, true
}

// sqrtRound sets z to √x rounded to prec bits in the given mode and returns
// the accuracy of the result. x must be finite and strictly positive.
//
// The square root is computed on integers: x = X × 2**k with X integral, so
// that √x = √(X × 2**j) × 2**((k-j)/2) for an even k-j, where the integer
// square root of X × 2**j has at least prec+2 bits. A sticky bit records
// whether it is exact.
func sqrtRound(z, x *big.Float, prec uint, mode big.RoundingMode) big.Accuracy {
	var m big.Float
	e := x.MantExp(&m)
	mp := int(x.MinPrec())
	m.SetMantExp(&m, mp)
	X, _ := m.Int(nil)

	k := e - mp
	j := 2*(int(prec)+2) - mp
	if j < 0 {
		j = 0
	}
	if (k-j)%2 != 0 {
		j++
	}
	X.Lsh(X, uint(j))
	r := new(big.Int).Sqrt(X)
	exact := new(big.Int).Mul(r, r).Cmp(X) == 0
	r.Lsh(r, 1)
	if !exact {
		r.SetBit(r, 0, 1)
	}

	z.SetPrec(prec).SetMode(mode).SetInt(r)
	acc := z.Acc()
	z.SetMantExp(z, (k-j)/2-1)
	return acc
}
