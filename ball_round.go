// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ball

import (
	"math/big"

	"github.com/db47h/ball/cfloat"
)

// CanRound reports whether rounding the centre of x to precRe bits for the
// real part and precIm bits for the imaginary part, with rounding modes mode,
// yields the correctly rounded value of every complex number in x.
//
// CanRound returns true for an exact ball. It returns false for an infinite
// radius, and whenever a part of the centre is zero but the radius is not,
// since the sign of that part is then unknown.
func (x *Ball) CanRound(precRe, precIm uint, mode cfloat.Mode) bool {
	switch {
	case x.r.IsInf():
		return false
	case x.r.IsZero():
		return true
	}
	re, im := x.c.Re(), x.c.Im()
	if re.Sign() == 0 || im.Sign() == 0 || re.IsInf() || im.IsInf() {
		return false
	}

	// |c| < 2**(e + 1/2) with e the larger exponent of the parts, so that
	// the absolute error r|c| is below 2**(r.Exp() + e + 1).
	e := int64(re.MantExp(nil))
	if f := int64(im.MantExp(nil)); f > e {
		e = f
	}
	errExp := x.r.Exp() + e + 1

	// Enlarging the error keeps the test sound. Bounding it from below keeps
	// the exact sums in CanRound small for tiny radii.
	lo := e - int64(x.c.Prec()) - 2*int64(precRe+precIm) - 64
	if errExp < lo {
		errExp = lo
	}
	return cfloat.CanRound(re, int(errExp), precRe, mode.Re()) &&
		cfloat.CanRound(im, int(errExp), precIm, mode.Im())
}

// Round sets z to the centre of x rounded to z's precision, or to the
// precision of x if z's is 0, and returns the accuracy of each part.
//
// If x.CanRound(z.PrecRe(), z.PrecIm(), mode) is true, z is the correctly
// rounded value of any complex number in x, and the accuracies are those of
// that rounding.
func (x *Ball) Round(z *cfloat.Complex, mode cfloat.Mode) (re, im big.Accuracy) {
	return z.Set(&x.c, mode).Acc()
}
