// Package math provides elementary functions and mathematical constants on
// complex balls.
//
// Results enclose the exact value of the function at every point of the input
// ball. Unless stated otherwise, they have the precision of the input, or
// ball.DefaultPrec if that is 0, and their radius is +∞ when no useful
// enclosure can be computed.
package math

import (
	"math/bits"

	"github.com/db47h/ball"
)

// maxScale bounds the argument reduction of Exp. e**x overflows the exponent
// range of big.Float long before |x| reaches 2**maxScale.
const maxScale = 30

// Exp sets z to e**x and returns z.
//
// If |x| may exceed 2**28, or if the absolute radius of x is 1/2 or more, the
// radius of z is +∞.
func Exp(z, x *ball.Ball) *ball.Ball {
	p := workPrec(x)
	r := x.Radius()
	c := x.Centre(nil)
	switch {
	case r.IsInf() || c.IsInf():
		return z.SetPrec(p)
	case c.IsZero():
		return z.SetInt64s(1, 0, p)
	}

	// exp(c) = exp(c/2**s)**(2**s) with |c/2**s| < 1/2
	var m ball.Radius
	m.SetAbs(c, ball.Up)
	s := m.Exp() + 1
	if s < 0 {
		s = 0
	}
	if s >= maxScale {
		return z.SetPrec(p)
	}
	wp := guard(p) + uint(s)
	e := ball.NewComplex(c)
	e.RoundPrec(e, wp).Mul2Exp(e, -int(s))
	e = expTaylor(e, wp)
	for i := int64(0); i < s; i++ {
		e.Sqr(e)
	}

	if !r.IsZero() {
		// e**t = e**c × e**(t-c), and |e**(t-c) - 1| ≤ d + d² for
		// |t-c| ≤ d ≤ 1/2
		var d, d2 ball.Radius
		d.SetAbs(c, ball.Up)
		d.Mul(&d, &r)
		if !d.LessThanHalf() {
			return z.SetPrec(p)
		}
		d2.Sqr(&d)
		d.Add(&d, &d2)
		e.Mul(e, intBall(1, wp).SetRadius(&d))
	}
	return z.RoundPrec(e, p)
}

// Exp2 sets z to 2**x and returns z.
func Exp2(z, x *ball.Ball) *ball.Ball {
	p := workPrec(x)
	wp := guard(p)
	y := new(ball.Ball).RoundPrec(x, wp)
	y.Mul(y, Ln2(wp))
	return z.RoundPrec(Exp(y, y), p)
}

// expTaylor returns a ball of precision prec enclosing e**y for an exact y with
// |y| < 1/2.
func expTaylor(y *ball.Ball, prec uint) *ball.Ball {
	// The tail Σ_{k≥n} |y|**k/k! is below 2 × 2**-n/n!. Pick n such that
	// n + log2(n!) ≥ prec+3.
	n, b := int64(0), 0
	for b < int(prec)+3 {
		n++
		b += bits.Len64(uint64(n))
	}

	// Horner scheme for Σ_{k<n} y**k/k!
	one := intBall(1, prec)
	s := intBall(1, prec)
	var d ball.Ball
	for k := n - 1; k >= 1; k-- {
		s.Mul(s, y)
		s.Quo(s, d.SetInt64s(k, 0, prec))
		s.Add(s, one)
	}

	var e, k ball.Radius
	e = ball.RadiusOne()
	for i := int64(2); i <= n; i++ {
		e.Quo(&e, k.SetUint64Exp(uint64(i), 0))
	}
	e.Mul2Exp(&e, 1-n)
	return s.AddError(s, &e)
}
