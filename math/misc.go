package math

import (
	"math/bits"

	"github.com/db47h/ball"
)

// intBall returns the exact ball x + 0i with precision at least prec, so that
// operations with it keep a working precision of prec.
func intBall(x int64, prec uint) *ball.Ball {
	return new(ball.Ball).SetInt64s(x, 0, prec)
}

// guard returns prec plus enough guard bits to absorb the rounding errors of a
// series of O(prec) terms.
func guard(prec uint) uint {
	return prec + uint(bits.Len(prec)) + 8
}

// workPrec returns the working precision of an operation on x.
func workPrec(x *ball.Ball) uint {
	if p := x.Prec(); p != 0 {
		return p
	}
	return ball.DefaultPrec
}
