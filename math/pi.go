package math

import (
	"math/bits"
	"sync"

	"github.com/db47h/ball"
)

// A constant caches the ball of highest precision computed so far for a
// mathematical constant.
type constant struct {
	mu sync.Mutex
	b  *ball.Ball
	f  func(prec uint) *ball.Ball
}

func (c *constant) get(z *ball.Ball, prec uint) *ball.Ball {
	if prec == 0 {
		prec = ball.DefaultPrec
	}
	c.mu.Lock()
	if c.b == nil || c.b.Prec() < prec {
		c.b = c.f(prec)
	}
	b := c.b
	c.mu.Unlock()
	return z.RoundPrec(b, prec)
}

var (
	_pi  = constant{f: pi}
	_ln2 = constant{f: ln2}
)

// Pi returns a new ball of precision prec enclosing π. If prec is 0, it is set
// to ball.DefaultPrec.
//
// Pi is safe for concurrent use and has the signature of a context.Func.
func Pi(prec uint) *ball.Ball {
	return _pi.get(new(ball.Ball), prec)
}

// Ln2 returns a new ball of precision prec enclosing the natural logarithm of
// 2. If prec is 0, it is set to ball.DefaultPrec.
//
// Ln2 is safe for concurrent use and has the signature of a context.Func.
func Ln2(prec uint) *ball.Ball {
	return _ln2.get(new(ball.Ball), prec)
}

// pi computes π = 16·atan(1/5) - 4·atan(1/239) (Machin's formula).
func pi(prec uint) *ball.Ball {
	wp := guard(prec)
	a := arctanInv(5, wp, false)
	b := arctanInv(239, wp, false)
	a.Mul2Exp(a, 4)
	b.Mul2Exp(b, 2)
	return a.Sub(a, b).RoundPrec(a, prec)
}

// ln2 computes log(2) = 2·atanh(1/3).
func ln2(prec uint) *ball.Ball {
	wp := guard(prec)
	a := arctanInv(3, wp, true)
	return a.Mul2Exp(a, 1).RoundPrec(a, prec)
}

// arctanInv returns a ball of precision prec enclosing atan(1/k), or
// atanh(1/k) if hyperbolic is true. k must be at least 2.
//
// The series
//
//	atan(1/k) = Σ (-1)**n / ((2n+1) k**(2n+1))
//
// is summed until its terms drop below 2**-(prec+4); the tail is then added to
// the radius.
func arctanInv(k int64, prec uint, hyperbolic bool) *ball.Ball {
	l := int64(bits.Len64(uint64(k)) - 1) // 2**l ≤ k
	n := (int64(prec)+4)/(2*l) + 1        // (2n+1)·l ≥ prec+4

	p := new(ball.Ball).SetInt64s(1, 0, prec)
	p.Quo(p, intBall(k, prec))
	kk := intBall(k*k, prec)
	s := new(ball.Ball).Set(p)
	var t, d ball.Ball
	for i := int64(1); i < n; i++ {
		p.Quo(p, kk)
		t.Quo(p, d.SetInt64s(2*i+1, 0, prec))
		if hyperbolic || i%2 == 0 {
			s.Add(s, &t)
		} else {
			s.Sub(s, &t)
		}
	}
	// alternating tail ≤ first term; atanh's tail < 4/3 × first term
	var e ball.Radius
	e.SetUint64Exp(1, 1-(2*n+1)*l)
	return s.AddError(s, &e)
}
