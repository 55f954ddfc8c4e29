// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides rounding contexts for ball arithmetic.
//
// A Context holds a target precision and rounding mode. Its Eval method
// implements the Ziv loop: a function computing a ball from a working
// precision is evaluated at increasing precisions until the ball can be
// rounded to the target precision, so that the result is correctly rounded.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *cfloat.Complex
//
// create a new cfloat.Complex set to the value of x, and rounded using c's
// precision and rounding mode.
//
// A Context catches NaN errors: if an evaluation panics with a big.ErrNaN, Eval
// silently returns. Further evaluations with the context will be no-ops until
// (*Context).Err is called to check for errors. The same goes for evaluations
// that exceed the context's maximum working precision.
package context

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/db47h/ball"
	"github.com/db47h/ball/cfloat"
	"go.uber.org/zap"
)

const handleNaNs = true

// DefaultMaxPrec is the default maximum working precision of a Context.
const DefaultMaxPrec = 1 << 20

// ErrMaxPrec is returned by Err when an evaluation could not be rounded before
// reaching the maximum working precision.
var ErrMaxPrec = errors.New("maximum working precision exceeded")

// A Func evaluates an expression at working precision prec.
//
// The returned ball must enclose the exact value of the expression. Calls with
// increasing precisions should return balls with decreasing radii.
type Func func(prec uint) *ball.Ball

// A Context is a wrapper around balls that facilitates management of rounding
// modes, precision and error handling.
type Context struct {
	prec      uint32
	startPrec uint32
	maxPrec   uint32
	mode      cfloat.Mode
	log       *zap.Logger
	err       error
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it will be set to ball.DefaultPrec.
func New(prec uint, mode cfloat.Mode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() cfloat.Mode {
	return c.mode
}

// Prec returns the target precision of c.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// MaxPrec returns the maximum working precision of c.
func (c *Context) MaxPrec() uint {
	if c.maxPrec == 0 {
		return DefaultMaxPrec
	}
	return uint(c.maxPrec)
}

// StartPrec returns the working precision of the first evaluation step, or 0
// if it is computed from the target precision.
func (c *Context) StartPrec() uint {
	return uint(c.startPrec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode cfloat.Mode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > big.MaxPrec, it is set to big.MaxPrec. If prec == 0, it is set to
// ball.DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = ball.DefaultPrec
	}
	// general case
	if prec > big.MaxPrec {
		prec = big.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// SetMaxPrec sets the maximum working precision of c and returns c. If prec is
// 0, it is set to DefaultMaxPrec.
func (c *Context) SetMaxPrec(prec uint) *Context {
	if prec > big.MaxPrec {
		prec = big.MaxPrec
	}
	c.maxPrec = uint32(prec)
	return c
}

// SetStartPrec sets the working precision of the first evaluation step and
// returns c. If prec is lower than the target precision plus a few guard bits,
// the latter is used.
func (c *Context) SetStartPrec(prec uint) *Context {
	if prec > big.MaxPrec {
		prec = big.MaxPrec
	}
	c.startPrec = uint32(prec)
	return c
}

// SetLogger sets the logger used to trace evaluations and returns c. A nil
// logger disables logging.
func (c *Context) SetLogger(log *zap.Logger) *Context {
	c.log = log
	return c
}

func (c *Context) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// New returns a new cfloat.Complex with value 0 and precision set to c's
// precision.
func (c *Context) New() *cfloat.Complex {
	return cfloat.New(uint(c.prec))
}

// NewInt64s returns a new *cfloat.Complex set to the (possibly rounded) value
// re + im·i.
func (c *Context) NewInt64s(re, im int64) *cfloat.Complex {
	return c.New().SetInt64s(re, im)
}

// NewFloat64s returns a new *cfloat.Complex set to the (possibly rounded) value
// re + im·i.
func (c *Context) NewFloat64s(re, im float64) *cfloat.Complex {
	return c.New().SetFloat64s(re, im)
}

// NewString returns a new *cfloat.Complex with the value of s and a boolean
// indicating success. s must be in a format accepted by
// (*cfloat.Complex).SetString.
func (c *Context) NewString(s string) (z *cfloat.Complex, success bool) {
	return c.New().SetString(s)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Round sets z to the value of x rounded using c's precision and rounding
// mode, and returns the accuracy of each part. It returns ok == false, leaving
// z unchanged, if the rounding of x is not determined at c's precision.
func (c *Context) Round(z *cfloat.Complex, x *ball.Ball) (re, im big.Accuracy, ok bool) {
	if handleNaNs {
		if c.err != nil {
			return
		}
	}
	p := uint(c.prec)
	if !x.CanRound(p, p, c.mode) {
		return
	}
	re, im = x.Round(c.apply(z), c.mode)
	return re, im, true
}

// apply applies c's precision to z and returns z.
func (c *Context) apply(z *cfloat.Complex) *cfloat.Complex {
	if z.PrecRe() != uint(c.prec) || z.PrecIm() != uint(c.prec) {
		z.SetPrec(0).SetPrec(uint(c.prec))
	}
	return z
}

// Eval sets z to the value computed by f, correctly rounded using c's
// precision and rounding mode, and returns the accuracy of each part with
// respect to the exact value.
//
// f is called with working precisions starting at about c's precision plus
// its binary logarithm, doubling after each step until the ball returned by f
// can be rounded. If the working precision would exceed c's maximum, Eval
// gives up, z is unchanged and Err returns an error wrapping ErrMaxPrec.
//
// Ball operations other than Neg and Mul2Exp add a rounding error to the
// radius even when the centre is exact, and a ball with a nonzero radius
// around a value that fits c's precision can never be rounded. Eval on such a
// value runs up to the maximum precision and fails with ErrMaxPrec. Lower the
// maximum with SetMaxPrec when f may hit such values, or round the centre
// directly with ball.Ball.Round.
func (c *Context) Eval(z *cfloat.Complex, f Func) (re, im big.Accuracy) {
	if handleNaNs {
		if c.err != nil {
			return
		}
		defer func() {
			if err := recover(); err != nil {
				nan, ok := err.(big.ErrNaN)
				if !ok {
					panic(err)
				}
				c.err = fmt.Errorf("context: %w", nan)
				re, im = big.Exact, big.Exact
			}
		}()
	}

	log := c.logger()
	prec := uint(c.prec)
	maxPrec := c.MaxPrec()
	wp := prec + uint(bits.Len(prec)) + 4
	if s := uint(c.startPrec); s > wp {
		wp = s
	}
	for step := 1; ; step++ {
		x := f(wp)
		if x.CanRound(prec, prec, c.mode) {
			log.Debug("ball rounded", zap.Int("step", step), zap.Uint("prec", wp))
			return x.Round(c.apply(z), c.mode)
		}
		if wp >= maxPrec {
			c.err = fmt.Errorf("context: %w: %d bits", ErrMaxPrec, maxPrec)
			log.Warn("cannot round ball", zap.Int("step", step), zap.Uint("maxPrec", maxPrec), zap.Object("ball", x))
			return
		}
		log.Debug("cannot round ball, raising working precision", zap.Int("step", step), zap.Uint("prec", wp), zap.Object("ball", x))
		if wp *= 2; wp > maxPrec {
			wp = maxPrec
		}
	}
}
