// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ball

import (
	"fmt"
	"math/big"
	"math/bits"
)

//go:generate stringer -type=Direction,Rounding

const (
	_W      = 31            // radius mantissa width in bits
	mantMin = 1 << (_W - 1) // smallest normalized mantissa
	mantMax = 1 << _W       // normalized mantissas are < mantMax

	// largest magnitude of a radius exponent; sums and differences of two
	// exponents cannot overflow an int64
	maxRadiusExp = 1 << 60
)

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
)

// Direction is the rounding direction of a radius operation.
type Direction byte

// Rounding directions.
const (
	Up   Direction = iota // round toward +∞; results are upper bounds
	Down                  // round toward 0; results are lower bounds
)

// Rounding describes how a centre value was rounded, for the purpose of
// bounding its rounding error. See Radius.AddRoundingError.
type Rounding byte

// Centre rounding kinds.
const (
	Nearest  Rounding = iota // error at most half an ulp
	Directed                 // error at most one ulp
)

// A Radius is a nonnegative real number of low precision used as an error
// bound. A finite nonzero radius has the value mant × 2**exp, with a mantissa
// of exactly 31 significant bits. It may also be zero or +∞.
//
// All operations round up, so that the result is an upper bound of the exact
// result, unless stated otherwise. Any infinite operand yields an infinite
// result.
//
// The zero value for a Radius is 0.
type Radius struct {
	mant uint64
	exp  int64
	form form
}

// RadiusZero returns a zero radius.
func RadiusZero() Radius { return Radius{} }

// RadiusInf returns an infinite radius.
func RadiusInf() Radius { return Radius{form: inf} }

// RadiusOne returns a radius of value 1.
func RadiusOne() Radius { return Radius{mant: mantMin, exp: -(_W - 1), form: finite} }

// IsZero reports whether x is 0.
func (x *Radius) IsZero() bool { return x.form == zero }

// IsInf reports whether x is +∞.
func (x *Radius) IsInf() bool { return x.form == inf }

// SetZero sets z to 0 and returns z.
func (z *Radius) SetZero() *Radius {
	*z = Radius{}
	return z
}

// SetInf sets z to +∞ and returns z.
func (z *Radius) SetInf() *Radius {
	*z = Radius{form: inf}
	return z
}

// Set sets z to x and returns z.
func (z *Radius) Set(x *Radius) *Radius {
	*z = *x
	return z
}

// SetUint64Exp sets z to m × 2**exp, rounded up, and returns z.
func (z *Radius) SetUint64Exp(m uint64, exp int64) *Radius {
	z.mant, z.exp, z.form = m, satExp(exp, 0), finite
	z.norm(Up)
	return z
}

// Exp returns the smallest integer e such that x < 2**e. It returns 0 if x is
// zero or infinite.
func (x *Radius) Exp() int64 {
	if x.form != finite {
		return 0
	}
	return x.exp + _W
}

// LessThanHalf reports whether x < 1/2.
func (x *Radius) LessThanHalf() bool {
	return x.form == zero || x.form == finite && x.exp < -_W
}

// LessThanOne reports whether x < 1.
func (x *Radius) LessThanOne() bool {
	return x.form == zero || x.form == finite && x.exp < -(_W - 1)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Radius) Cmp(y *Radius) int {
	if debugBall {
		x.validate()
		y.validate()
	}
	switch {
	case x.form != y.form:
		if x.form < y.form {
			return -1
		}
		return 1
	case x.form != finite:
		return 0
	case x.exp != y.exp:
		if x.exp < y.exp {
			return -1
		}
		return 1
	case x.mant != y.mant:
		if x.mant < y.mant {
			return -1
		}
		return 1
	}
	return 0
}

// Max sets z to the larger of x and y and returns z.
func (z *Radius) Max(x, y *Radius) *Radius {
	if x.Cmp(y) < 0 {
		x = y
	}
	*z = *x
	return z
}

// Float sets z to the value of x and returns z. If z is nil, a new big.Float
// is allocated. z's precision is raised to 31 if lower.
func (x *Radius) Float(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	if z.Prec() < _W {
		z.SetPrec(_W)
	}
	switch x.form {
	case zero:
		return z.SetInt64(0)
	case inf:
		return z.SetInf(false)
	}
	z.SetUint64(x.mant)
	return z.SetMantExp(z, int(x.exp))
}

// Float64 returns the float64 value nearest to x.
func (x *Radius) Float64() float64 {
	f, _ := x.Float(nil).Float64()
	return f
}

// norm normalizes z, rounding the mantissa in direction dir if bits are lost.
func (z *Radius) norm(dir Direction) {
	if z.form != finite {
		z.mant, z.exp = 0, 0
		return
	}
	if z.mant == 0 {
		z.SetZero()
		return
	}
	switch n := bits.Len64(z.mant); {
	case n < _W:
		s := _W - n
		z.mant <<= uint(s)
		z.exp -= int64(s)
	case n > _W:
		s := uint(n - _W)
		lost := z.mant&(1<<s-1) != 0
		z.mant >>= s
		z.exp += int64(s)
		if lost && dir == Up {
			z.mant++
			if z.mant == mantMax {
				z.mant >>= 1
				z.exp++
			}
		}
	}
	switch {
	case z.exp > maxRadiusExp:
		z.SetInf()
	case z.exp < -maxRadiusExp:
		if dir == Up {
			z.mant, z.exp = mantMin, -maxRadiusExp
		} else {
			z.SetZero()
		}
	}
	if debugBall {
		z.validate()
	}
}

// satExp returns x + y saturated to ±2*maxRadiusExp, a range that norm maps
// to zero, the smallest radius or +∞ without overflowing.
func satExp(x, y int64) int64 {
	const lim = 2 * maxRadiusExp
	s := x + y
	switch {
	case y > 0 && s < x:
		return lim
	case y < 0 && s > x:
		return -lim
	case s > lim:
		return lim
	case s < -lim:
		return -lim
	}
	return s
}

func (x *Radius) validate() {
	if !debugBall {
		// avoid performance bugs
		panic("validate called but debugBall is not set")
	}
	switch x.form {
	case zero:
		if x.mant != 0 || x.exp != 0 {
			panic(fmt.Sprintf("zero radius with mantissa %#x and exponent %d", x.mant, x.exp))
		}
	case finite:
		if x.mant < mantMin || x.mant >= mantMax {
			panic(fmt.Sprintf("radius mantissa %#x not normalized", x.mant))
		}
		if x.exp > maxRadiusExp || x.exp < -maxRadiusExp {
			panic(fmt.Sprintf("radius exponent %d out of range", x.exp))
		}
	case inf:
	default:
		panic(fmt.Sprintf("invalid radius form %d", x.form))
	}
}
