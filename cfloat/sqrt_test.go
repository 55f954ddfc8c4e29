package cfloat

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplex_SqrtExact(t *testing.T) {
	for _, td := range []struct {
		x, want string
	}{
		{"(-4 0)", "(0 2)"},
		{"(-4 -0)", "(0 -2)"},
		{"(3 4)", "(2 1)"},
		{"(-3 -4)", "(1 -2)"},
		{"(0 2)", "(1 1)"},
		{"(0 -2)", "(1 -1)"},
		{"(9 0)", "(3 0)"},
		{"(0 0)", "(0 0)"},
		{"(0.25 0)", "(0.5 0)"},
	} {
		x, ok := new(Complex).SetString(td.x)
		require.True(t, ok)
		want, _ := new(Complex).SetString(td.want)
		z := New(24).Sqrt(x, ModeNN)
		assert.True(t, z.Equal(want), "sqrt%s = %s, want %s", td.x, z, td.want)
		re, im := z.Acc()
		assert.Equal(t, big.Exact, re, td.x)
		assert.Equal(t, big.Exact, im, td.x)
	}
}

func TestComplex_SqrtSigns(t *testing.T) {
	z := New(53).Sqrt(new(Complex).SetFloat64s(-4, math.Copysign(0, -1)), ModeNN)
	assert.True(t, z.Im().Signbit())
	z.Sqrt(new(Complex).SetFloat64s(4, math.Copysign(0, -1)), ModeNN)
	assert.True(t, z.Im().Signbit())
	assert.False(t, z.Re().Signbit())
}

func TestComplex_SqrtInf(t *testing.T) {
	inf := math.Inf(1)
	for _, td := range []struct {
		re, im         float64
		wantRe, wantIm float64
	}{
		{inf, 1, inf, 0},
		{-inf, 1, 0, inf},
		{-inf, -1, 0, -inf},
		{1, inf, inf, inf},
		{-1, -inf, inf, -inf},
	} {
		z := New(53).Sqrt(new(Complex).SetFloat64s(td.re, td.im), ModeNN)
		re, _ := z.Re().Float64()
		im, _ := z.Im().Float64()
		assert.Equal(t, td.wantRe, re)
		assert.Equal(t, td.wantIm, im)
	}
}

func TestComplex_SqrtReal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		f := math.Ldexp(rng.Float64()+0.1, rng.Intn(200)-100)
		z := New(53).Sqrt(new(Complex).SetFloat64s(f, 0), ModeNN)
		got, _ := z.Re().Float64()
		require.Equal(t, math.Sqrt(f), got, "sqrt(%g)", f)
		assert.Zero(t, z.Im().Sign())

		z.Sqrt(new(Complex).SetFloat64s(-f, 0), ModeNN)
		got, _ = z.Im().Float64()
		require.Equal(t, math.Sqrt(f), got, "sqrt(-%g)", f)
	}
}

// TestComplex_SqrtRounding checks directed results against a high precision
// reference: the rounded-down and rounded-up results must bracket it and be
// one ulp apart when inexact.
func TestComplex_SqrtRounding(t *testing.T) {
	const prec = 40
	rng := rand.New(rand.NewSource(4))
	down := MakeMode(big.ToNegativeInf, big.ToNegativeInf)
	up := MakeMode(big.ToPositiveInf, big.ToPositiveInf)
	for i := 0; i < 300; i++ {
		x := new(Complex).SetFloat64s(randFloat(rng), randFloat(rng))
		ref := New(1000).Sqrt(x, ModeNN)
		lo := New(prec).Sqrt(x, down)
		hi := New(prec).Sqrt(x, up)
		for _, p := range []struct {
			name    string
			l, h, r *big.Float
		}{
			{"re", lo.Re(), hi.Re(), ref.Re()},
			{"im", lo.Im(), hi.Im(), ref.Im()},
		} {
			require.LessOrEqual(t, p.l.Cmp(p.r), 0, "%s: sqrt%v", p.name, x)
			require.GreaterOrEqual(t, p.h.Cmp(p.r), 0, "%s: sqrt%v", p.name, x)
			ulp := new(big.Float).SetMantExp(big.NewFloat(1), p.l.MantExp(nil)-prec)
			next := new(big.Float).SetPrec(prec).Add(p.l, ulp)
			assert.True(t, p.h.Cmp(p.l) == 0 || p.h.Cmp(next) <= 0, "%s: sqrt%v", p.name, x)
		}
		// ref² ≈ x
		sq := New(900).Sqr(ref, ModeNN)
		d := New(900).Sub(sq, x, ModeNN)
		assert.True(t, tiny(d.Re(), -800), "sqrt%v² - x = %v", x, d)
		assert.True(t, tiny(d.Im(), -800), "sqrt%v² - x = %v", x, d)
	}
}

func tiny(x *big.Float, exp int) bool {
	return x.Sign() == 0 || x.MantExp(nil) < exp
}

func TestCanRound(t *testing.T) {
	onePlus := func(e int) *big.Float {
		x := new(big.Float).SetPrec(200).SetInt64(1)
		return x.Add(x, new(big.Float).SetMantExp(big.NewFloat(1), e))
	}
	for _, td := range []struct {
		name   string
		x      *big.Float
		errExp int
		prec   uint
		mode   big.RoundingMode
		want   bool
	}{
		{"tight", onePlus(-60), -100, 53, big.ToNearestEven, true},
		{"tight/down", onePlus(-60), -100, 53, big.ToZero, true},
		{"loose", onePlus(-60), -50, 53, big.ToNearestEven, false},
		{"midpoint", onePlus(-53), -100, 53, big.ToNearestEven, false},
		{"representable", onePlus(-52), -100, 53, big.ToZero, false},
		{"negative", new(big.Float).Neg(onePlus(-60)), -100, 53, big.ToPositiveInf, true},
		{"spans zero", big.NewFloat(0x1p-10), -5, 53, big.ToNearestEven, false},
		{"zero", new(big.Float), -100, 53, big.ToNearestEven, false},
		{"inf", new(big.Float).SetInf(false), -100, 53, big.ToNearestEven, false},
	} {
		assert.Equal(t, td.want, CanRound(td.x, td.errExp, td.prec, td.mode), td.name)
	}
}
