// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"math/big"
	"testing"

	"github.com/db47h/ball"
	"github.com/db47h/ball/cfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sqrt3i(prec uint) *ball.Ball {
	x := new(ball.Ball).SetInt64s(3, 1, prec)
	return x.Sqrt(x)
}

func TestContext_Eval(t *testing.T) {
	modes := []cfloat.Mode{
		cfloat.ModeNN,
		cfloat.ModeZZ,
		cfloat.MakeMode(big.ToPositiveInf, big.ToNegativeInf),
	}
	for _, prec := range []uint{10, 53, 200} {
		for _, mode := range modes {
			ctx := New(prec, mode)
			z := cfloat.New(7)
			re, im := ctx.Eval(z, sqrt3i)
			require.NoError(t, ctx.Err())

			// the centre of a high precision ball rounds like the
			// exact value
			want := cfloat.New(prec)
			wantRe, wantIm := sqrt3i(prec+200).Round(want, mode)
			assert.True(t, want.Equal(z), "prec %d, mode %v: got %v, want %v", prec, mode, z, want)
			assert.Equal(t, wantRe, re)
			assert.Equal(t, wantIm, im)
			assert.Equal(t, prec, z.PrecRe())
			assert.Equal(t, prec, z.PrecIm())
		}
	}
}

func TestContext_EvalMaxPrec(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := New(53, cfloat.ModeNN).SetMaxPrec(300).SetLogger(zap.New(core))
	z := ctx.NewInt64s(7, 7)
	var precs []uint
	ctx.Eval(z, func(prec uint) *ball.Ball {
		precs = append(precs, prec)
		x := new(ball.Ball).SetInt64s(1, 1, prec)
		return x.Mul(x, new(ball.Ball).SetInt64s(1, -1, prec))
	})
	assert.Equal(t, []uint{63, 126, 252, 300}, precs)
	assert.True(t, z.Equal(ctx.NewInt64s(7, 7)), "z must be left unchanged")

	err := ctx.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxPrec))
	assert.NoError(t, ctx.Err(), "Err must clear the error")

	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.Equal(t, int64(300), int64(warn[0].ContextMap()["maxPrec"].(uint64)))
}

func TestContext_EvalExact(t *testing.T) {
	ctx := New(53, cfloat.ModeNN).SetMaxPrec(256)
	z := ctx.New()

	// an exact ball rounds at once
	re, im := ctx.Eval(z, func(prec uint) *ball.Ball {
		return new(ball.Ball).SetInt64s(3, 5, prec)
	})
	require.NoError(t, ctx.Err())
	assert.True(t, z.Equal(ctx.NewInt64s(3, 5)))
	assert.Equal(t, big.Exact, re)
	assert.Equal(t, big.Exact, im)

	// (3+5i)×1 is exact, but Mul adds a rounding error to the radius
	var steps int
	mul := func(prec uint) *ball.Ball {
		steps++
		x := new(ball.Ball).SetInt64s(3, 5, prec)
		return x.Mul(x, new(ball.Ball).SetInt64s(1, 0, prec))
	}
	z = ctx.New()
	ctx.Eval(z, mul)
	assert.True(t, errors.Is(ctx.Err(), ErrMaxPrec))
	assert.Equal(t, 4, steps) // 63, 126, 252 and 256 bits
	assert.True(t, z.Equal(ctx.New()), "z must be left unchanged")

	// rounding the centre directly
	c := cfloat.New(53)
	re, im = mul(53).Round(c, cfloat.ModeNN)
	assert.True(t, c.Equal(ctx.NewInt64s(3, 5)))
	assert.Equal(t, big.Exact, re)
	assert.Equal(t, big.Exact, im)
}

func TestContext_EvalStartPrec(t *testing.T) {
	ctx := New(20, cfloat.ModeNN).SetStartPrec(1000)
	var first uint
	ctx.Eval(ctx.New(), func(prec uint) *ball.Ball {
		if first == 0 {
			first = prec
		}
		return sqrt3i(prec)
	})
	require.NoError(t, ctx.Err())
	assert.Equal(t, uint(1000), first)
}

func TestContext_EvalNaN(t *testing.T) {
	ctx := New(53, cfloat.ModeNN)
	calls := 0
	f := func(prec uint) *ball.Ball {
		calls++
		var zero big.Float
		new(big.Float).Quo(&zero, &zero)
		return nil
	}
	ctx.Eval(ctx.New(), f)
	ctx.Eval(ctx.New(), f)
	assert.Equal(t, 1, calls, "evaluations must be no-ops after an error")

	err := ctx.Err()
	var nan big.ErrNaN
	require.True(t, errors.As(err, &nan))

	ctx.Eval(ctx.New(), sqrt3i)
	assert.NoError(t, ctx.Err())
}

func TestContext_Round(t *testing.T) {
	ctx := New(24, cfloat.ModeNN)
	z := ctx.New()

	// a 20 bits centre is a 24 bits number
	_, _, ok := ctx.Round(z, sqrt3i(20))
	assert.False(t, ok)
	_, _, ok = ctx.Round(z, new(ball.Ball).SetInt64s(1, 0, 10).SetInf())
	assert.False(t, ok)

	re, im, ok := ctx.Round(z, new(ball.Ball).SetInt64s(1, 1<<30+1, 10))
	require.True(t, ok)
	assert.Equal(t, big.Exact, re)
	assert.Equal(t, big.Below, im)
	assert.Equal(t, "(1 1073741824)", z.String())
}

func TestContext_Settings(t *testing.T) {
	ctx := New(0, cfloat.ModeZZ)
	assert.Equal(t, uint(ball.DefaultPrec), ctx.Prec())
	assert.Equal(t, cfloat.ModeZZ, ctx.Mode())
	assert.Equal(t, uint(DefaultMaxPrec), ctx.MaxPrec())
	assert.Equal(t, uint(0), ctx.StartPrec())
	ctx.SetPrec(big.MaxPrec + 1)
	assert.Equal(t, uint(big.MaxPrec), ctx.Prec())

	z, ok := ctx.SetPrec(10).NewString("(0.1 3)")
	require.True(t, ok)
	assert.Equal(t, uint(10), z.Prec())
	f := ctx.NewFloat64s(1.5, 2)
	assert.Equal(t, "(1.5 2)", f.String())
}
