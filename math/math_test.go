package math

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/db47h/ball"
	"github.com/db47h/ball/cfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	piDigits  = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095"
	ln2Digits = "0.6931471805599453094172321214581765680755001343602552541206800094933936219696947156058633269964186875420014810205706857336855202357"
	// e**(1+i)
	exp1iRe = "1.468693939915885157138967597326604261326956736629008722797675676310936965859512138722724497545901937305451724172505351974197226149"
	exp1iIm = "2.287355287178842391208171906700501808955586256668355680938658114103647160189345409267344852041549275844077606084282199560698090649"
)

const refPrec = 1000

func ref(t *testing.T, re, im string) *cfloat.Complex {
	t.Helper()
	c, ok := cfloat.New(refPrec).SetString(re + " " + im)
	require.True(t, ok)
	return c
}

func norm2(x *cfloat.Complex) *big.Float {
	a := new(big.Float).SetPrec(refPrec).Mul(x.Re(), x.Re())
	b := new(big.Float).SetPrec(refPrec).Mul(x.Im(), x.Im())
	return a.Add(a, b)
}

// contains reports whether the ball b contains v.
func contains(b *ball.Ball, v *cfloat.Complex) bool {
	r := b.Radius()
	if r.IsInf() {
		return true
	}
	c := b.Centre(nil)
	d := cfloat.New(refPrec).Sub(v, c, cfloat.ModeNN)
	rf := r.Float(new(big.Float).SetPrec(refPrec))
	rhs := norm2(c)
	rhs.Mul(rhs, rf).Mul(rhs, rf)
	return norm2(d).Cmp(rhs) <= 0
}

// radiusExp returns an upper bound of log2 of the radius of b.
func radiusExp(b *ball.Ball) int64 {
	r := b.Radius()
	return r.Exp()
}

func TestPi(t *testing.T) {
	want := ref(t, piDigits, "0")
	for _, prec := range []uint{0, 2, 10, 53, 100, 300, 64} {
		x := Pi(prec)
		if prec == 0 {
			prec = ball.DefaultPrec
		}
		assert.Equal(t, prec, x.Prec())
		assert.True(t, contains(x, want), "prec %d: %v", prec, x)
		assert.LessOrEqual(t, radiusExp(x), 2-int64(prec), "prec %d: %v", prec, x)
	}
}

func TestLn2(t *testing.T) {
	want := ref(t, ln2Digits, "0")
	for _, prec := range []uint{10, 53, 200, 400} {
		x := Ln2(prec)
		assert.Equal(t, prec, x.Prec())
		assert.True(t, contains(x, want), "prec %d: %v", prec, x)
		assert.LessOrEqual(t, radiusExp(x), 2-int64(prec), "prec %d: %v", prec, x)
	}
}

func TestConstants_concurrent(t *testing.T) {
	pi := ref(t, piDigits, "0")
	ln2 := ref(t, ln2Digits, "0")
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		prec := uint(50 + 40*i)
		g.Go(func() error {
			for j := 0; j < 5; j++ {
				if x := Pi(prec); !contains(x, pi) {
					t.Errorf("Pi(%d) = %v", prec, x)
				}
				if x := Ln2(prec); !contains(x, ln2) {
					t.Errorf("Ln2(%d) = %v", prec, x)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestExp(t *testing.T) {
	want := ref(t, exp1iRe, exp1iIm)
	for _, prec := range []uint{24, 53, 200, 400} {
		x := new(ball.Ball).SetInt64s(1, 1, prec)
		z := Exp(new(ball.Ball), x)
		assert.Equal(t, prec, z.Prec())
		assert.True(t, contains(z, want), "prec %d: %v", prec, z)
		assert.LessOrEqual(t, radiusExp(z), 4-int64(prec), "prec %d: %v", prec, z)

		// aliasing
		Exp(x, x)
		assert.True(t, x.Centre(nil).Equal(z.Centre(nil)))
	}
}

func TestExp_special(t *testing.T) {
	var z ball.Ball
	Exp(&z, new(ball.Ball).SetInt64s(0, 0, 30))
	assert.True(t, z.IsExact())
	assert.Equal(t, "(1 0) ± 0", z.String())

	Exp(&z, ball.New(30))
	r := z.Radius()
	assert.True(t, r.IsInf())

	Exp(&z, new(ball.Ball).SetInt64s(1<<29, 0, 30))
	r = z.Radius()
	assert.True(t, r.IsInf())

	// e**iπ = -1
	x := Pi(100)
	x.Mul(x, new(ball.Ball).SetInt64s(0, 1, 100))
	Exp(&z, x)
	assert.True(t, contains(&z, ref(t, "-1", "0")), "%v", &z)
	assert.LessOrEqual(t, radiusExp(&z), int64(-90))
}

func TestExp_enclosure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	one := ref(t, "1", "0")
	for i := 0; i < 50; i++ {
		re, im := 4*rng.NormFloat64(), 4*rng.NormFloat64()
		var r ball.Radius
		r.SetUint64Exp(1, -int64(20+rng.Intn(30)))
		x := ball.NewComplex(cfloat.New(53).SetFloat64s(re, im)).SetRadius(&r)
		e := Exp(new(ball.Ball), x)
		require.False(t, radiusExp(e) > -10, "%v", e)

		// e**x × e**-x = 1
		y := Exp(new(ball.Ball), new(ball.Ball).Neg(x))
		assert.True(t, contains(y.Mul(y, e), one), "x = %v", x)

		// points of x map into e
		d := 0.9 * r.Float64() * rng.Float64()
		t1 := cfloat.New(200).SetFloat64s(re, im)
		t1.Add(t1, new(cfloat.Complex).SetFloat64s(d*re, -d*im), cfloat.ModeNN)
		w := Exp(new(ball.Ball), ball.NewComplex(t1))
		assert.True(t, contains(e, w.Centre(nil)), "x = %v, t = %v", x, t1)
	}
}

func TestExp2(t *testing.T) {
	for _, td := range []struct {
		re, im int64
		want   string
	}{
		{10, 0, "1024"},
		{-3, 0, "0.125"},
		{0, 0, "1"},
		{62, 0, "4611686018427387904"},
	} {
		x := new(ball.Ball).SetInt64s(td.re, td.im, 53)
		z := Exp2(new(ball.Ball), x)
		assert.True(t, contains(z, ref(t, td.want, "0")), "2**%d = %v", td.re, z)
		assert.Equal(t, uint(53), z.Prec())
	}

	// 2**(i/ln2) = e**i
	x := Ln2(200)
	x.Quo(new(ball.Ball).SetInt64s(0, 1, 200), x)
	z := Exp2(new(ball.Ball), x)
	e := Exp(new(ball.Ball), new(ball.Ball).SetInt64s(0, 1, 300))
	assert.True(t, contains(z, e.Centre(nil)), "%v ∌ %v", z, e)
}
