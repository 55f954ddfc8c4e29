package cfloat

import "math/big"

// Exact helpers. The returned values carry enough precision for the result to
// be exact, so that callers round only once.

func exactMul(x, y *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.MinPrec()+y.MinPrec()).Mul(x, y)
}

func exactAdd(x, y *big.Float) *big.Float {
	switch {
	case x.Sign() == 0:
		return new(big.Float).Set(y)
	case y.Sign() == 0:
		return new(big.Float).Set(x)
	case x.IsInf() || y.IsInf():
		return new(big.Float).Add(x, y)
	}
	hx, lx := span(x)
	hy, ly := span(y)
	if hy > hx {
		hx = hy
	}
	if ly < lx {
		lx = ly
	}
	return new(big.Float).SetPrec(uint(hx-lx) + 1).Add(x, y)
}

func exactSub(x, y *big.Float) *big.Float {
	return exactAdd(x, new(big.Float).Neg(y))
}

// span returns h and l such that |x| < 2**h and x is a multiple of 2**l.
func span(x *big.Float) (h, l int) {
	h = x.MantExp(nil)
	return h, h - int(x.MinPrec())
}
