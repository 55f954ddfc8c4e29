package cfloat

import "math/big"

// CanRound reports whether every real number t with |x - t| ≤ 2**errExp
// rounds to the same prec-bit value in the given mode, with the same
// accuracy. It returns false if x is zero or infinite, or if the error
// interval contains zero.
//
// When CanRound returns true, rounding x yields the correctly rounded value
// of t, and the accuracy reported for x is the accuracy of t's rounding.
func CanRound(x *big.Float, errExp int, prec uint, mode big.RoundingMode) bool {
	if x.Sign() == 0 || x.IsInf() {
		return false
	}
	e := new(big.Float).SetMantExp(big.NewFloat(1), errExp)
	lo, hi := exactSub(x, e), exactAdd(x, e)
	if lo.Sign() != x.Sign() || hi.Sign() != x.Sign() {
		return false
	}
	l := new(big.Float).SetPrec(prec).SetMode(mode).Set(lo)
	h := new(big.Float).SetPrec(prec).SetMode(mode).Set(hi)
	return l.Cmp(h) == 0 && l.Acc() == h.Acc() && l.Acc() != big.Exact
}
