package cfloat

import "math/big"

// Mode is a pair of big.RoundingMode values, one for the real part and one
// for the imaginary part of a result.
type Mode uint8

// Commonly used rounding mode pairs.
const (
	ModeNN = Mode(big.ToNearestEven) | Mode(big.ToNearestEven)<<4 // nearest-even for both parts
	ModeZZ = Mode(big.ToZero) | Mode(big.ToZero)<<4               // toward zero for both parts
)

// MakeMode returns the mode pair (re, im).
func MakeMode(re, im big.RoundingMode) Mode {
	return Mode(re&0xf) | Mode(im&0xf)<<4
}

// Re returns the rounding mode for the real part.
func (m Mode) Re() big.RoundingMode { return big.RoundingMode(m & 0xf) }

// Im returns the rounding mode for the imaginary part.
func (m Mode) Im() big.RoundingMode { return big.RoundingMode(m >> 4) }

func (m Mode) String() string {
	return "(" + m.Re().String() + ", " + m.Im().String() + ")"
}

// flip returns the mode to use on the magnitude of a negative value so that
// the signed result is rounded in direction m.
func flip(m big.RoundingMode) big.RoundingMode {
	switch m {
	case big.ToNegativeInf:
		return big.ToPositiveInf
	case big.ToPositiveInf:
		return big.ToNegativeInf
	}
	return m
}
