// Package ieee754 packs and unpacks IEEE-754 binary floating-point fields,
// parameterized by mantissa bit count and total byte width. The layout is
// fixed by the standard: one sign bit, then the biased exponent, then the
// mantissa, with the exponent width derived from the other two parameters.
//
// The codec layer treats this package as a provided building block and wraps
// it with the same validation applied to the integer paths. Like
// internal/field, functions here assume offsets were validated by the caller.
package ieee754

import (
	"math"

	"github.com/joshuapare/binfield/internal/field"
)

// Mantissa bit counts and byte widths for the two supported precisions.
const (
	MantissaSingle = 23
	MantissaDouble = 52
	WidthSingle    = 4
	WidthDouble    = 8
)

// Unpack decodes the floating-point field of the given shape starting at off.
func Unpack(b []byte, off int, bigEndian bool, mantBits, width int) float64 {
	totalBits := width * 8
	expBits := totalBits - mantBits - 1
	bias := 1<<(expBits-1) - 1
	maxExp := 1<<expBits - 1

	u := field.ReadUint(b, off, width, bigEndian)
	sign := u >> (totalBits - 1)
	exp := int(u >> mantBits & (1<<expBits - 1))
	mant := u & (1<<mantBits - 1)

	var v float64
	switch {
	case exp == maxExp && mant != 0:
		v = math.NaN()
	case exp == maxExp:
		v = math.Inf(1)
	case exp == 0:
		// Subnormal: no implicit leading bit, exponent pinned to 1-bias.
		v = math.Ldexp(float64(mant), 1-bias-mantBits)
	default:
		v = math.Ldexp(float64(mant|1<<mantBits), exp-bias-mantBits)
	}
	if sign != 0 {
		v = -v
	}
	return v
}

// Pack encodes v into the floating-point field of the given shape starting at
// off, rounding to nearest-even when v does not fit the mantissa exactly.
// Values whose magnitude exceeds the shape's finite range encode as infinity.
func Pack(b []byte, off int, v float64, bigEndian bool, mantBits, width int) {
	totalBits := width * 8
	expBits := totalBits - mantBits - 1
	bias := 1<<(expBits-1) - 1
	maxExp := 1<<expBits - 1

	var sign, mant uint64
	var exp int
	if math.Signbit(v) {
		sign = 1
		v = -v
	}
	switch {
	case math.IsNaN(v):
		exp = maxExp
		mant = 1 << (mantBits - 1)
	case math.IsInf(v, 0):
		exp = maxExp
	case v == 0:
		// Zero exponent, zero mantissa; the sign bit distinguishes -0.
	default:
		frac, e := math.Frexp(v) // v = frac * 2^e, frac in [0.5, 1)
		e--                      // significand 2*frac in [1, 2)
		if e < 1-bias {
			// Below the normal range: encode as mant * 2^(1-bias-mantBits).
			mant = uint64(math.RoundToEven(math.Ldexp(v, mantBits+bias-1)))
			if mant>>mantBits != 0 {
				// Rounding carried into the smallest normal.
				mant = 0
				exp = 1
			}
		} else {
			mant = uint64(math.RoundToEven(math.Ldexp(frac, mantBits+1)))
			if mant>>(mantBits+1) != 0 {
				// Rounding carried out of the significand.
				mant >>= 1
				e++
			}
			mant &= 1<<mantBits - 1
			exp = e + bias
			if exp >= maxExp {
				exp = maxExp
				mant = 0
			}
		}
	}
	u := sign<<(totalBits-1) | uint64(exp)<<mantBits | mant
	field.PutUint(b, off, u, width, bigEndian)
}
