package types

import "math"

// Numeric domains for every supported field kind. An N-bit unsigned field
// holds [0, 2^N-1]; an N-bit signed field holds [-2^(N-1), 2^(N-1)-1] in
// two's-complement form. Float fields hold any value whose magnitude fits the
// target precision; exactness is not required, only range.

const (
	MaxUint8  = 1<<8 - 1
	MaxUint16 = 1<<16 - 1
	MaxUint32 = 1<<32 - 1

	MinInt8  = -1 << 7
	MaxInt8  = 1<<7 - 1
	MinInt16 = -1 << 15
	MaxInt16 = 1<<15 - 1
	MinInt32 = -1 << 31
	MaxInt32 = 1<<31 - 1

	// MaxMagnitudeFloat32 is the largest finite magnitude a single-precision
	// field can hold (3.4028234663852886e+38).
	MaxMagnitudeFloat32 = math.MaxFloat32

	// MaxMagnitudeFloat64 is the largest finite magnitude a double-precision
	// field can hold (1.7976931348623157e+308).
	MaxMagnitudeFloat64 = math.MaxFloat64
)

// IntegerDomain returns the inclusive [min, max] domain for an integer kind.
// It reports false for float kinds and invalid kinds.
func IntegerDomain(k Kind) (min, max int64, ok bool) {
	switch k {
	case Uint8:
		return 0, MaxUint8, true
	case Uint16:
		return 0, MaxUint16, true
	case Uint32:
		return 0, MaxUint32, true
	case Int8:
		return MinInt8, MaxInt8, true
	case Int16:
		return MinInt16, MaxInt16, true
	case Int32:
		return MinInt32, MaxInt32, true
	default:
		return 0, 0, false
	}
}
