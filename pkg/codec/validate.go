package codec

import (
	"math"

	"github.com/joshuapare/binfield/pkg/types"
)

// checkSpan verifies that the width-byte span starting at off lies entirely
// inside a buffer of n bytes. Checked operations call this before touching
// any byte.
func checkSpan(n, off, width int) error {
	if off < 0 {
		return types.Violationf(types.KindBounds, "offset %d is negative", off)
	}
	if width < 0 {
		return types.Violationf(types.KindBounds, "field width %d is negative", width)
	}
	// Written as a subtraction so off near MaxInt cannot overflow the
	// comparison. A width larger than n makes n-width negative, which off
	// always exceeds.
	if off > n-width {
		return types.Violationf(types.KindBounds,
			"%d-byte field at offset %d exceeds buffer length %d", width, off, n)
	}
	return nil
}

// checkOrder rejects the unset zero value and any other undefined order.
// Multi-byte operations have no default byte order.
func checkOrder(order types.ByteOrder) error {
	if !order.Valid() {
		return types.Violationf(types.KindBadOrder,
			"byte order %v is not little-endian or big-endian", order)
	}
	return nil
}

// checkInteger validates a dynamically-typed value against an integer kind:
// it must be integral and inside the kind's two's-complement domain.
func checkInteger(k types.Kind, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return types.Violationf(types.KindNotIntegral,
			"value %v is not an integer", v)
	}
	min, max, ok := types.IntegerDomain(k)
	if !ok {
		return types.Violationf(types.KindDomain, "%v is not an integer kind", k)
	}
	if v < float64(min) || v > float64(max) {
		return types.Violationf(types.KindDomain,
			"value %v outside %v domain [%d, %d]", v, k, min, max)
	}
	return nil
}

// checkFloat validates a dynamically-typed value against a float kind. Only
// magnitude overflow is rejected: precision loss, subnormals, and NaN are
// accepted. Every float64 value fits a float64 field, so only the
// single-precision kind can reject.
func checkFloat(k types.Kind, v float64) error {
	if k == types.Float32 && !math.IsNaN(v) && math.Abs(v) > types.MaxMagnitudeFloat32 {
		return types.Violationf(types.KindDomain,
			"value %v exceeds single-precision magnitude %v", v, types.MaxMagnitudeFloat32)
	}
	return nil
}
