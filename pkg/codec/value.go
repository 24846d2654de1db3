package codec

import (
	"github.com/joshuapare/binfield/internal/field"
	"github.com/joshuapare/binfield/internal/ieee754"
	"github.com/joshuapare/binfield/pkg/types"
)

// Dynamically-typed access, used by layout descriptors and by tooling that
// picks the field kind at run time. Unlike the typed methods, the byte order
// arrives as a value and the written number as a float64, so the order and
// numeric-domain preconditions are enforced here rather than by the type
// system. Order is ignored for one-byte kinds.

// ReadValue decodes the field of kind k at off and returns it as the kind's
// natural Go type (uint8..uint32, int8..int32, float32, or float64).
func (b Buffer) ReadValue(k types.Kind, off int, order types.ByteOrder) (any, error) {
	if !k.Valid() {
		return nil, types.Violationf(types.KindDomain, "invalid field kind %v", k)
	}
	if k.Width() > 1 {
		if err := checkOrder(order); err != nil {
			return nil, err
		}
	}
	if err := checkSpan(len(b.data), off, k.Width()); err != nil {
		return nil, err
	}
	bigEndian := order == types.BigEndian
	switch k {
	case types.Uint8:
		return b.data[off], nil
	case types.Uint16:
		return uint16(field.ReadUint(b.data, off, 2, bigEndian)), nil
	case types.Uint32:
		return uint32(field.ReadUint(b.data, off, 4, bigEndian)), nil
	case types.Int8:
		return int8(field.ReadInt(b.data, off, 1, bigEndian)), nil
	case types.Int16:
		return int16(field.ReadInt(b.data, off, 2, bigEndian)), nil
	case types.Int32:
		return int32(field.ReadInt(b.data, off, 4, bigEndian)), nil
	case types.Float32:
		return float32(ieee754.Unpack(b.data, off, bigEndian, ieee754.MantissaSingle, ieee754.WidthSingle)), nil
	default:
		return ieee754.Unpack(b.data, off, bigEndian, ieee754.MantissaDouble, ieee754.WidthDouble), nil
	}
}

// WriteValue encodes v into the field of kind k at off. Integer kinds reject
// fractional values and values outside the kind's two's-complement domain;
// the single-precision kind rejects magnitudes above the representable range.
// Precision loss is accepted, only range violations are errors. All checks
// run before any byte is mutated.
func (b Buffer) WriteValue(k types.Kind, off int, order types.ByteOrder, v float64) error {
	if !k.Valid() {
		return types.Violationf(types.KindDomain, "invalid field kind %v", k)
	}
	if k.Width() > 1 {
		if err := checkOrder(order); err != nil {
			return err
		}
	}
	if k.Float() {
		if err := checkFloat(k, v); err != nil {
			return err
		}
	} else if err := checkInteger(k, v); err != nil {
		return err
	}
	if err := checkSpan(len(b.data), off, k.Width()); err != nil {
		return err
	}
	bigEndian := order == types.BigEndian
	switch k {
	case types.Uint8, types.Uint16, types.Uint32:
		field.PutUint(b.data, off, uint64(v), k.Width(), bigEndian)
	case types.Int8, types.Int16, types.Int32:
		field.PutInt(b.data, off, int64(v), k.Width(), bigEndian)
	case types.Float32:
		ieee754.Pack(b.data, off, v, bigEndian, ieee754.MantissaSingle, ieee754.WidthSingle)
	default:
		ieee754.Pack(b.data, off, v, bigEndian, ieee754.MantissaDouble, ieee754.WidthDouble)
	}
	return nil
}
