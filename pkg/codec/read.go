package codec

import (
	"github.com/joshuapare/binfield/internal/field"
	"github.com/joshuapare/binfield/internal/ieee754"
)

// Checked read operations. Each validates the field span before touching the
// buffer and returns a *types.InvariantError on violation. Byte order is
// part of the method name; the one-byte forms have no order to pick.

// ReadUint8 returns the byte at off.
func (b Buffer) ReadUint8(off int) (uint8, error) {
	if err := checkSpan(len(b.data), off, 1); err != nil {
		return 0, err
	}
	return b.data[off], nil
}

// ReadUint16LE decodes the little-endian uint16 at off.
func (b Buffer) ReadUint16LE(off int) (uint16, error) {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return 0, err
	}
	return uint16(field.ReadUint(b.data, off, 2, false)), nil
}

// ReadUint16BE decodes the big-endian uint16 at off.
func (b Buffer) ReadUint16BE(off int) (uint16, error) {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return 0, err
	}
	return uint16(field.ReadUint(b.data, off, 2, true)), nil
}

// ReadUint32LE decodes the little-endian uint32 at off.
func (b Buffer) ReadUint32LE(off int) (uint32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return uint32(field.ReadUint(b.data, off, 4, false)), nil
}

// ReadUint32BE decodes the big-endian uint32 at off.
func (b Buffer) ReadUint32BE(off int) (uint32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return uint32(field.ReadUint(b.data, off, 4, true)), nil
}

// ReadInt8 decodes the two's-complement int8 at off.
func (b Buffer) ReadInt8(off int) (int8, error) {
	if err := checkSpan(len(b.data), off, 1); err != nil {
		return 0, err
	}
	return int8(field.ReadInt(b.data, off, 1, false)), nil
}

// ReadInt16LE decodes the little-endian two's-complement int16 at off.
func (b Buffer) ReadInt16LE(off int) (int16, error) {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return 0, err
	}
	return int16(field.ReadInt(b.data, off, 2, false)), nil
}

// ReadInt16BE decodes the big-endian two's-complement int16 at off.
func (b Buffer) ReadInt16BE(off int) (int16, error) {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return 0, err
	}
	return int16(field.ReadInt(b.data, off, 2, true)), nil
}

// ReadInt32LE decodes the little-endian two's-complement int32 at off.
func (b Buffer) ReadInt32LE(off int) (int32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return int32(field.ReadInt(b.data, off, 4, false)), nil
}

// ReadInt32BE decodes the big-endian two's-complement int32 at off.
func (b Buffer) ReadInt32BE(off int) (int32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return int32(field.ReadInt(b.data, off, 4, true)), nil
}

// ReadFloat32LE decodes the little-endian single-precision float at off.
func (b Buffer) ReadFloat32LE(off int) (float32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return float32(ieee754.Unpack(b.data, off, false, ieee754.MantissaSingle, ieee754.WidthSingle)), nil
}

// ReadFloat32BE decodes the big-endian single-precision float at off.
func (b Buffer) ReadFloat32BE(off int) (float32, error) {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return 0, err
	}
	return float32(ieee754.Unpack(b.data, off, true, ieee754.MantissaSingle, ieee754.WidthSingle)), nil
}

// ReadFloat64LE decodes the little-endian double-precision float at off.
func (b Buffer) ReadFloat64LE(off int) (float64, error) {
	if err := checkSpan(len(b.data), off, 8); err != nil {
		return 0, err
	}
	return ieee754.Unpack(b.data, off, false, ieee754.MantissaDouble, ieee754.WidthDouble), nil
}

// ReadFloat64BE decodes the big-endian double-precision float at off.
func (b Buffer) ReadFloat64BE(off int) (float64, error) {
	if err := checkSpan(len(b.data), off, 8); err != nil {
		return 0, err
	}
	return ieee754.Unpack(b.data, off, true, ieee754.MantissaDouble, ieee754.WidthDouble), nil
}
