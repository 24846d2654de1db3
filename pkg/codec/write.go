package codec

import (
	"github.com/joshuapare/binfield/internal/field"
	"github.com/joshuapare/binfield/internal/ieee754"
)

// Checked write operations. The typed parameters discharge the numeric
// domain preconditions statically (a uint16 cannot hold 65536), so only the
// span check remains; the dynamically-typed WriteValue path enforces the
// domain at run time. Validation happens before mutation, so a failed write
// leaves the buffer untouched.

// WriteUint8 stores v at off.
func (b Buffer) WriteUint8(off int, v uint8) error {
	if err := checkSpan(len(b.data), off, 1); err != nil {
		return err
	}
	b.data[off] = v
	return nil
}

// WriteUint16LE stores v at off in little-endian layout.
func (b Buffer) WriteUint16LE(off int, v uint16) error {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return err
	}
	field.PutUint(b.data, off, uint64(v), 2, false)
	return nil
}

// WriteUint16BE stores v at off in big-endian layout.
func (b Buffer) WriteUint16BE(off int, v uint16) error {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return err
	}
	field.PutUint(b.data, off, uint64(v), 2, true)
	return nil
}

// WriteUint32LE stores v at off in little-endian layout.
func (b Buffer) WriteUint32LE(off int, v uint32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	field.PutUint(b.data, off, uint64(v), 4, false)
	return nil
}

// WriteUint32BE stores v at off in big-endian layout.
func (b Buffer) WriteUint32BE(off int, v uint32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	field.PutUint(b.data, off, uint64(v), 4, true)
	return nil
}

// WriteInt8 stores v at off in two's-complement form.
func (b Buffer) WriteInt8(off int, v int8) error {
	if err := checkSpan(len(b.data), off, 1); err != nil {
		return err
	}
	field.PutInt(b.data, off, int64(v), 1, false)
	return nil
}

// WriteInt16LE stores v at off in little-endian two's-complement form.
func (b Buffer) WriteInt16LE(off int, v int16) error {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return err
	}
	field.PutInt(b.data, off, int64(v), 2, false)
	return nil
}

// WriteInt16BE stores v at off in big-endian two's-complement form.
func (b Buffer) WriteInt16BE(off int, v int16) error {
	if err := checkSpan(len(b.data), off, 2); err != nil {
		return err
	}
	field.PutInt(b.data, off, int64(v), 2, true)
	return nil
}

// WriteInt32LE stores v at off in little-endian two's-complement form.
func (b Buffer) WriteInt32LE(off int, v int32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	field.PutInt(b.data, off, int64(v), 4, false)
	return nil
}

// WriteInt32BE stores v at off in big-endian two's-complement form.
func (b Buffer) WriteInt32BE(off int, v int32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	field.PutInt(b.data, off, int64(v), 4, true)
	return nil
}

// WriteFloat32LE stores v at off as a little-endian single-precision float.
func (b Buffer) WriteFloat32LE(off int, v float32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	ieee754.Pack(b.data, off, float64(v), false, ieee754.MantissaSingle, ieee754.WidthSingle)
	return nil
}

// WriteFloat32BE stores v at off as a big-endian single-precision float.
func (b Buffer) WriteFloat32BE(off int, v float32) error {
	if err := checkSpan(len(b.data), off, 4); err != nil {
		return err
	}
	ieee754.Pack(b.data, off, float64(v), true, ieee754.MantissaSingle, ieee754.WidthSingle)
	return nil
}

// WriteFloat64LE stores v at off as a little-endian double-precision float.
func (b Buffer) WriteFloat64LE(off int, v float64) error {
	if err := checkSpan(len(b.data), off, 8); err != nil {
		return err
	}
	ieee754.Pack(b.data, off, v, false, ieee754.MantissaDouble, ieee754.WidthDouble)
	return nil
}

// WriteFloat64BE stores v at off as a big-endian double-precision float.
func (b Buffer) WriteFloat64BE(off int, v float64) error {
	if err := checkSpan(len(b.data), off, 8); err != nil {
		return err
	}
	ieee754.Pack(b.data, off, v, true, ieee754.MantissaDouble, ieee754.WidthDouble)
	return nil
}
