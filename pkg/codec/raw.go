package codec

import (
	"github.com/joshuapare/binfield/internal/field"
	"github.com/joshuapare/binfield/internal/ieee754"
)

// RawBuffer is the unchecked view of a Buffer, for callers that have already
// established their preconditions and want the transcoding without the
// checks. The byte layout is identical to the checked operations; only the
// validation is gone. Out-of-range offsets panic via slice indexing, and
// results for otherwise-invalid inputs are unspecified.
type RawBuffer struct {
	data []byte
}

func (r RawBuffer) ReadUint8(off int) uint8 {
	return r.data[off]
}

func (r RawBuffer) ReadUint16LE(off int) uint16 {
	return uint16(field.ReadUint(r.data, off, 2, false))
}

func (r RawBuffer) ReadUint16BE(off int) uint16 {
	return uint16(field.ReadUint(r.data, off, 2, true))
}

func (r RawBuffer) ReadUint32LE(off int) uint32 {
	return uint32(field.ReadUint(r.data, off, 4, false))
}

func (r RawBuffer) ReadUint32BE(off int) uint32 {
	return uint32(field.ReadUint(r.data, off, 4, true))
}

func (r RawBuffer) ReadInt8(off int) int8 {
	return int8(field.ReadInt(r.data, off, 1, false))
}

func (r RawBuffer) ReadInt16LE(off int) int16 {
	return int16(field.ReadInt(r.data, off, 2, false))
}

func (r RawBuffer) ReadInt16BE(off int) int16 {
	return int16(field.ReadInt(r.data, off, 2, true))
}

func (r RawBuffer) ReadInt32LE(off int) int32 {
	return int32(field.ReadInt(r.data, off, 4, false))
}

func (r RawBuffer) ReadInt32BE(off int) int32 {
	return int32(field.ReadInt(r.data, off, 4, true))
}

func (r RawBuffer) ReadFloat32LE(off int) float32 {
	return float32(ieee754.Unpack(r.data, off, false, ieee754.MantissaSingle, ieee754.WidthSingle))
}

func (r RawBuffer) ReadFloat32BE(off int) float32 {
	return float32(ieee754.Unpack(r.data, off, true, ieee754.MantissaSingle, ieee754.WidthSingle))
}

func (r RawBuffer) ReadFloat64LE(off int) float64 {
	return ieee754.Unpack(r.data, off, false, ieee754.MantissaDouble, ieee754.WidthDouble)
}

func (r RawBuffer) ReadFloat64BE(off int) float64 {
	return ieee754.Unpack(r.data, off, true, ieee754.MantissaDouble, ieee754.WidthDouble)
}

func (r RawBuffer) WriteUint8(off int, v uint8) {
	r.data[off] = v
}

func (r RawBuffer) WriteUint16LE(off int, v uint16) {
	field.PutUint(r.data, off, uint64(v), 2, false)
}

func (r RawBuffer) WriteUint16BE(off int, v uint16) {
	field.PutUint(r.data, off, uint64(v), 2, true)
}

func (r RawBuffer) WriteUint32LE(off int, v uint32) {
	field.PutUint(r.data, off, uint64(v), 4, false)
}

func (r RawBuffer) WriteUint32BE(off int, v uint32) {
	field.PutUint(r.data, off, uint64(v), 4, true)
}

func (r RawBuffer) WriteInt8(off int, v int8) {
	field.PutInt(r.data, off, int64(v), 1, false)
}

func (r RawBuffer) WriteInt16LE(off int, v int16) {
	field.PutInt(r.data, off, int64(v), 2, false)
}

func (r RawBuffer) WriteInt16BE(off int, v int16) {
	field.PutInt(r.data, off, int64(v), 2, true)
}

func (r RawBuffer) WriteInt32LE(off int, v int32) {
	field.PutInt(r.data, off, int64(v), 4, false)
}

func (r RawBuffer) WriteInt32BE(off int, v int32) {
	field.PutInt(r.data, off, int64(v), 4, true)
}

func (r RawBuffer) WriteFloat32LE(off int, v float32) {
	ieee754.Pack(r.data, off, float64(v), false, ieee754.MantissaSingle, ieee754.WidthSingle)
}

func (r RawBuffer) WriteFloat32BE(off int, v float32) {
	ieee754.Pack(r.data, off, float64(v), true, ieee754.MantissaSingle, ieee754.WidthSingle)
}

func (r RawBuffer) WriteFloat64LE(off int, v float64) {
	ieee754.Pack(r.data, off, v, false, ieee754.MantissaDouble, ieee754.WidthDouble)
}

func (r RawBuffer) WriteFloat64BE(off int, v float64) {
	ieee754.Pack(r.data, off, v, true, ieee754.MantissaDouble, ieee754.WidthDouble)
}
