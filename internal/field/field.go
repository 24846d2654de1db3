// Package field implements the two transcoding algorithms every codec
// operation is built on: combining/splitting unsigned byte runs (up to eight
// bytes) at an arbitrary buffer offset, and the arithmetic two's-complement
// conversion layered on top of the unsigned forms for the 1/2/4-byte signed
// widths.
//
// All arithmetic runs in a uint64 accumulator. Combining four bytes with a
// 32-bit signed intermediate would overflow when the high byte has its top
// bit set; the widening accumulator makes the width-4 combine safe without a
// special case.
//
// Callers are expected to have validated offsets already. Functions here
// index the buffer directly and panic on out-of-range access, matching the
// unchecked operation contract.
package field

// MaxUnsigned returns 2^(8*width) - 1, the largest value an unsigned field of
// the given byte width can hold.
func MaxUnsigned(width int) uint64 {
	return 1<<(8*width) - 1
}

// SignBit returns the most-significant-bit mask for the given byte width
// (0x80 for width 1, 0x8000 for width 2, 0x80000000 for width 4).
func SignBit(width int) uint64 {
	return 1 << (8*width - 1)
}

// ReadUint combines width consecutive bytes starting at off into an unsigned
// integer. When bigEndian is true the byte at off is the most significant;
// otherwise it is the least significant.
func ReadUint(b []byte, off, width int, bigEndian bool) uint64 {
	var u uint64
	if bigEndian {
		for i := 0; i < width; i++ {
			u = u*256 + uint64(b[off+i])
		}
	} else {
		for i := width - 1; i >= 0; i-- {
			u = u*256 + uint64(b[off+i])
		}
	}
	return u
}

// PutUint splits v into width bytes starting at off, mirroring the ReadUint
// layout exactly so a write followed by a read returns v unchanged. Bits of v
// above the field width are ignored; validated callers reject such values
// before getting here.
func PutUint(b []byte, off int, v uint64, width int, bigEndian bool) {
	if bigEndian {
		for i := width - 1; i >= 0; i-- {
			b[off+i] = byte(v % 256)
			v /= 256
		}
	} else {
		for i := 0; i < width; i++ {
			b[off+i] = byte(v % 256)
			v /= 256
		}
	}
}

// ReadInt decodes a two's-complement signed integer of the given byte width.
//
// The stored pattern is read unsigned first. A clear sign bit means the
// unsigned value is the signed value. A set sign bit means the pattern is
// 2^(8w) minus the magnitude, recovered as -(maxUnsigned - u + 1). The
// conversion is arithmetic on purpose: bitwise NOT operates over the operand
// type's full native width, which matches the field width only when the two
// happen to agree, while the arithmetic form is exact for every field width.
func ReadInt(b []byte, off, width int, bigEndian bool) int64 {
	u := ReadUint(b, off, width, bigEndian)
	if u < SignBit(width) {
		return int64(u)
	}
	return -int64(MaxUnsigned(width) - u + 1)
}

// PutInt encodes a two's-complement signed integer of the given byte width.
// Non-negative values share their bit pattern with the unsigned encoding and
// are written directly. Negative values are first converted to the unsigned
// pattern maxUnsigned - magnitude + 1, again arithmetically rather than with
// bitwise NOT (see ReadInt).
func PutInt(b []byte, off int, v int64, width int, bigEndian bool) {
	if v >= 0 {
		PutUint(b, off, uint64(v), width, bigEndian)
		return
	}
	PutUint(b, off, MaxUnsigned(width)-uint64(-v)+1, width, bigEndian)
}
