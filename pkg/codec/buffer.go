package codec

// Buffer is a thin view over a caller-supplied byte slice with validated
// field access. The zero value is an empty buffer; every checked access on it
// fails with a bounds violation.
type Buffer struct {
	data []byte
}

// New wraps data in a Buffer. The slice is aliased, not copied: writes
// through the Buffer mutate data in place.
func New(data []byte) Buffer {
	return Buffer{data: data}
}

// Len returns the buffer length in bytes.
func (b Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the underlying slice.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Raw returns the unchecked view of the same bytes. Raw operations skip every
// precondition check: behavior on out-of-range offsets or out-of-domain
// values is unspecified (in practice, out-of-range access panics).
func (b Buffer) Raw() RawBuffer {
	return RawBuffer{data: b.data}
}
