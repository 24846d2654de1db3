/*
Package codec reads and writes fixed-width numeric fields in a caller-supplied
byte buffer at arbitrary offsets, in either byte order.

# Quick Start

Wrap a byte slice and access fields through the typed surface:

	buf := codec.New(make([]byte, 16))
	if err := buf.WriteUint16BE(0, 0x1234); err != nil {
	    log.Fatal(err)
	}
	v, err := buf.ReadInt32LE(4)

# Contract

The codec owns no memory: callers allocate and size the buffer, the codec only
reads and writes existing slots. Every operation is stateless, so a write
followed by a read at the same offset, width, byte order, and signedness
returns the original value exactly.

Checked operations validate all preconditions before touching a single byte:
the field span must lie inside the buffer, and written values must belong to
the target numeric domain. Violations return a *types.InvariantError (all of
which unwrap to types.ErrInvariant); a rejected write leaves the buffer
untouched.

Callers that have already established their preconditions can skip validation
per call through the Raw view:

	raw := buf.Raw()
	v := raw.ReadUint32BE(8) // no checks, panics on out-of-range access

Thread safety is the caller's concern. Operations hold no cross-call state, so
concurrent reads, or writes to disjoint byte ranges, are safe; concurrent
writers to overlapping ranges of the same buffer are a data race.
*/
package codec
