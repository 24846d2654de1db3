package codec

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/binfield/pkg/types"
)

// Fixed-width text fields. These cover the common case of binary formats
// that reserve a fixed byte span for a name or label: the span is validated
// like any numeric field, short strings are NUL-padded on write, and trailing
// NULs are trimmed on read. Strings that do not fit the declared span are
// rejected before any byte is written.

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadStringUTF16LE decodes the byteLen-byte UTF-16LE text field at off.
func (b Buffer) ReadStringUTF16LE(off, byteLen int) (string, error) {
	if byteLen%2 != 0 {
		return "", types.Violationf(types.KindDomain, "utf-16 field length %d is odd", byteLen)
	}
	if err := checkSpan(len(b.data), off, byteLen); err != nil {
		return "", err
	}
	raw := b.data[off : off+byteLen]
	for len(raw) >= 2 && raw[len(raw)-2] == 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-2]
	}
	decoded, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode utf-16 field at offset %d: %w", off, err)
	}
	return string(decoded), nil
}

// WriteStringUTF16LE encodes s into the byteLen-byte UTF-16LE field at off,
// NUL-padding the remainder of the span.
func (b Buffer) WriteStringUTF16LE(off, byteLen int, s string) error {
	if byteLen%2 != 0 {
		return types.Violationf(types.KindDomain, "utf-16 field length %d is odd", byteLen)
	}
	if err := checkSpan(len(b.data), off, byteLen); err != nil {
		return err
	}
	encoded, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return fmt.Errorf("encode utf-16 field at offset %d: %w", off, err)
	}
	if len(encoded) > byteLen {
		return types.Violationf(types.KindDomain,
			"string needs %d bytes, field holds %d", len(encoded), byteLen)
	}
	n := copy(b.data[off:off+byteLen], encoded)
	for i := off + n; i < off+byteLen; i++ {
		b.data[i] = 0
	}
	return nil
}

// ReadStringLatin1 decodes the byteLen-byte Windows-1252 text field at off.
func (b Buffer) ReadStringLatin1(off, byteLen int) (string, error) {
	if err := checkSpan(len(b.data), off, byteLen); err != nil {
		return "", err
	}
	raw := b.data[off : off+byteLen]
	for len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	// Fast path: ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252 field at offset %d: %w", off, err)
	}
	return string(decoded), nil
}

// WriteStringLatin1 encodes s into the byteLen-byte Windows-1252 field at
// off, NUL-padding the remainder of the span. Runes outside Windows-1252 are
// rejected as a domain violation.
func (b Buffer) WriteStringLatin1(off, byteLen int, s string) error {
	if err := checkSpan(len(b.data), off, byteLen); err != nil {
		return err
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return types.Violationf(types.KindDomain,
			"string %q is not representable in windows-1252", s)
	}
	if len(encoded) > byteLen {
		return types.Violationf(types.KindDomain,
			"string needs %d bytes, field holds %d", len(encoded), byteLen)
	}
	n := copy(b.data[off:off+byteLen], encoded)
	for i := off + n; i < off+byteLen; i++ {
		b.data[i] = 0
	}
	return nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
