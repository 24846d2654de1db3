package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Byte order
// -----------------------------------------------------------------------------

// ByteOrder selects the byte layout of a multi-byte field. The zero value is
// deliberately invalid: there is no default order, and every operation on a
// field wider than one byte must name one explicitly.
type ByteOrder int

const (
	orderUnset ByteOrder = iota

	// LittleEndian stores the least-significant byte first.
	LittleEndian

	// BigEndian stores the most-significant byte first.
	BigEndian
)

// Valid reports whether o names one of the two defined layouts.
func (o ByteOrder) Valid() bool {
	return o == LittleEndian || o == BigEndian
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

// ParseByteOrder maps the user-facing names "le"/"little" and "be"/"big" to a
// ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "le", "little", "little-endian":
		return LittleEndian, nil
	case "be", "big", "big-endian":
		return BigEndian, nil
	default:
		return orderUnset, fmt.Errorf("unknown byte order %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o ByteOrder) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid byte order %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// -----------------------------------------------------------------------------
// Field kinds
// -----------------------------------------------------------------------------

// Kind identifies the scalar type of a fixed-width field.
type Kind int

const (
	Uint8 Kind = iota
	Uint16
	Uint32
	Int8
	Int16
	Int32
	Float32
	Float64
)

var kindNames = [...]string{
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Float32: "float32",
	Float64: "float64",
}

var kindWidths = [...]int{
	Uint8:   1,
	Uint16:  2,
	Uint32:  4,
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Float32: 4,
	Float64: 8,
}

// Valid reports whether k names a supported field kind.
func (k Kind) Valid() bool {
	return k >= Uint8 && k <= Float64
}

// Width returns the number of bytes a field of kind k occupies.
func (k Kind) Width() int {
	if !k.Valid() {
		return 0
	}
	return kindWidths[k]
}

// Signed reports whether k is a signed integer kind.
func (k Kind) Signed() bool {
	return k == Int8 || k == Int16 || k == Int32
}

// Float reports whether k is a floating-point kind.
func (k Kind) Float() bool {
	return k == Float32 || k == Float64
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a user-facing type name ("uint16", "float64", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid field kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
