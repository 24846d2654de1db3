package types

import (
	"errors"
	"fmt"
)

// ViolationKind classifies invariant violations so callers can branch on
// intent rather than message text.
type ViolationKind int

const (
	KindBadOrder    ViolationKind = iota // missing or invalid byte order
	KindBounds                           // offset span exceeds the buffer
	KindDomain                           // value outside the representable numeric domain
	KindNotIntegral                      // fractional value supplied to an integer write
)

func (k ViolationKind) String() string {
	switch k {
	case KindBadOrder:
		return "bad-order"
	case KindBounds:
		return "bounds"
	case KindDomain:
		return "domain"
	case KindNotIntegral:
		return "not-integral"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// ErrInvariant is the sentinel every InvariantError unwraps to. Callers that
// do not care which precondition failed can test with
// errors.Is(err, types.ErrInvariant).
var ErrInvariant = errors.New("invariant violation")

// InvariantError reports a failed precondition on a codec operation. The
// failing call never touches the buffer: validation is all-or-nothing, so a
// rejected write leaves every byte as it was.
type InvariantError struct {
	Kind ViolationKind
	Msg  string
}

func (e *InvariantError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "invariant violation: " + e.Msg
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Violationf builds an InvariantError with a formatted message.
func Violationf(kind ViolationKind, format string, args ...any) *InvariantError {
	return &InvariantError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
