package codec

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/joshuapare/binfield/pkg/types"
)

// Field describes one fixed-width slot in a buffer: a name for reporting, a
// scalar kind, a byte offset, and (for multi-byte kinds) a byte order. Fields
// are plain descriptors, not schemas: there is no nesting and no
// variable-length encoding.
type Field struct {
	Name   string          `json:"name"`
	Kind   types.Kind      `json:"kind"`
	Offset int             `json:"offset"`
	Order  types.ByteOrder `json:"order,omitempty"`
}

// Layout is an ordered list of field descriptors over a single buffer.
// Overlapping fields are legal (aliasing a signed and unsigned view of the
// same bytes is a normal use).
type Layout struct {
	Fields []Field `json:"fields"`
}

// Validate pre-checks every field against the buffer and reports all
// violations at once rather than stopping at the first, so a bad layout file
// surfaces every problem in one pass. Returns nil when every field is
// addressable.
func (l Layout) Validate(b Buffer) error {
	var merr *multierror.Error
	for i, f := range l.Fields {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if !f.Kind.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("field %s: invalid kind %v", name, f.Kind))
			continue
		}
		if f.Kind.Width() > 1 {
			if err := checkOrder(f.Order); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("field %s: %w", name, err))
			}
		}
		if err := checkSpan(b.Len(), f.Offset, f.Kind.Width()); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("field %s: %w", name, err))
		}
	}
	return merr.ErrorOrNil()
}

// Read validates the layout and decodes every field, keyed by field name.
func (l Layout) Read(b Buffer) (map[string]any, error) {
	if err := l.Validate(b); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(l.Fields))
	for _, f := range l.Fields {
		v, err := b.ReadValue(f.Kind, f.Offset, f.Order)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[f.Name] = v
	}
	return out, nil
}
