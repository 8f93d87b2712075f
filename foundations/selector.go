package foundations

import (
	"fmt"
	"strings"
)

// FieldFilter constrains one field of a kind to a required value.
type FieldFilter struct {
	ID    uint8
	Value Value
}

// Selector is a matching criterion over content: a kind, optionally
// narrowed by field constraints. Selectors only carry criteria; matching
// against a stream lives with the content-matching collaborator.
type Selector struct {
	elem   Element
	fields []FieldFilter
}

// Element returns the kind the selector targets.
func (s Selector) Element() Element {
	return s.elem
}

// Fields returns the field constraints in the order they were given,
// duplicates included. The slice is shared and must not be mutated.
func (s Selector) Fields() []FieldFilter {
	return s.fields
}

// String implements fmt.Stringer.
func (s Selector) String() string {
	if len(s.fields) == 0 {
		return s.elem.Name()
	}
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		name, ok := s.elem.FieldName(f.ID)
		if !ok {
			name = fmt.Sprintf("#%d", f.ID)
		}
		parts[i] = fmt.Sprintf("%s: %v", name, f.Value)
	}
	return fmt.Sprintf("%s.where(%s)", s.elem.Name(), strings.Join(parts, ", "))
}
