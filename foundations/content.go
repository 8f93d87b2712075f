package foundations

import "fmt"

// NativeElement is implemented by every concrete native kind. The
// ElementData method must be callable on a nil receiver: it only hands out
// the kind's static metadata record.
type NativeElement interface {
	Fields

	// ElementData returns the kind's static metadata record.
	ElementData() *ElementData
}

// Content is a packed instance: a concrete element value type-erased for
// generic handling, together with its label and guard stamps. Content
// values are copied freely; the underlying instance is shared and must be
// treated as immutable once packed.
type Content struct {
	elem   NativeElement
	label  Label
	guards []Guard
}

// Pack erases a concrete instance into content.
func Pack(elem NativeElement) Content {
	return Content{elem: elem}
}

// Elem returns the handle of the content's kind.
func (c Content) Elem() Element {
	return Element{data: c.elem.ElementData()}
}

// Native returns the type-erased instance.
func (c Content) Native() NativeElement {
	return c.elem
}

// Is reports whether the content is an instance of the given kind.
func (c Content) Is(elem Element) bool {
	return c.Elem() == elem
}

// Label returns the content's label, if it carries one.
func (c Content) Label() (Label, bool) {
	return c.label, c.label != ""
}

// Labelled returns a copy of the content carrying the label.
func (c Content) Labelled(label Label) Content {
	c.label = label
	return c
}

// Has reports whether the field with the given id is set. The reserved
// label field resolves against the content's label, not the kind's table.
func (c Content) Has(id uint8) bool {
	if id == LabelField {
		return c.label != ""
	}
	return c.elem.Has(id)
}

// Field returns the value of the field with the given id, absent for
// unset fields and unknown ids.
func (c Content) Field(id uint8) (Value, bool) {
	if id == LabelField {
		if c.label == "" {
			return nil, false
		}
		return c.label, true
	}
	return c.elem.Field(id)
}

// FieldByName resolves name through the kind's table and returns the field.
func (c Content) FieldByName(name string) (Value, bool) {
	id, ok := c.Elem().FieldID(name)
	if !ok {
		return nil, false
	}
	return c.Field(id)
}

// Fields returns all set fields in declaration order, with the label
// appended last when present.
func (c Content) Fields() *Dict {
	dict := c.elem.Fields()
	if c.label != "" {
		dict.Set(LabelFieldName, c.label)
	}
	return dict
}

// Guarded returns a copy of the content stamped with the guard.
func (c Content) Guarded(g Guard) Content {
	guards := make([]Guard, len(c.guards), len(c.guards)+1)
	copy(guards, c.guards)
	c.guards = append(guards, g)
	return c
}

// IsGuarded reports whether the content was stamped with the guard.
func (c Content) IsGuarded(g Guard) bool {
	for _, have := range c.guards {
		if have == g {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (c Content) String() string {
	return fmt.Sprintf("Content(%s)", c.Elem().Name())
}
