package foundations

import "reflect"

// Capabilities are optional secondary interfaces a kind may implement,
// queried dynamically by type identity from generic code. The relation is
// closed at build time: each kind declares its capabilities once, at
// registration, through Capable. The same generic instantiation produces
// both the lookup entry and the typed extraction, so a present entry
// always yields a view whose shape matches the identity it was stored
// under.

// Vtable looks up a capability by type identity, returning an opaque
// extractor or nil. The extractor, applied to content of this kind,
// produces a value implementing the capability interface.
type Vtable func(of reflect.Type) any

type capabilityCaster func(Content) any

// Capable declares that kind instances of type T implement capability C.
// It must only be called before the record is registered; T must actually
// implement C or registration fails.
func Capable[C any, T NativeElement](data *ElementData) {
	if data.vtable == nil {
		data.vtable = make(map[reflect.Type]capabilityCaster)
	}
	capability := reflect.TypeOf((*C)(nil)).Elem()
	if !reflect.TypeOf((*T)(nil)).Elem().Implements(capability) {
		panic("foundations: " + data.Name + " declares capability " +
			capability.String() + " without implementing it")
	}
	data.vtable[capability] = func(c Content) any {
		view, ok := any(c.elem).(C)
		if !ok {
			return nil
		}
		return view
	}
}

// Can reports whether the kind implements the capability C.
func Can[C any](e Element) bool {
	return e.CanTypeID(reflect.TypeOf((*C)(nil)).Elem())
}

// To extracts the capability view C from packed content. The view is the
// instance itself, narrowed to the capability's operations; absence means
// the kind does not implement C.
func To[C any](c Content) (C, bool) {
	var zero C
	caster, ok := c.Elem().data.vtable[reflect.TypeOf((*C)(nil)).Elem()]
	if !ok {
		return zero, false
	}
	view, ok := caster(c).(C)
	if !ok {
		return zero, false
	}
	return view, true
}
