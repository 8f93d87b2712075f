package foundations

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/typograph-lang/typograph/diag"
	"github.com/typograph-lang/typograph/lang"
)

// ElementData is the static metadata record of one native kind. Exactly
// one record exists per kind; it is populated in the kind's source file,
// sealed by Register, and never mutated afterwards.
//
// All function fields must be total for well-formed inputs: they may
// return absence or a diagnostic error, never panic.
type ElementData struct {
	// Name is the stable machine identifier, e.g. "heading". Unique
	// across all registered kinds.
	Name string

	// Title is the human display name, e.g. "Heading".
	Title string

	// Docs is the element documentation as markdown.
	Docs string

	// Keywords are additional search terms for documentation tooling.
	Keywords []string

	// Construct builds a fresh instance from the arguments that remain
	// after the set rule ran.
	Construct func(engine Engine, args *Args) (Content, error)

	// Set parses the style-relevant subset of the arguments into a style
	// delta. The finish check on leftovers is Element.Set's concern.
	Set func(engine Engine, args *Args) (*Styles, error)

	// FieldID maps a declared field name to its id. The reserved label
	// field is resolved before this table is consulted.
	FieldID func(name string) (uint8, bool)

	// FieldName is the inverse of FieldID.
	FieldName func(id uint8) (string, bool)

	// Local returns localized display names, or nil if the kind has none.
	Local *lang.Names

	// Scope builds the kind's namespace of sub-definitions. May be nil.
	Scope func() *Scope

	// Params builds the kind's parameter descriptors. May be nil.
	Params func() []ParamInfo

	vtable     map[reflect.Type]capabilityCaster
	lazyScope  func() *Scope
	lazyParams func() []ParamInfo
}

// Element is the handle for a native kind: a copyable, comparable
// reference to exactly one static metadata record. Two handles are equal
// iff they reference the same record; ordering is lexicographic by name.
type Element struct {
	data *ElementData
}

// Of returns the handle for a statically known kind.
func Of[T NativeElement]() Element {
	var elem T
	return Element{data: elem.ElementData()}
}

// Name returns the kind's stable machine identifier.
func (e Element) Name() string {
	return e.data.Name
}

// Title returns the kind's human display name.
func (e Element) Title() string {
	return e.data.Title
}

// Docs returns the kind's documentation.
func (e Element) Docs() string {
	return e.data.Docs
}

// Keywords returns the kind's documentation search keywords.
func (e Element) Keywords() []string {
	return e.data.Keywords
}

// FieldID returns the kind's id for the field name. The reserved name
// "label" always maps to 255, for every kind.
func (e Element) FieldID(name string) (uint8, bool) {
	if name == LabelFieldName {
		return LabelField, true
	}
	return e.data.FieldID(name)
}

// FieldName returns the field name for the id. Id 255 always yields
// "label", regardless of kind.
func (e Element) FieldName(id uint8) (string, bool) {
	if id == LabelField {
		return LabelFieldName, true
	}
	return e.data.FieldName(id)
}

// Construct builds an instance of this kind from the arguments. It must
// run after Set had its chance to consume style arguments.
func (e Element) Construct(engine Engine, args *Args) (Content, error) {
	return e.data.Construct(engine, args)
}

// Set executes the kind's set rule over the arguments and finishes the
// list. A leftover argument naming a declared but non-settable parameter
// yields an unsettable-property diagnostic; anything else left over yields
// an unexpected-argument diagnostic.
func (e Element) Set(engine Engine, args *Args) (*Styles, error) {
	styles, err := e.data.Set(engine, args)
	if err != nil {
		return nil, err
	}
	for _, p := range e.Params() {
		if p.Settable {
			continue
		}
		if _, ok := args.Named(p.Name); ok {
			return nil, diag.New(diag.CodeUnsettableProperty, args.Location(),
				"cannot set %s on %s: the property is not settable", p.Name, e.Name())
		}
	}
	if err := args.Finish(); err != nil {
		return nil, err
	}
	return styles, nil
}

// CanTypeID reports whether the kind implements the capability denoted by
// the type identity. The answer is stable for the process lifetime.
func (e Element) CanTypeID(of reflect.Type) bool {
	_, ok := e.data.vtable[of]
	return ok
}

// Vtable exposes the raw capability lookup for callers that perform the
// narrowing themselves. Most callers want To instead.
func (e Element) Vtable() Vtable {
	data := e.data
	return func(of reflect.Type) any {
		caster, ok := data.vtable[of]
		if !ok {
			return nil
		}
		return caster
	}
}

// Select builds an unconstrained selector for this kind.
func (e Element) Select() Selector {
	return Selector{elem: e}
}

// Where builds a selector constrained to instances whose fields match the
// given values. Constraints keep their order; duplicate ids are carried
// verbatim.
func (e Element) Where(fields ...FieldFilter) Selector {
	return Selector{elem: e, fields: fields}
}

// Scope returns the kind's namespace of sub-definitions, building it on
// first access. Safe for concurrent use.
func (e Element) Scope() *Scope {
	return e.data.lazyScope()
}

// Params returns the kind's parameter descriptors, building them on first
// access. Safe for concurrent use.
func (e Element) Params() []ParamInfo {
	return e.data.lazyParams()
}

// LocalName returns the kind's localized display name for the language
// and region, if it has one.
func (e Element) LocalName(l lang.Lang, r lang.Region) (string, bool) {
	return e.data.Local.Lookup(l, r)
}

// Less orders handles lexicographically by name.
func (e Element) Less(other Element) bool {
	return e.Name() < other.Name()
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return fmt.Sprintf("Element(%s)", e.Name())
}

// MarshalText renders the handle as its stable name.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.Name()), nil
}

// Register seals a metadata record and adds its kind to the closed
// registry. It is called from init functions of the packages defining
// native kinds, before any compilation pass runs; violations of the
// registration contract are programmer errors and panic.
func Register(data *ElementData) Element {
	validate(data)

	scope := data.Scope
	if scope == nil {
		scope = NewScope
	}
	params := data.Params
	if params == nil {
		params = func() []ParamInfo { return nil }
	}
	data.lazyScope = sync.OnceValue(scope)
	data.lazyParams = sync.OnceValue(params)
	if data.vtable == nil {
		data.vtable = make(map[reflect.Type]capabilityCaster)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.byName[data.Name]; exists {
		panic(fmt.Sprintf("foundations: duplicate element name %q", data.Name))
	}
	registry.byName[data.Name] = data
	registry.ordered = nil
	return Element{data: data}
}

// validate checks the registration contract: identity present, hooks
// total, and a bijective field table that stays clear of the reserved
// label id and name.
func validate(data *ElementData) {
	if data.Name == "" {
		panic("foundations: element with empty name")
	}
	if data.Construct == nil || data.Set == nil {
		panic(fmt.Sprintf("foundations: element %q without construct or set hook", data.Name))
	}
	if data.FieldID == nil || data.FieldName == nil {
		panic(fmt.Sprintf("foundations: element %q without field tables", data.Name))
	}
	if _, ok := data.FieldID(LabelFieldName); ok {
		panic(fmt.Sprintf("foundations: element %q declares the reserved field name %q", data.Name, LabelFieldName))
	}
	if _, ok := data.FieldName(LabelField); ok {
		panic(fmt.Sprintf("foundations: element %q declares the reserved field id %d", data.Name, LabelField))
	}
	for id := 0; id < int(LabelField); id++ {
		name, ok := data.FieldName(uint8(id))
		if !ok {
			continue
		}
		back, ok := data.FieldID(name)
		if !ok || back != uint8(id) {
			panic(fmt.Sprintf("foundations: element %q has a non-bijective field table at id %d", data.Name, id))
		}
	}
}

var registry = struct {
	mu      sync.RWMutex
	byName  map[string]*ElementData
	ordered []Element
}{
	byName: make(map[string]*ElementData),
}

// ByName looks a kind up by its stable name.
func ByName(name string) (Element, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	data, ok := registry.byName[name]
	if !ok {
		return Element{}, false
	}
	return Element{data: data}, true
}

// All returns every registered kind, sorted by name. The slice is shared
// and must not be mutated.
func All() []Element {
	registry.mu.RLock()
	if registry.ordered != nil {
		defer registry.mu.RUnlock()
		return registry.ordered
	}
	registry.mu.RUnlock()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.ordered == nil {
		out := make([]Element, 0, len(registry.byName))
		for _, data := range registry.byName {
			out = append(out, Element{data: data})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
		registry.ordered = out
	}
	return registry.ordered
}
