package foundations

// Scope is a namespace of sub-definitions associated with an element kind,
// e.g. helper functions or constants that live under the element's name.
// Scopes are built lazily on first access and are read-only afterwards.
type Scope struct {
	bindings *Dict
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{bindings: NewDict()}
}

// Define binds a value under name, replacing any previous binding.
func (s *Scope) Define(name string, value Value) *Scope {
	s.bindings.Set(name, value)
	return s
}

// Get returns the binding for name. Absence is not an error.
func (s *Scope) Get(name string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	return s.bindings.Get(name)
}

// Names returns all binding names in definition order.
func (s *Scope) Names() []string {
	if s == nil {
		return nil
	}
	return s.bindings.Keys()
}

// Len returns the number of bindings.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	return s.bindings.Len()
}

// ParamInfo describes one declared parameter of an element kind, for
// documentation and introspection.
type ParamInfo struct {
	Name       string `json:"name"`
	Docs       string `json:"docs,omitempty"`
	Positional bool   `json:"positional"`
	Named      bool   `json:"named"`
	Required   bool   `json:"required"`
	Variadic   bool   `json:"variadic"`
	Settable   bool   `json:"settable"`
	Default    Value  `json:"default,omitempty"`
}
