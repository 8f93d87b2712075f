package foundations

// Property is one style delta: it forces a field of a kind to a value for
// everything in the scope the delta is applied to.
type Property struct {
	Elem  Element
	Field uint8
	Value Value
}

// Styles is an ordered collection of style deltas, as produced by a set
// rule. Cascade resolution happens in the style-chain collaborator; this
// core only produces and carries deltas.
type Styles struct {
	props []Property
}

// NewStyles creates an empty style delta.
func NewStyles() *Styles {
	return &Styles{}
}

// Set appends a property delta. Later deltas win over earlier ones for the
// same (element, field).
func (s *Styles) Set(p Property) {
	s.props = append(s.props, p)
}

// IsEmpty reports whether the delta contains no properties.
func (s *Styles) IsEmpty() bool {
	return s == nil || len(s.props) == 0
}

// Properties returns the deltas in application order. The slice is a copy.
func (s *Styles) Properties() []Property {
	if s == nil {
		return nil
	}
	out := make([]Property, len(s.props))
	copy(out, s.props)
	return out
}

// StyleChain is a view over nested style scopes: the local delta first,
// then everything the outer scopes set. Chains are cheap values; linking a
// new delta does not copy the tail.
type StyleChain struct {
	local *Styles
	outer *StyleChain
}

// ChainOf starts a chain from a single delta.
func ChainOf(local *Styles) StyleChain {
	return StyleChain{local: local}
}

// Chain links a new local delta in front of the receiver.
func (c StyleChain) Chain(local *Styles) StyleChain {
	outer := c
	return StyleChain{local: local, outer: &outer}
}

// Get resolves the value for a field of a kind, innermost delta first.
// Within one delta the last property wins.
func (c StyleChain) Get(elem Element, field uint8) (Value, bool) {
	for chain := &c; chain != nil; chain = chain.outer {
		if chain.local == nil {
			continue
		}
		for i := len(chain.local.props) - 1; i >= 0; i-- {
			p := chain.local.props[i]
			if p.Elem == elem && p.Field == field {
				return p.Value, true
			}
		}
	}
	return nil, false
}
