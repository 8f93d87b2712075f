package foundations

// The optional capabilities a native kind may implement, beyond Behave.
// The set is closed: generic code queries these by identity through Can
// and To, and each kind declares the ones it implements at registration.

// Synthesize prepares an element for show-rule application by resolving
// style-dependent fields onto the instance.
type Synthesize interface {
	// Synthesize fills in fields from the style chain before any show
	// rule runs.
	Synthesize(engine Engine, styles StyleChain) error
}

// Show is the base recipe of an element: how it expands into realized
// content.
type Show interface {
	// Show produces the element's realized form.
	Show(engine Engine, styles StyleChain) (Content, error)
}

// Finalize post-processes an element's realized form. Effects applied
// here survive user-defined show rules.
type Finalize interface {
	// Finalize transforms the fully realized content.
	Finalize(realized Content, styles StyleChain) Content
}

// PlainText is implemented by elements with a plain-text representation.
type PlainText interface {
	// PlainText returns the element's text content.
	PlainText() string
}
