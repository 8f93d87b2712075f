package realize

import (
	"github.com/typograph-lang/typograph/engine"
	"github.com/typograph-lang/typograph/foundations"
)

// Matches reports whether content satisfies the selector: same kind and
// every field constraint equal on the instance. Duplicate constraints are
// applied conjunctively.
func Matches(s foundations.Selector, c foundations.Content) bool {
	if !c.Is(s.Element()) {
		return false
	}
	for _, f := range s.Fields() {
		value, ok := c.Field(f.ID)
		if !ok || !foundations.ValueEqual(value, f.Value) {
			return false
		}
	}
	return true
}

// Transform rewrites one matched content node into its replacement nodes.
type Transform func(foundations.Content) []foundations.Content

// ShowRule expands content matched by a selector. Each rule carries a
// guard minted at creation: output is stamped with it, and stamped content
// is never re-matched by the same rule, so a rule whose output matches its
// own selector terminates after one application per subtree.
type ShowRule struct {
	selector  foundations.Selector
	transform Transform
	guard     foundations.Guard
}

// NewShowRule creates a show rule, minting its guard from the engine.
func NewShowRule(eng *engine.Engine, selector foundations.Selector, transform Transform) *ShowRule {
	return &ShowRule{
		selector:  selector,
		transform: transform,
		guard:     eng.MintGuard(),
	}
}

// Guard returns the rule's guard token.
func (r *ShowRule) Guard() foundations.Guard {
	return r.guard
}

// Apply runs the rule over a stream, replacing unguarded matches with
// their guarded transformation. Non-matching content passes through
// untouched. The input slice is not modified.
func (r *ShowRule) Apply(stream []foundations.Content) []foundations.Content {
	out := make([]foundations.Content, 0, len(stream))
	for _, item := range stream {
		if item.IsGuarded(r.guard) || !Matches(r.selector, item) {
			out = append(out, item)
			continue
		}
		for _, produced := range r.transform(item) {
			out = append(out, produced.Guarded(r.guard))
		}
	}
	return out
}

// ShowBase expands content through its kind's base show recipe, running
// Synthesize first when the kind implements it. Content whose kind has no
// show recipe is returned unchanged.
func ShowBase(eng *engine.Engine, c foundations.Content, styles foundations.StyleChain) (foundations.Content, error) {
	if syn, ok := foundations.To[foundations.Synthesize](c); ok {
		if err := syn.Synthesize(eng, styles); err != nil {
			return foundations.Content{}, err
		}
	}
	show, ok := foundations.To[foundations.Show](c)
	if !ok {
		return c, nil
	}
	realized, err := show.Show(eng, styles)
	if err != nil {
		return foundations.Content{}, err
	}
	if fin, ok := foundations.To[foundations.Finalize](c); ok {
		realized = fin.Finalize(realized, styles)
	}
	return realized, nil
}
