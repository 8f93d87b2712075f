// Package realize applies the interaction policy and show rules to
// realized content streams: merging adjacent elements according to their
// reported behaviour and expanding elements through selectors with
// idempotence guards.
package realize

import (
	"github.com/typograph-lang/typograph/foundations"
)

// Merge runs the weak/supportive/destructive policy over one stream in a
// single pass:
//
//   - A weak element survives only when bracketed by supportive elements on
//     both sides of its consecutive run.
//   - Per run, exactly one weak element survives: the one with the lowest
//     weakness level. On a level tie the retained element stays unless the
//     candidate's Larger predicate claims otherwise.
//   - A destructive element adjacent to a run kills its weak survivor.
//   - Ignorant and invisible elements are transparent to the accounting
//     but stay in the stream.
//
// The input slice is not modified.
func Merge(stream []foundations.Content, styles foundations.StyleChain) []foundations.Content {
	out := make([]foundations.Content, 0, len(stream))

	// Index into out of the weak element retained for the current run, or
	// -1. supported tracks whether the run has a supportive left bracket.
	retained := -1
	var retainedBehaviour foundations.Behaviour
	supported := false

	drop := func() {
		out = append(out[:retained], out[retained+1:]...)
		retained = -1
	}

	for _, item := range stream {
		b := foundations.BehaviourOf(item)
		switch {
		case b.Transparent():
			out = append(out, item)

		case b.IsWeak():
			if !supported {
				// No supportive bracket on the left; the element cannot
				// survive no matter what follows.
				continue
			}
			switch {
			case retained < 0:
				out = append(out, item)
				retained = len(out) - 1
				retainedBehaviour = b
			case b.Level() < retainedBehaviour.Level(),
				b.Level() == retainedBehaviour.Level() && larger(item, out[retained], styles):
				drop()
				out = append(out, item)
				retained = len(out) - 1
				retainedBehaviour = b
			default:
				// The retained element is stronger; the candidate dies.
			}

		case b == foundations.Destructive:
			if retained >= 0 {
				drop()
			}
			out = append(out, item)
			supported = false

		default: // supportive
			retained = -1
			out = append(out, item)
			supported = true
		}
	}

	// The end of the stream is not a supportive bracket.
	if retained >= 0 {
		drop()
	}
	return out
}

// larger asks the candidate whether it should replace the retained weak
// element on a level tie. Without a Tiebreaker the first element wins.
func larger(candidate, prev foundations.Content, styles foundations.StyleChain) bool {
	tb, ok := foundations.To[foundations.Tiebreaker](candidate)
	if !ok {
		return false
	}
	return tb.Larger(prev, styles)
}
