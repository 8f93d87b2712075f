package foundations

import (
	"strings"

	"github.com/typograph-lang/typograph/diag"
)

// Arg is one argument supplied to a construct or set call. Positional
// arguments have an empty name.
type Arg struct {
	Name     string
	Value    Value
	Location diag.SourceLocation
}

// Args is an ordered, partially-consumable bag of positional and named
// arguments. Construct and set rules take only the arguments meaningful to
// them; Finish then rejects whatever nobody consumed.
//
// Args values are pass-local and not safe for concurrent use.
type Args struct {
	location diag.SourceLocation
	items    []Arg
	taken    []bool
}

// NewArgs assembles an argument list located at loc.
func NewArgs(loc diag.SourceLocation, items ...Arg) *Args {
	return &Args{
		location: loc,
		items:    items,
		taken:    make([]bool, len(items)),
	}
}

// Location returns the source location of the whole argument list.
func (a *Args) Location() diag.SourceLocation {
	return a.location
}

// Eat consumes and returns the first unconsumed positional argument.
func (a *Args) Eat() (Value, bool) {
	for i, item := range a.items {
		if a.taken[i] || item.Name != "" {
			continue
		}
		a.taken[i] = true
		return item.Value, true
	}
	return nil, false
}

// Expect consumes the next positional argument, failing with a diagnostic
// naming what was expected if none remains.
func (a *Args) Expect(what string) (Value, error) {
	if v, ok := a.Eat(); ok {
		return v, nil
	}
	return nil, diag.New(diag.CodeMissingArgument, a.location, "missing argument: %s", what)
}

// Named consumes and returns the named argument, if present. Later
// duplicates win; earlier ones are consumed alongside.
func (a *Args) Named(name string) (Value, bool) {
	var value Value
	found := false
	for i, item := range a.items {
		if a.taken[i] || item.Name != name {
			continue
		}
		a.taken[i] = true
		value = item.Value
		found = true
	}
	return value, found
}

// Remaining returns how many arguments are still unconsumed.
func (a *Args) Remaining() int {
	n := 0
	for _, taken := range a.taken {
		if !taken {
			n++
		}
	}
	return n
}

// Finish fails with an "unexpected argument" diagnostic if any argument
// remains unconsumed. Callers run it after set and construct both had
// their turn.
func (a *Args) Finish() error {
	var leftover []string
	var loc diag.SourceLocation
	for i, item := range a.items {
		if a.taken[i] {
			continue
		}
		if len(leftover) == 0 {
			loc = item.Location
		}
		name := item.Name
		if name == "" {
			name = "positional"
		}
		leftover = append(leftover, name)
	}
	if len(leftover) == 0 {
		return nil
	}
	return diag.New(diag.CodeUnexpectedArgument, loc,
		"unexpected argument%s: %s", plural(len(leftover)), strings.Join(leftover, ", "))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// CastArg narrows an argument value to T, failing with a diagnostic that
// names the argument on a type mismatch.
func CastArg[T any](a *Args, name string, v Value) (T, error) {
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, diag.New(diag.CodeWrongArgumentType, a.location,
			"wrong type for %s: expected %T, got %T", name, zero, v)
	}
	return out, nil
}
