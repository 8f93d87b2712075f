// Package elements defines the closed set of native element kinds built
// into typograph. Each kind lives in its own file together with its static
// metadata record; the records are registered with the foundations
// registry from init functions, so importing this package for side effects
// makes the full kind set available.
package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// setNone is the set rule of kinds without settable properties.
func setNone(_ foundations.Engine, _ *foundations.Args) (*foundations.Styles, error) {
	return foundations.NewStyles(), nil
}

// noFieldID and noFieldName are the field tables of field-less kinds.
func noFieldID(string) (uint8, bool)   { return 0, false }
func noFieldName(uint8) (string, bool) { return "", false }
