package foundations_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/elements"
	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/lang"
)

func TestFieldTableBijection(t *testing.T) {
	for _, elem := range foundations.All() {
		for id := 0; id < 255; id++ {
			name, ok := elem.FieldName(uint8(id))
			if !ok {
				continue
			}
			back, ok := elem.FieldID(name)
			require.True(t, ok, "%s: field %q has no id", elem.Name(), name)
			assert.Equal(t, uint8(id), back, "%s: field table not bijective at %q", elem.Name(), name)
		}
	}
}

func TestLabelFieldReservation(t *testing.T) {
	for _, elem := range foundations.All() {
		id, ok := elem.FieldID("label")
		require.True(t, ok, "%s: label id missing", elem.Name())
		assert.Equal(t, uint8(255), id, "%s: label id", elem.Name())

		name, ok := elem.FieldName(255)
		require.True(t, ok, "%s: field 255 missing", elem.Name())
		assert.Equal(t, "label", name, "%s: field 255 name", elem.Name())
	}
}

func TestNamesNonEmptyAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, elem := range foundations.All() {
		require.NotEmpty(t, elem.Name())
		assert.False(t, seen[elem.Name()], "duplicate element name %q", elem.Name())
		seen[elem.Name()] = true
	}
}

func TestHandleEquality(t *testing.T) {
	a := elements.Heading()
	b := foundations.Of[*elements.HeadingElem]()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, elements.Text())

	byName, ok := foundations.ByName("heading")
	require.True(t, ok)
	assert.Equal(t, a, byName)
}

func TestOrderingIsLexicographicByName(t *testing.T) {
	elems := foundations.All()
	names := make([]string, len(elems))
	for i, elem := range elems {
		names[i] = elem.Name()
	}
	assert.True(t, sort.StringsAreSorted(names), "All() must be sorted by name: %v", names)

	// The order is strict: no element is less than itself and Less is
	// consistent with name comparison.
	for _, a := range elems {
		assert.False(t, a.Less(a))
		for _, b := range elems {
			assert.Equal(t, a.Name() < b.Name(), a.Less(b))
		}
	}
}

func TestMetadataAccessors(t *testing.T) {
	heading := elements.Heading()
	assert.Equal(t, "heading", heading.Name())
	assert.Equal(t, "Heading", heading.Title())
	assert.NotEmpty(t, heading.Docs())
	assert.Contains(t, heading.Keywords(), "section")
}

func TestLocalName(t *testing.T) {
	heading := elements.Heading()

	name, ok := heading.LocalName(lang.German, "")
	require.True(t, ok)
	assert.Equal(t, "Überschrift", name)

	// Regionalized entries win for their region and fall back otherwise.
	name, ok = heading.LocalName(lang.Portuguese, "BR")
	require.True(t, ok)
	assert.Equal(t, "Seção", name)

	name, ok = heading.LocalName(lang.Portuguese, "")
	require.True(t, ok)
	assert.Equal(t, "Título", name)

	// Kinds without localization tables report absence.
	_, ok = elements.Space().LocalName(lang.German, "")
	assert.False(t, ok)
}

func TestScopeAndParamsAreLazyAndStable(t *testing.T) {
	heading := elements.Heading()

	// Concurrent first access must converge to one value.
	var wg sync.WaitGroup
	scopes := make([]*foundations.Scope, 16)
	for i := range scopes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scopes[i] = heading.Scope()
		}(i)
	}
	wg.Wait()
	for _, s := range scopes[1:] {
		assert.Same(t, scopes[0], s)
	}

	value, ok := heading.Scope().Get("max-level")
	require.True(t, ok)
	assert.Equal(t, 6, value)

	params := heading.Params()
	require.NotEmpty(t, params)
	assert.Equal(t, "body", params[0].Name)
	assert.True(t, params[0].Required)
}

func TestRegisterRejectsReservedFieldID(t *testing.T) {
	bad := &foundations.ElementData{
		Name: "bad-label-elem",
		Construct: func(foundations.Engine, *foundations.Args) (foundations.Content, error) {
			return foundations.Content{}, nil
		},
		Set: func(foundations.Engine, *foundations.Args) (*foundations.Styles, error) {
			return foundations.NewStyles(), nil
		},
		FieldID: func(name string) (uint8, bool) {
			if name == "broken" {
				return 255, true
			}
			return 0, false
		},
		FieldName: func(id uint8) (string, bool) {
			if id == 255 {
				return "broken", true
			}
			return "", false
		},
	}
	assert.Panics(t, func() { foundations.Register(bad) })
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	dup := &foundations.ElementData{
		Name: "heading",
		Construct: func(foundations.Engine, *foundations.Args) (foundations.Content, error) {
			return foundations.Content{}, nil
		},
		Set: func(foundations.Engine, *foundations.Args) (*foundations.Styles, error) {
			return foundations.NewStyles(), nil
		},
		FieldID:   func(string) (uint8, bool) { return 0, false },
		FieldName: func(uint8) (string, bool) { return "", false },
	}
	assert.Panics(t, func() { foundations.Register(dup) })
}
