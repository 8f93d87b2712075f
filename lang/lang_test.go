package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/lang"
)

func TestParse(t *testing.T) {
	l, r, err := lang.Parse("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, lang.Portuguese, l)
	assert.Equal(t, lang.Region("BR"), r)

	l, r, err = lang.Parse("de")
	require.NoError(t, err)
	assert.Equal(t, lang.German, l)
	assert.Equal(t, lang.Region(""), r)

	_, _, err = lang.Parse("not a tag")
	assert.Error(t, err)
}

func TestNamesExactAndRegional(t *testing.T) {
	names := lang.NewNames(map[string]string{
		"en":    "Heading",
		"pt":    "Título",
		"pt-BR": "Seção",
	})

	name, ok := names.Lookup(lang.Portuguese, "BR")
	require.True(t, ok)
	assert.Equal(t, "Seção", name)

	// A plain language request prefers the unregionalized entry.
	name, ok = names.Lookup(lang.Portuguese, "")
	require.True(t, ok)
	assert.Equal(t, "Título", name)

	// An unknown region falls back to the base language.
	name, ok = names.Lookup(lang.Portuguese, "PT")
	require.True(t, ok)
	assert.Equal(t, "Título", name)
}

func TestNamesMiss(t *testing.T) {
	names := lang.NewNames(map[string]string{"de": "Überschrift"})
	_, ok := names.Lookup(lang.French, "")
	assert.False(t, ok)
}

func TestNamesNilSafe(t *testing.T) {
	var names *lang.Names
	_, ok := names.Lookup(lang.English, "")
	assert.False(t, ok)
}

func TestNewNamesPanicsOnBadTag(t *testing.T) {
	assert.Panics(t, func() {
		lang.NewNames(map[string]string{"!!": "nope"})
	})
}
