package foundations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/elements"
	"github.com/typograph-lang/typograph/foundations"
)

func TestStyleChainInnermostWins(t *testing.T) {
	numberingID, _ := elements.Heading().FieldID("numbering")

	outer := foundations.NewStyles()
	outer.Set(foundations.Property{Elem: elements.Heading(), Field: numberingID, Value: "1."})

	inner := foundations.NewStyles()
	inner.Set(foundations.Property{Elem: elements.Heading(), Field: numberingID, Value: "A."})

	chain := foundations.ChainOf(outer).Chain(inner)

	value, ok := chain.Get(elements.Heading(), numberingID)
	require.True(t, ok)
	assert.Equal(t, "A.", value)

	// Outer values still resolve when the inner delta is silent.
	outlinedID, _ := elements.Heading().FieldID("outlined")
	outer.Set(foundations.Property{Elem: elements.Heading(), Field: outlinedID, Value: false})
	value, ok = chain.Get(elements.Heading(), outlinedID)
	require.True(t, ok)
	assert.Equal(t, false, value)

	_, ok = chain.Get(elements.Text(), numberingID)
	assert.False(t, ok)
}

func TestStylesLastPropertyWins(t *testing.T) {
	numberingID, _ := elements.Heading().FieldID("numbering")
	styles := foundations.NewStyles()
	styles.Set(foundations.Property{Elem: elements.Heading(), Field: numberingID, Value: "1."})
	styles.Set(foundations.Property{Elem: elements.Heading(), Field: numberingID, Value: "I."})

	value, ok := foundations.ChainOf(styles).Get(elements.Heading(), numberingID)
	require.True(t, ok)
	assert.Equal(t, "I.", value)
}
