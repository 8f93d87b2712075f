package realize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/elements"
	"github.com/typograph-lang/typograph/engine"
	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/realize"
)

func heading(level int, body string) foundations.Content {
	return foundations.Pack(&elements.HeadingElem{Level: level, Body: body, Outlined: true})
}

func TestMatchesKindAndFields(t *testing.T) {
	levelID, ok := elements.Heading().FieldID("level")
	require.True(t, ok)

	byKind := elements.Heading().Select()
	assert.True(t, realize.Matches(byKind, heading(1, "Intro")))
	assert.False(t, realize.Matches(byKind, text("Intro")))

	byLevel := elements.Heading().Where(foundations.FieldFilter{ID: levelID, Value: 2})
	assert.True(t, realize.Matches(byLevel, heading(2, "Usage")))
	assert.False(t, realize.Matches(byLevel, heading(1, "Intro")))
}

func TestMatchesAbsentFieldFails(t *testing.T) {
	numberingID, ok := elements.Heading().FieldID("numbering")
	require.True(t, ok)

	s := elements.Heading().Where(foundations.FieldFilter{ID: numberingID, Value: "1.1"})
	assert.False(t, realize.Matches(s, heading(1, "Intro")))
}

func TestShowRuleReplacesMatches(t *testing.T) {
	eng := engine.New()
	rule := realize.NewShowRule(eng, elements.Heading().Select(),
		func(c foundations.Content) []foundations.Content {
			body, _ := c.FieldByName("body")
			return []foundations.Content{text("§ " + body.(string))}
		})

	stream := []foundations.Content{heading(1, "Intro"), text("plain")}
	out := rule.Apply(stream)
	require.Len(t, out, 2)
	assert.True(t, out[0].Is(elements.Text()))
	body, _ := out[0].FieldByName("text")
	assert.Equal(t, "§ Intro", body)

	// Untouched content passes through without a stamp.
	assert.False(t, out[1].IsGuarded(rule.Guard()))
}

func TestShowRuleGuardIdempotence(t *testing.T) {
	eng := engine.New()

	// The transform emits a heading again, which matches the rule's own
	// selector. The guard keeps a second pass from expanding it further.
	calls := 0
	rule := realize.NewShowRule(eng, elements.Heading().Select(),
		func(c foundations.Content) []foundations.Content {
			calls++
			return []foundations.Content{c}
		})

	stream := []foundations.Content{heading(1, "Intro")}
	once := rule.Apply(stream)
	require.Len(t, once, 1)
	assert.True(t, once[0].IsGuarded(rule.Guard()))
	assert.Equal(t, 1, calls)

	twice := rule.Apply(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, 1, calls)
}

func TestShowRulesGuardIndependently(t *testing.T) {
	eng := engine.New()
	first := realize.NewShowRule(eng, elements.Heading().Select(),
		func(c foundations.Content) []foundations.Content {
			return []foundations.Content{c}
		})
	second := realize.NewShowRule(eng, elements.Heading().Select(),
		func(c foundations.Content) []foundations.Content {
			return []foundations.Content{c}
		})
	require.NotEqual(t, first.Guard(), second.Guard())

	out := second.Apply(first.Apply([]foundations.Content{heading(1, "Intro")}))
	require.Len(t, out, 1)
	assert.True(t, out[0].IsGuarded(first.Guard()))
	assert.True(t, out[0].IsGuarded(second.Guard()))
}

func TestShowBaseSynthesizesAndShows(t *testing.T) {
	eng := engine.New()
	numberingID, _ := elements.Heading().FieldID("numbering")

	styles := foundations.NewStyles()
	styles.Set(foundations.Property{Elem: elements.Heading(), Field: numberingID, Value: "1.1"})

	realized, err := realize.ShowBase(eng, heading(2, "Usage"), foundations.ChainOf(styles))
	require.NoError(t, err)
	require.True(t, realized.Is(elements.Text()))
	body, _ := realized.FieldByName("text")
	assert.Equal(t, "1.1 Usage", body)
}

func TestShowBasePassesThroughPlainKinds(t *testing.T) {
	eng := engine.New()
	plain := text("x")
	realized, err := realize.ShowBase(eng, plain, foundations.StyleChain{})
	require.NoError(t, err)
	assert.Equal(t, plain, realized)
}
