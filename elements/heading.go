package elements

import (
	"strings"

	"go.uber.org/zap"

	"github.com/typograph-lang/typograph/diag"
	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/lang"
)

// HeadingElem is a section heading. Its numbering and outline visibility
// are style properties; level and body are structural.
type HeadingElem struct {
	// Level is the nesting depth, starting at 1.
	Level int

	// Body is the heading text.
	Body string

	// Numbering is an optional numbering pattern, e.g. "1.1". Unset means
	// unnumbered unless a style delta supplies one.
	Numbering *string

	// Outlined controls whether the heading appears in outlines.
	Outlined bool
}

const (
	headingFieldLevel uint8 = iota
	headingFieldBody
	headingFieldNumbering
	headingFieldOutlined
)

var headingFieldNames = [...]string{
	headingFieldLevel:     "level",
	headingFieldBody:      "body",
	headingFieldNumbering: "numbering",
	headingFieldOutlined:  "outlined",
}

var headingData = &foundations.ElementData{
	Name:     "heading",
	Title:    "Heading",
	Docs:     "A section heading, structuring the document into a hierarchy.",
	Keywords: []string{"section", "title", "outline"},
	Construct: constructHeading,
	Set:       setHeading,
	FieldID: func(name string) (uint8, bool) {
		for id, have := range headingFieldNames {
			if have == name {
				return uint8(id), true
			}
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		if int(id) < len(headingFieldNames) {
			return headingFieldNames[id], true
		}
		return "", false
	},
	Local: lang.NewNames(map[string]string{
		"en":    "Heading",
		"de":    "Überschrift",
		"fr":    "Titre",
		"pt":    "Título",
		"pt-BR": "Seção",
	}),
	Scope: func() *foundations.Scope {
		return foundations.NewScope().
			Define("max-level", 6).
			Define("default-numbering", "1.1")
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "body", Docs: "The heading text.", Positional: true, Required: true},
			{Name: "level", Docs: "The nesting depth, starting at 1.", Named: true, Default: 1},
			{Name: "numbering", Docs: "A numbering pattern, or unset for no numbering.", Named: true, Settable: true},
			{Name: "outlined", Docs: "Whether the heading appears in outlines.", Named: true, Settable: true, Default: true},
		}
	},
}

func constructHeading(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
	v, err := args.Expect("body")
	if err != nil {
		return foundations.Content{}, err
	}
	body, err := foundations.CastArg[string](args, "body", v)
	if err != nil {
		return foundations.Content{}, err
	}

	level := 1
	if v, ok := args.Named("level"); ok {
		level, err = foundations.CastArg[int](args, "level", v)
		if err != nil {
			return foundations.Content{}, err
		}
		if level < 1 {
			return foundations.Content{}, diag.New(diag.CodeOutOfDomain, args.Location(),
				"heading level must be at least 1, got %d", level)
		}
	}

	return foundations.Pack(&HeadingElem{Level: level, Body: body, Outlined: true}), nil
}

func setHeading(engine foundations.Engine, args *foundations.Args) (*foundations.Styles, error) {
	styles := foundations.NewStyles()
	if v, ok := args.Named("numbering"); ok {
		pattern, err := foundations.CastArg[string](args, "numbering", v)
		if err != nil {
			return nil, err
		}
		styles.Set(foundations.Property{Elem: Heading(), Field: headingFieldNumbering, Value: pattern})
	}
	if v, ok := args.Named("outlined"); ok {
		outlined, err := foundations.CastArg[bool](args, "outlined", v)
		if err != nil {
			return nil, err
		}
		styles.Set(foundations.Property{Elem: Heading(), Field: headingFieldOutlined, Value: outlined})
	}
	return styles, nil
}

func init() {
	foundations.Capable[foundations.Synthesize, *HeadingElem](headingData)
	foundations.Capable[foundations.Show, *HeadingElem](headingData)
	foundations.Register(headingData)
}

// Heading returns the handle of the heading kind.
func Heading() foundations.Element {
	return foundations.Of[*HeadingElem]()
}

// ElementData returns the kind's static metadata record.
func (*HeadingElem) ElementData() *foundations.ElementData {
	return headingData
}

func (h *HeadingElem) Has(id uint8) bool {
	switch id {
	case headingFieldLevel, headingFieldBody, headingFieldOutlined:
		return true
	case headingFieldNumbering:
		return h.Numbering != nil
	default:
		return false
	}
}

func (h *HeadingElem) Field(id uint8) (foundations.Value, bool) {
	switch id {
	case headingFieldLevel:
		return h.Level, true
	case headingFieldBody:
		return h.Body, true
	case headingFieldNumbering:
		if h.Numbering == nil {
			return nil, false
		}
		return *h.Numbering, true
	case headingFieldOutlined:
		return h.Outlined, true
	default:
		return nil, false
	}
}

func (h *HeadingElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("level", h.Level)
	dict.Set("body", h.Body)
	if h.Numbering != nil {
		dict.Set("numbering", *h.Numbering)
	}
	dict.Set("outlined", h.Outlined)
	return dict
}

// Synthesize resolves the numbering style property onto the instance so
// show rules observe the effective value.
func (h *HeadingElem) Synthesize(engine foundations.Engine, styles foundations.StyleChain) error {
	if h.Numbering == nil {
		if v, ok := styles.Get(Heading(), headingFieldNumbering); ok {
			if pattern, ok := v.(string); ok {
				h.Numbering = &pattern
			}
		}
	}
	if v, ok := styles.Get(Heading(), headingFieldOutlined); ok {
		if outlined, ok := v.(bool); ok {
			h.Outlined = outlined
		}
	}
	return nil
}

// Show expands the heading into its realized text form.
func (h *HeadingElem) Show(engine foundations.Engine, styles foundations.StyleChain) (foundations.Content, error) {
	var b strings.Builder
	if h.Numbering != nil {
		b.WriteString(*h.Numbering)
		b.WriteString(" ")
	}
	b.WriteString(h.Body)
	engine.Logger().Debug("showing heading", zap.Int("level", h.Level))
	return foundations.Pack(&TextElem{Text: b.String()}), nil
}
