package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// ColbreakElem forces content into the next column. A weak column break
// only takes effect between supportive neighbours; a forced one destroys
// adjacent weak elements instead.
type ColbreakElem struct {
	// Weak selects the collapsing variant.
	Weak bool
}

const colbreakFieldWeak uint8 = 0

var colbreakData = &foundations.ElementData{
	Name:     "colbreak",
	Title:    "Column Break",
	Docs:     "Forces the following content into the next column.",
	Keywords: []string{"column", "break"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		weak := false
		if v, ok := args.Named("weak"); ok {
			b, err := foundations.CastArg[bool](args, "weak", v)
			if err != nil {
				return foundations.Content{}, err
			}
			weak = b
		}
		return foundations.Pack(&ColbreakElem{Weak: weak}), nil
	},
	Set: setNone,
	FieldID: func(name string) (uint8, bool) {
		if name == "weak" {
			return colbreakFieldWeak, true
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		if id == colbreakFieldWeak {
			return "weak", true
		}
		return "", false
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "weak", Docs: "Whether the break collapses against run boundaries.", Named: true, Default: false},
		}
	},
}

func init() {
	foundations.Capable[foundations.Behave, *ColbreakElem](colbreakData)
	foundations.Register(colbreakData)
}

// Colbreak returns the handle of the column-break kind.
func Colbreak() foundations.Element {
	return foundations.Of[*ColbreakElem]()
}

// ElementData returns the kind's static metadata record.
func (*ColbreakElem) ElementData() *foundations.ElementData {
	return colbreakData
}

func (c *ColbreakElem) Has(id uint8) bool {
	return id == colbreakFieldWeak
}

func (c *ColbreakElem) Field(id uint8) (foundations.Value, bool) {
	if id == colbreakFieldWeak {
		return c.Weak, true
	}
	return nil, false
}

func (c *ColbreakElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("weak", c.Weak)
	return dict
}

// Behaviour depends on the instance: weak breaks collapse, forced breaks
// destroy adjacent weak elements.
func (c *ColbreakElem) Behaviour() foundations.Behaviour {
	if c.Weak {
		return foundations.Weak(2)
	}
	return foundations.Destructive
}
