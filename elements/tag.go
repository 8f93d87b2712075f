package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// TagElem marks a position in the realized stream for introspection. Tags
// are ignorant: the weak/destructive accounting treats them as absent, but
// they stay in the stream.
type TagElem struct {
	// Key identifies what the tag marks.
	Key string
}

const tagFieldKey uint8 = 0

var tagData = &foundations.ElementData{
	Name:     "tag",
	Title:    "Tag",
	Docs:     "An invisible structural marker used to locate content after realization.",
	Keywords: []string{"marker", "location"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		v, err := args.Expect("key")
		if err != nil {
			return foundations.Content{}, err
		}
		key, err := foundations.CastArg[string](args, "key", v)
		if err != nil {
			return foundations.Content{}, err
		}
		return foundations.Pack(&TagElem{Key: key}), nil
	},
	Set: setNone,
	FieldID: func(name string) (uint8, bool) {
		if name == "key" {
			return tagFieldKey, true
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		if id == tagFieldKey {
			return "key", true
		}
		return "", false
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "key", Docs: "What the tag marks.", Positional: true, Required: true},
		}
	},
}

func init() {
	foundations.Capable[foundations.Behave, *TagElem](tagData)
	foundations.Register(tagData)
}

// Tag returns the handle of the tag kind.
func Tag() foundations.Element {
	return foundations.Of[*TagElem]()
}

// ElementData returns the kind's static metadata record.
func (*TagElem) ElementData() *foundations.ElementData {
	return tagData
}

func (t *TagElem) Has(id uint8) bool {
	return id == tagFieldKey
}

func (t *TagElem) Field(id uint8) (foundations.Value, bool) {
	if id == tagFieldKey {
		return t.Key, true
	}
	return nil, false
}

func (t *TagElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("key", t.Key)
	return dict
}

// Behaviour reports the tag's interaction behaviour.
func (*TagElem) Behaviour() foundations.Behaviour {
	return foundations.Ignorant
}
