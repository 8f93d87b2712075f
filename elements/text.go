package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// TextElem is a run of text. Text is supportive: it anchors adjacent weak
// elements.
type TextElem struct {
	// Text is the run's content.
	Text string
}

const textFieldText uint8 = 0

var textData = &foundations.ElementData{
	Name:     "text",
	Title:    "Text",
	Docs:     "A run of text content. Adjacent weak spacing collapses against it.",
	Keywords: []string{"string", "run"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		v, err := args.Expect("text")
		if err != nil {
			return foundations.Content{}, err
		}
		text, err := foundations.CastArg[string](args, "text", v)
		if err != nil {
			return foundations.Content{}, err
		}
		return foundations.Pack(&TextElem{Text: text}), nil
	},
	Set: setNone,
	FieldID: func(name string) (uint8, bool) {
		if name == "text" {
			return textFieldText, true
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		if id == textFieldText {
			return "text", true
		}
		return "", false
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "text", Docs: "The text run.", Positional: true, Required: true},
		}
	},
}

func init() {
	foundations.Capable[foundations.PlainText, *TextElem](textData)
	foundations.Register(textData)
}

// Text returns the handle of the text kind.
func Text() foundations.Element {
	return foundations.Of[*TextElem]()
}

// ElementData returns the kind's static metadata record.
func (*TextElem) ElementData() *foundations.ElementData {
	return textData
}

// Has reports whether the field with the given id is set.
func (t *TextElem) Has(id uint8) bool {
	return id == textFieldText
}

// Field returns the field with the given id.
func (t *TextElem) Field(id uint8) (foundations.Value, bool) {
	if id == textFieldText {
		return t.Text, true
	}
	return nil, false
}

// Fields returns the set fields in declaration order.
func (t *TextElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("text", t.Text)
	return dict
}

// PlainText returns the run itself.
func (t *TextElem) PlainText() string {
	return t.Text
}
