package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// ParbreakElem separates two paragraphs. It is weaker than explicit
// spacing but stronger than a plain space.
type ParbreakElem struct{}

var parbreakData = &foundations.ElementData{
	Name:     "parbreak",
	Title:    "Paragraph Break",
	Docs:     "Separates two paragraphs. Consecutive breaks collapse into one.",
	Keywords: []string{"paragraph", "break"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		return foundations.Pack(&ParbreakElem{}), nil
	},
	Set:       setNone,
	FieldID:   noFieldID,
	FieldName: noFieldName,
}

func init() {
	foundations.Capable[foundations.Behave, *ParbreakElem](parbreakData)
	foundations.Register(parbreakData)
}

// Parbreak returns the handle of the paragraph-break kind.
func Parbreak() foundations.Element {
	return foundations.Of[*ParbreakElem]()
}

// ElementData returns the kind's static metadata record.
func (*ParbreakElem) ElementData() *foundations.ElementData {
	return parbreakData
}

func (*ParbreakElem) Has(uint8) bool                        { return false }
func (*ParbreakElem) Field(uint8) (foundations.Value, bool) { return nil, false }
func (*ParbreakElem) Fields() *foundations.Dict             { return foundations.NewDict() }

// Behaviour reports the break's interaction behaviour.
func (*ParbreakElem) Behaviour() foundations.Behaviour {
	return foundations.Weak(1)
}
