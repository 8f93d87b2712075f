package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// SpaceElem is a single space between content. Spaces are the weakest
// element in a run: any other weak element replaces them, and they only
// survive between supportive neighbours.
type SpaceElem struct{}

var spaceData = &foundations.ElementData{
	Name:     "space",
	Title:    "Space",
	Docs:     "A spacing element that collapses at run boundaries.",
	Keywords: []string{"whitespace", "blank"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		return foundations.Pack(&SpaceElem{}), nil
	},
	Set:       setNone,
	FieldID:   noFieldID,
	FieldName: noFieldName,
}

func init() {
	foundations.Capable[foundations.Behave, *SpaceElem](spaceData)
	foundations.Capable[foundations.PlainText, *SpaceElem](spaceData)
	foundations.Register(spaceData)
}

// Space returns the handle of the space kind.
func Space() foundations.Element {
	return foundations.Of[*SpaceElem]()
}

// ElementData returns the kind's static metadata record.
func (*SpaceElem) ElementData() *foundations.ElementData {
	return spaceData
}

func (*SpaceElem) Has(uint8) bool                        { return false }
func (*SpaceElem) Field(uint8) (foundations.Value, bool) { return nil, false }
func (*SpaceElem) Fields() *foundations.Dict             { return foundations.NewDict() }

// Behaviour reports the space's interaction behaviour.
func (*SpaceElem) Behaviour() foundations.Behaviour {
	return foundations.Weak(0)
}

// PlainText returns a single space.
func (*SpaceElem) PlainText() string {
	return " "
}
