package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// FlushElem forces all pending floating content to be placed before
// anything that follows. It destroys adjacent weak elements.
type FlushElem struct{}

var flushData = &foundations.ElementData{
	Name:     "flush",
	Title:    "Flush",
	Docs:     "Places all pending floating content before continuing.",
	Keywords: []string{"float", "placement"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		return foundations.Pack(&FlushElem{}), nil
	},
	Set:       setNone,
	FieldID:   noFieldID,
	FieldName: noFieldName,
}

func init() {
	foundations.Capable[foundations.Behave, *FlushElem](flushData)
	foundations.Register(flushData)
}

// Flush returns the handle of the flush kind.
func Flush() foundations.Element {
	return foundations.Of[*FlushElem]()
}

// ElementData returns the kind's static metadata record.
func (*FlushElem) ElementData() *foundations.ElementData {
	return flushData
}

func (*FlushElem) Has(uint8) bool                        { return false }
func (*FlushElem) Field(uint8) (foundations.Value, bool) { return nil, false }
func (*FlushElem) Fields() *foundations.Dict             { return foundations.NewDict() }

// Behaviour reports the flush's interaction behaviour.
func (*FlushElem) Behaviour() foundations.Behaviour {
	return foundations.Destructive
}
