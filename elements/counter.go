package elements

import (
	"github.com/typograph-lang/typograph/foundations"
)

// CounterUpdateElem adjusts a named counter. It has no visual
// representation and is transparent to the interaction accounting.
type CounterUpdateElem struct {
	// Key names the counter.
	Key string

	// Delta is added to the counter.
	Delta int
}

const (
	counterFieldKey uint8 = iota
	counterFieldDelta
)

var counterData = &foundations.ElementData{
	Name:     "counter-update",
	Title:    "Counter Update",
	Docs:     "Adjusts a named counter without producing output.",
	Keywords: []string{"counter", "numbering", "state"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		v, err := args.Expect("key")
		if err != nil {
			return foundations.Content{}, err
		}
		key, err := foundations.CastArg[string](args, "key", v)
		if err != nil {
			return foundations.Content{}, err
		}
		delta := 1
		if v, ok := args.Named("delta"); ok {
			delta, err = foundations.CastArg[int](args, "delta", v)
			if err != nil {
				return foundations.Content{}, err
			}
		}
		return foundations.Pack(&CounterUpdateElem{Key: key, Delta: delta}), nil
	},
	Set: setNone,
	FieldID: func(name string) (uint8, bool) {
		switch name {
		case "key":
			return counterFieldKey, true
		case "delta":
			return counterFieldDelta, true
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		switch id {
		case counterFieldKey:
			return "key", true
		case counterFieldDelta:
			return "delta", true
		}
		return "", false
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "key", Docs: "The counter to adjust.", Positional: true, Required: true},
			{Name: "delta", Docs: "The amount to add.", Named: true, Default: 1},
		}
	},
}

func init() {
	foundations.Capable[foundations.Behave, *CounterUpdateElem](counterData)
	foundations.Register(counterData)
}

// CounterUpdate returns the handle of the counter-update kind.
func CounterUpdate() foundations.Element {
	return foundations.Of[*CounterUpdateElem]()
}

// ElementData returns the kind's static metadata record.
func (*CounterUpdateElem) ElementData() *foundations.ElementData {
	return counterData
}

func (c *CounterUpdateElem) Has(id uint8) bool {
	return id == counterFieldKey || id == counterFieldDelta
}

func (c *CounterUpdateElem) Field(id uint8) (foundations.Value, bool) {
	switch id {
	case counterFieldKey:
		return c.Key, true
	case counterFieldDelta:
		return c.Delta, true
	}
	return nil, false
}

func (c *CounterUpdateElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("key", c.Key)
	dict.Set("delta", c.Delta)
	return dict
}

// Behaviour reports the update's interaction behaviour.
func (*CounterUpdateElem) Behaviour() foundations.Behaviour {
	return foundations.Invisible
}
