package elements

import (
	"github.com/typograph-lang/typograph/diag"
	"github.com/typograph-lang/typograph/foundations"
)

// VSpaceElem inserts explicit vertical spacing, measured in points. When
// two spacings of the same weakness meet in one run, the larger amount
// wins.
type VSpaceElem struct {
	// Amount is the spacing in points. Non-negative.
	Amount float64
}

const vspaceFieldAmount uint8 = 0

var vspaceData = &foundations.ElementData{
	Name:     "vspace",
	Title:    "Vertical Spacing",
	Docs:     "Explicit vertical spacing between block-level content.",
	Keywords: []string{"spacing", "vertical", "gap"},
	Construct: func(engine foundations.Engine, args *foundations.Args) (foundations.Content, error) {
		v, err := args.Expect("amount")
		if err != nil {
			return foundations.Content{}, err
		}
		amount, err := foundations.CastArg[float64](args, "amount", v)
		if err != nil {
			return foundations.Content{}, err
		}
		if amount < 0 {
			return foundations.Content{}, diag.New(diag.CodeOutOfDomain, args.Location(),
				"spacing amount must be non-negative, got %g", amount)
		}
		return foundations.Pack(&VSpaceElem{Amount: amount}), nil
	},
	Set: setNone,
	FieldID: func(name string) (uint8, bool) {
		if name == "amount" {
			return vspaceFieldAmount, true
		}
		return 0, false
	},
	FieldName: func(id uint8) (string, bool) {
		if id == vspaceFieldAmount {
			return "amount", true
		}
		return "", false
	},
	Params: func() []foundations.ParamInfo {
		return []foundations.ParamInfo{
			{Name: "amount", Docs: "The spacing in points.", Positional: true, Required: true},
		}
	},
}

func init() {
	foundations.Capable[foundations.Behave, *VSpaceElem](vspaceData)
	foundations.Capable[foundations.Tiebreaker, *VSpaceElem](vspaceData)
	foundations.Register(vspaceData)
}

// VSpace returns the handle of the vertical-spacing kind.
func VSpace() foundations.Element {
	return foundations.Of[*VSpaceElem]()
}

// ElementData returns the kind's static metadata record.
func (*VSpaceElem) ElementData() *foundations.ElementData {
	return vspaceData
}

func (v *VSpaceElem) Has(id uint8) bool {
	return id == vspaceFieldAmount
}

func (v *VSpaceElem) Field(id uint8) (foundations.Value, bool) {
	if id == vspaceFieldAmount {
		return v.Amount, true
	}
	return nil, false
}

func (v *VSpaceElem) Fields() *foundations.Dict {
	dict := foundations.NewDict()
	dict.Set("amount", v.Amount)
	return dict
}

// Behaviour reports the spacing's interaction behaviour.
func (*VSpaceElem) Behaviour() foundations.Behaviour {
	return foundations.Weak(3)
}

// Larger replaces an equally weak predecessor when this spacing is wider.
func (v *VSpaceElem) Larger(prev foundations.Content, styles foundations.StyleChain) bool {
	other, ok := prev.Native().(*VSpaceElem)
	if !ok {
		return false
	}
	return v.Amount > other.Amount
}
