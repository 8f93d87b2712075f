package foundations

// Every kind numbers its own declared fields densely from zero within
// 0-254. Field id 255 is reserved process-wide for the synthetic label
// field that every element conceptually possesses; it is resolved outside
// the per-kind tables and a kind may never declare it.
const (
	// LabelField is the reserved universal field id.
	LabelField uint8 = 255

	// LabelFieldName is the name the reserved field resolves to.
	LabelFieldName = "label"
)

// Fields is the field-access contract every concrete instance fulfills.
// Ids are the kind's own declared field ids; the reserved label field is
// handled by Content, not here.
type Fields interface {
	// Has reports whether the field with the given id is set on the
	// instance. Unknown ids report false.
	Has(id uint8) bool

	// Field returns the value of the field with the given id. Unset and
	// unknown fields are absent, not errors.
	Field(id uint8) (Value, bool)

	// Fields returns all set fields in declaration order. Fields absent on
	// the instance are omitted.
	Fields() *Dict
}

// Label marks content so selectors and references can find it. The empty
// label is no label.
type Label string
