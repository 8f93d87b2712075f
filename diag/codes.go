package diag

// Diagnostic code constants organized by concern
// T100-T199: argument errors
// T200-T299: construction errors
// T300-T399: style errors

const (
	// Argument errors (T100-T199)
	CodeMissingArgument    = "T100"
	CodeUnexpectedArgument = "T101"
	CodeWrongArgumentType  = "T102"
	CodeOutOfDomain        = "T103"
	CodeDuplicateArgument  = "T104"

	// Construction errors (T200-T299)
	CodeUnconstructable = "T200"

	// Style errors (T300-T399)
	CodeUnsettableProperty = "T300"
)
