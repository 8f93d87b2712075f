// Package diag defines the diagnostic errors surfaced by the content core.
// Diagnostics are recoverable compiler errors: they carry a source location
// and a stable code, and propagate synchronously out of construction and
// style resolution. Absence (a missing field, capability, or localized name)
// is never a diagnostic.
package diag

import "fmt"

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// SourceLocation represents a location in source code.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length"` // For multi-character tokens
}

// Diagnostic is a single compiler diagnostic.
type Diagnostic struct {
	Code     string         // "T100", "T101", ...
	Message  string         // Human-readable message
	Location SourceLocation // Where the offending source lives
	Severity Severity
	Hints    []string // Optional follow-up suggestions
}

// New creates a diagnostic at Error severity.
func New(code string, loc SourceLocation, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
		Severity: Error,
	}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Location.File == "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		d.Location.File,
		d.Location.Line,
		d.Location.Column,
		d.Code,
		d.Message)
}

// WithSeverity returns a copy of the diagnostic at the given severity.
func (d *Diagnostic) WithSeverity(s Severity) *Diagnostic {
	out := *d
	out.Severity = s
	return &out
}

// WithHint appends a suggestion to the diagnostic.
func (d *Diagnostic) WithHint(format string, args ...any) *Diagnostic {
	out := *d
	out.Hints = append(append([]string(nil), d.Hints...), fmt.Sprintf(format, args...))
	return &out
}

// IsError reports whether the diagnostic is at Error or Fatal severity.
func (d *Diagnostic) IsError() bool {
	return d.Severity == Error || d.Severity == Fatal
}
