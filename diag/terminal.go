package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes a human-readable rendering of the diagnostic to w,
// colored by severity.
func Render(w io.Writer, d *Diagnostic) {
	header, body := severityColors(d.Severity)

	fmt.Fprintf(w, "%s: %s\n",
		header.Sprintf("%s[%s]", d.Severity, d.Code),
		body.Sprint(d.Message))

	if d.Location.File != "" {
		fmt.Fprintf(w, "  --> %s:%d:%d\n", d.Location.File, d.Location.Line, d.Location.Column)
	}

	for _, hint := range d.Hints {
		fmt.Fprintf(w, "  %s %s\n", color.CyanString("hint:"), hint)
	}
}

// RenderAll renders a list of diagnostics separated by blank lines.
func RenderAll(w io.Writer, ds []*Diagnostic) {
	for i, d := range ds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Render(w, d)
	}
}

func severityColors(s Severity) (*color.Color, *color.Color) {
	switch s {
	case Fatal, Error:
		return color.New(color.FgRed, color.Bold), color.New(color.FgRed)
	case Warning:
		return color.New(color.FgYellow, color.Bold), color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan, color.Bold), color.New(color.FgCyan)
	}
}
