package diag_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/diag"
)

func TestDiagnosticError(t *testing.T) {
	d := diag.New(diag.CodeMissingArgument,
		diag.SourceLocation{File: "doc.typ", Line: 4, Column: 9},
		"missing argument: %s", "body")

	assert.Equal(t, "doc.typ:4:9: T100: missing argument: body", d.Error())
	assert.Equal(t, diag.Error, d.Severity)
	assert.True(t, d.IsError())
}

func TestDiagnosticErrorWithoutLocation(t *testing.T) {
	d := diag.New(diag.CodeUnconstructable, diag.SourceLocation{}, "cannot construct")
	assert.Equal(t, "T200: cannot construct", d.Error())
}

func TestWithSeverityCopies(t *testing.T) {
	d := diag.New(diag.CodeOutOfDomain, diag.SourceLocation{}, "bad level")
	w := d.WithSeverity(diag.Warning)

	assert.Equal(t, diag.Warning, w.Severity)
	assert.False(t, w.IsError())
	assert.Equal(t, diag.Error, d.Severity)
}

func TestWithHintCopies(t *testing.T) {
	d := diag.New(diag.CodeWrongArgumentType, diag.SourceLocation{}, "expected int")
	h := d.WithHint("pass a number, e.g. %d", 2)

	require.Len(t, h.Hints, 1)
	assert.Equal(t, "pass a number, e.g. 2", h.Hints[0])
	assert.Empty(t, d.Hints)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", diag.Info.String())
	assert.Equal(t, "warning", diag.Warning.String())
	assert.Equal(t, "error", diag.Error.String())
	assert.Equal(t, "fatal", diag.Fatal.String())
}

func TestRender(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	d := diag.New(diag.CodeDuplicateArgument,
		diag.SourceLocation{File: "doc.typ", Line: 2, Column: 5},
		"duplicate argument: level").
		WithHint("remove the second occurrence")
	diag.Render(&buf, d)

	out := buf.String()
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "doc.typ:2:5")
	assert.Contains(t, out, "duplicate argument: level")
	assert.Contains(t, out, "remove the second occurrence")
}
