package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/internal/cli/commands"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := commands.NewRootCommand("test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestElementsJSON(t *testing.T) {
	stdout, _, err := run(t, "elements", "--format", "json")
	require.NoError(t, err)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &listed))
	require.Len(t, listed, len(foundations.All()))

	names := make([]string, 0, len(listed))
	for _, entry := range listed {
		names = append(names, entry["name"].(string))
	}
	assert.Contains(t, names, "heading")
	assert.Contains(t, names, "space")
}

func TestElementsTable(t *testing.T) {
	stdout, _, err := run(t, "elements", "--format", "table", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "heading")
	assert.Contains(t, stdout, "synthesize, show")
	assert.Contains(t, stdout, "behave, plain-text")
}

func TestElementDetailJSON(t *testing.T) {
	stdout, _, err := run(t, "element", "heading", "--format", "json")
	require.NoError(t, err)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &detail))
	assert.Equal(t, "heading", detail["name"])
	assert.NotEmpty(t, detail["params"])

	capabilities, ok := detail["capabilities"].([]any)
	require.True(t, ok)
	assert.Contains(t, capabilities, "synthesize")
	assert.Contains(t, capabilities, "show")
}

func TestElementUnknownSuggests(t *testing.T) {
	_, stderr, err := run(t, "element", "headng")
	require.Error(t, err)
	assert.Contains(t, stderr, "element not found: headng")
	assert.Contains(t, stderr, "heading")
}
