package docs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/typograph-lang/typograph/elements"
	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/internal/docs"
)

func TestGenerateWritesAllPages(t *testing.T) {
	dir := t.TempDir()
	err := docs.Generate(docs.Config{ProjectName: "Typograph", OutputDir: dir})
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "elements", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# Typograph Elements")
	assert.Contains(t, string(index), "[heading](heading.md)")

	for _, elem := range foundations.All() {
		_, err := os.Stat(filepath.Join(dir, "elements", elem.Name()+".md"))
		assert.NoError(t, err, "missing page for %s", elem.Name())
	}
}

func TestElementPageContent(t *testing.T) {
	heading, ok := foundations.ByName("heading")
	require.True(t, ok)

	page := docs.ElementPage(heading)
	assert.Contains(t, page, "# Heading (`heading`)")
	assert.Contains(t, page, "## Parameters")
	assert.Contains(t, page, "| `body` | yes | no | yes | no | - |")
	assert.Contains(t, page, "| `level` | no | yes | no | no | `1` |")
	assert.Contains(t, page, "## Definitions")
	assert.Contains(t, page, "`heading.max-level` = `6`")
}

func TestElementPageWithoutParams(t *testing.T) {
	space, ok := foundations.ByName("space")
	require.True(t, ok)

	page := docs.ElementPage(space)
	assert.NotContains(t, page, "## Parameters")
	assert.NotContains(t, page, "## Definitions")
}

func TestServerRoot(t *testing.T) {
	server := httptest.NewServer(docs.NewRouter("Typograph"))
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Typograph", body["project"])
	assert.Equal(t, float64(len(foundations.All())), body["elements"])
}

func TestServerListsElements(t *testing.T) {
	server := httptest.NewServer(docs.NewRouter("Typograph"))
	defer server.Close()

	resp, err := http.Get(server.URL + "/elements")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, len(foundations.All()))

	// Summaries omit the per-kind detail.
	for _, entry := range body {
		assert.NotContains(t, entry, "params")
	}
}

func TestServerElementDetail(t *testing.T) {
	server := httptest.NewServer(docs.NewRouter("Typograph"))
	defer server.Close()

	resp, err := http.Get(server.URL + "/elements/heading")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "heading", body["name"])
	assert.Equal(t, "Heading", body["title"])
	assert.NotEmpty(t, body["params"])

	scope, ok := body["scope"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), scope["max-level"])
}

func TestServerUnknownElement(t *testing.T) {
	server := httptest.NewServer(docs.NewRouter("Typograph"))
	defer server.Close()

	resp, err := http.Get(server.URL + "/elements/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
