// Package docs generates documentation for the registered element kinds
// from their static metadata: one markdown page per kind plus an index,
// and an HTTP server rendering the same data.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/typograph-lang/typograph/foundations"
)

// Config holds documentation generation settings.
type Config struct {
	// ProjectName is used in page headers.
	ProjectName string

	// OutputDir is the base directory for generated files.
	OutputDir string
}

// Generate writes markdown documentation for every registered kind.
func Generate(config Config) error {
	outputDir := filepath.Join(config.OutputDir, "elements")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, "README.md"), []byte(Index(config.ProjectName)), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	for _, elem := range foundations.All() {
		path := filepath.Join(outputDir, elem.Name()+".md")
		if err := os.WriteFile(path, []byte(ElementPage(elem)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// Index renders the markdown index over all registered kinds.
func Index(projectName string) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s Elements\n\n", projectName)
	buf.WriteString("The closed set of native element kinds.\n\n")
	buf.WriteString("| Element | Title | Summary |\n")
	buf.WriteString("|---------|-------|---------|\n")
	for _, elem := range foundations.All() {
		fmt.Fprintf(&buf, "| [%s](%s.md) | %s | %s |\n",
			elem.Name(), elem.Name(), elem.Title(), firstSentence(elem.Docs()))
	}
	return buf.String()
}

// ElementPage renders the markdown page for one kind.
func ElementPage(elem foundations.Element) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s (`%s`)\n\n", elem.Title(), elem.Name())
	buf.WriteString(elem.Docs())
	buf.WriteString("\n")

	if keywords := elem.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(&buf, "\n**Keywords:** %s\n", strings.Join(keywords, ", "))
	}

	if params := elem.Params(); len(params) > 0 {
		buf.WriteString("\n## Parameters\n\n")
		buf.WriteString("| Name | Positional | Named | Required | Settable | Default |\n")
		buf.WriteString("|------|------------|-------|----------|----------|--------|\n")
		for _, p := range params {
			fmt.Fprintf(&buf, "| `%s` | %s | %s | %s | %s | %s |\n",
				p.Name, tick(p.Positional), tick(p.Named), tick(p.Required), tick(p.Settable), defaultCell(p))
		}
		for _, p := range params {
			if p.Docs != "" {
				fmt.Fprintf(&buf, "\n- `%s`: %s\n", p.Name, p.Docs)
			}
		}
	}

	if scope := elem.Scope(); scope.Len() > 0 {
		buf.WriteString("\n## Definitions\n\n")
		for _, name := range scope.Names() {
			value, _ := scope.Get(name)
			fmt.Fprintf(&buf, "- `%s.%s` = `%v`\n", elem.Name(), name, value)
		}
	}

	return buf.String()
}

func tick(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func defaultCell(p foundations.ParamInfo) string {
	if p.Default == nil {
		return "-"
	}
	return fmt.Sprintf("`%v`", p.Default)
}

func firstSentence(docs string) string {
	if i := strings.IndexAny(docs, ".\n"); i >= 0 {
		return strings.TrimSpace(docs[:i+1])
	}
	return docs
}
