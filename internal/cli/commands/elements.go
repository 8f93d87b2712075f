package commands

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/typograph-lang/typograph/foundations"
	"github.com/typograph-lang/typograph/internal/cli/ui"

	// Register the built-in element kinds.
	_ "github.com/typograph-lang/typograph/elements"
)

var (
	outputFormat string
	noColor      bool
)

// NewElementsCommand creates the 'elements' command listing the registry.
func NewElementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List all registered element kinds",
		Long: `List all native element kinds in the closed registry.

Shows each kind's stable name, display title, and declared parameters.
Use 'typograph element <name>' for full details about one kind.`,
		Example: `  # List all elements
  typograph elements

  # List elements in JSON format for tooling
  typograph elements --format json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		RunE: runElements,
	}

	cmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

func runElements(cmd *cobra.Command, args []string) error {
	elems := foundations.All()

	if outputFormat == "json" {
		out := make([]map[string]any, 0, len(elems))
		for _, elem := range elems {
			out = append(out, map[string]any{
				"name":     elem.Name(),
				"title":    elem.Title(),
				"keywords": elem.Keywords(),
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	table := ui.NewTable(cmd.OutOrStdout(), "NAME", "TITLE", "PARAMS", "CAPABILITIES")
	for _, elem := range elems {
		params := make([]string, 0)
		for _, p := range elem.Params() {
			params = append(params, p.Name)
		}
		table.AddRow(elem.Name(), elem.Title(), strings.Join(params, ", "), capabilityList(elem))
	}
	table.Render()
	return nil
}

// NewElementCommand creates the 'element <name>' detail command.
func NewElementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element <name>",
		Short: "Show detailed information about one element kind",
		Example: `  # View details of the heading element
  typograph element heading

  # View details in JSON format
  typograph element heading --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runElement,
	}
	cmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: json or table")
	return cmd
}

func runElement(cmd *cobra.Command, args []string) error {
	name := args[0]
	elem, ok := foundations.ByName(name)
	if !ok {
		known := make([]string, 0)
		for _, e := range foundations.All() {
			known = append(known, e.Name())
		}
		ui.NotFound(cmd.ErrOrStderr(), "element", name,
			ui.Suggest(name, known), "See all elements: typograph elements")
		return fmt.Errorf("unknown element: %s", name)
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"name":         elem.Name(),
			"title":        elem.Title(),
			"docs":         elem.Docs(),
			"keywords":     elem.Keywords(),
			"params":       elem.Params(),
			"capabilities": strings.Split(capabilityList(elem), ", "),
		})
	}

	w := cmd.OutOrStdout()
	title := color.New(color.Bold)
	title.Fprintf(w, "%s (%s)\n\n", elem.Title(), elem.Name())
	fmt.Fprintln(w, elem.Docs())
	if keywords := elem.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(w, "\nKeywords: %s\n", strings.Join(keywords, ", "))
	}
	fmt.Fprintf(w, "Capabilities: %s\n", capabilityList(elem))

	if params := elem.Params(); len(params) > 0 {
		fmt.Fprintln(w)
		table := ui.NewTable(w, "PARAM", "POSITIONAL", "NAMED", "REQUIRED", "SETTABLE")
		for _, p := range params {
			table.AddRow(p.Name, yesNo(p.Positional), yesNo(p.Named), yesNo(p.Required), yesNo(p.Settable))
		}
		table.Render()
	}
	return nil
}

// capabilityList names the optional capabilities the kind implements.
func capabilityList(elem foundations.Element) string {
	named := []struct {
		name string
		of   reflect.Type
	}{
		{"behave", reflect.TypeOf((*foundations.Behave)(nil)).Elem()},
		{"synthesize", reflect.TypeOf((*foundations.Synthesize)(nil)).Elem()},
		{"show", reflect.TypeOf((*foundations.Show)(nil)).Elem()},
		{"finalize", reflect.TypeOf((*foundations.Finalize)(nil)).Elem()},
		{"plain-text", reflect.TypeOf((*foundations.PlainText)(nil)).Elem()},
	}
	var out []string
	for _, c := range named {
		if elem.CanTypeID(c.of) {
			out = append(out, c.name)
		}
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
