// Package commands implements the typograph CLI command tree.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typograph",
		Short: "Typograph document compiler tooling",
		Long: `Typograph is a document compiler. This tool introspects its content
core: the closed registry of native element kinds, their fields,
capabilities, and documentation.`,
		Version: version,
	}

	cmd.AddCommand(NewElementsCommand())
	cmd.AddCommand(NewElementCommand())
	cmd.AddCommand(NewDocsCommand())

	return cmd
}
