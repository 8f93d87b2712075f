package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/typograph-lang/typograph/internal/cli/config"
	"github.com/typograph-lang/typograph/internal/docs"
)

var (
	docsOutput string
	docsPort   int
)

// NewDocsCommand creates the docs command group.
func NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate and serve element documentation",
		Long: `Generate documentation for the registered element kinds from their
static metadata, or serve it over HTTP.

Examples:
  typograph docs generate
  typograph docs generate --output build/docs
  typograph docs serve --port 8080`,
	}

	cmd.AddCommand(newDocsGenerateCommand())
	cmd.AddCommand(newDocsServeCommand())
	return cmd
}

func newDocsGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate markdown documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			output := docsOutput
			if output == "" {
				output = cfg.Docs.Output
			}

			start := time.Now()
			if err := docs.Generate(docs.Config{
				ProjectName: cfg.ProjectName,
				OutputDir:   output,
			}); err != nil {
				return err
			}
			color.Green("Documentation generated in %s (%s)", output, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&docsOutput, "output", "", "Output directory (defaults to config)")
	return cmd
}

func newDocsServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve element documentation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			port := docsPort
			if port == 0 {
				port = cfg.Docs.Port
			}

			addr := fmt.Sprintf("%s:%d", cfg.Docs.Host, port)
			color.Green("Serving element documentation at http://%s", addr)
			server := &http.Server{
				Addr:              addr,
				Handler:           docs.NewRouter(cfg.ProjectName),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return server.ListenAndServe()
		},
	}
	cmd.Flags().IntVar(&docsPort, "port", 0, "Port to listen on (defaults to config)")
	return cmd
}
