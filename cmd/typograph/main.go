package main

import (
	"fmt"
	"os"

	"github.com/typograph-lang/typograph/internal/cli/commands"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(Version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
