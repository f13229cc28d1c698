// Package cmd implements the zoidc command-line interface: the compile
// pipeline driver plus project-scaffolding helpers, built on cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overwritten at build time via -ldflags; unset it simply
// reports "dev".
var version = "dev"

// rootCmd is the zoidc entry point. It carries no behavior of its own
// beyond dispatching to its subcommands and serving --version/--help.
var rootCmd = &cobra.Command{
	Use:     "zoidc",
	Short:   "Front end for the Language: lexer, parser, and HLIR lowering",
	Version: version,
}

// Execute runs the command tree, exiting the process with a non-zero
// status if cobra itself reports an error (e.g. an unknown flag).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(initCmd)
}
