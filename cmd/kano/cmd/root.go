package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kano",
	Short: "Kano program runner",
	Long: `kano runs programs against the Kano resolver and interpreter.

Kano is a small statically-typed imperative language: structural types,
pointers, static arrays and array views, operator overloading, and a
foreign-call registry for host-provided procedures. This module doesn't
carry a lexer or parser, so "run" executes one of a handful of named
sample programs built in Go with pkg/kano/build, rather than a source
file argument.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
