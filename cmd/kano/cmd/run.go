package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Zero5620/Kano/pkg/kano"
	"github.com/Zero5620/Kano/pkg/kano/builtins"
	"github.com/Zero5620/Kano/pkg/kano/samples"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <sample>",
	Short: "Run one of the built-in sample programs",
	Long: fmt.Sprintf(`Resolve and execute a built-in Kano sample program.

Available samples: %s`, strings.Join(samples.Names, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSample(_ *cobra.Command, args []string) error {
	scope, ok := samples.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown sample %q (available: %s)", args[0], strings.Join(samples.Names, ", "))
	}

	r := kano.Build()
	builtins.RegisterPrint(r, os.Stdout)

	program, err := kano.Compile(r, scope)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %q: stack=%d bytes, globals=%d bytes\n", args[0], r.StackAllocated(), r.BSSAllocated())
	}

	if _, err := program.Run(kano.DefaultStackSize, kano.DefaultGlobalSize); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	fmt.Println()
	return nil
}
