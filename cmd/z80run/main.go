// Command z80run drives the Z80 core headlessly (run), sweeps it
// against the conformance oracle (conformance), or steps it
// interactively from a raw terminal (debug).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80run",
		Short: "Z80 core runner and conformance harness",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConformanceCmd())
	rootCmd.AddCommand(newDebugCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
