package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/z80core/spectrum/pkg/conformance"
)

func newConformanceCmd() *cobra.Command {
	var output string
	var workers int

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Sweep the instruction core against the flag oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := conformance.NewWorkerPool(workers)
			cases := conformance.AllCases()

			fmt.Printf("running %d conformance cases across %d workers\n", len(cases), pool.NumWorkers)
			pool.Run(cases)

			report := conformance.NewReport(pool.Results)
			fmt.Printf("%d/%d passed\n", report.Passed, report.Total)
			for _, f := range report.Failures {
				fmt.Printf("  FAIL %s: %s\n", f.Name, f.Detail)
			}

			if output != "" {
				if err := conformance.WriteJSON(output, report); err != nil {
					return err
				}
				fmt.Printf("report written to %s\n", output)
			}

			if len(report.Failures) > 0 {
				return fmt.Errorf("%d conformance cases failed", len(report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "write a JSON report to this path")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent workers")
	return cmd
}
