package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/z80core/spectrum/pkg/machine"
	"github.com/z80core/spectrum/pkg/z80"
)

func newRunCmd() *cobra.Command {
	var image string
	var frames int
	var tactsPerFrame uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a memory image and run it headlessly for a number of frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(image)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			bus := newFlatBus(data)
			clock := z80.NewTactClock(nil)
			cpu := z80.New(bus, clock)
			peripheral := newFramePeripheral(tactsPerFrame, clock.Count)
			m := machine.New(cpu, peripheral, machine.NewBreakpointSet())
			m.Context.Mode = machine.ModeNormal

			for i := 0; i < frames; i++ {
				reason := m.ExecuteMachineLoop()
				if reason != machine.Normal {
					fmt.Printf("frame %d: stopped early: %s\n", i, reason)
					break
				}
			}

			fmt.Printf("PC=%#04x SP=%#04x AF=%#04x BC=%#04x DE=%#04x HL=%#04x tacts=%d\n",
				cpu.PC, cpu.SP, cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL(), clock.Count())
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "raw memory image loaded at address 0")
	cmd.Flags().IntVar(&frames, "frames", 1, "number of frames to run")
	cmd.Flags().Uint64Var(&tactsPerFrame, "tacts-per-frame", 69888, "T-states per frame (48K Spectrum default)")
	cmd.MarkFlagRequired("image")
	return cmd
}
