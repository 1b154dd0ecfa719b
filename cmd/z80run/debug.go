package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/z80core/spectrum/pkg/machine"
	"github.com/z80core/spectrum/pkg/z80"
)

// newDebugCmd starts an interactive single-step session against a
// loaded image: s steps one instruction, b sets a breakpoint at
// the current PC, c runs to the next breakpoint or halt, q quits.
// Raw mode is used so keys are read one at a time without waiting for
// Enter, the same pattern IntuitionEngine's terminal host uses for its
// own keyboard MMIO device.
func newDebugCmd() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Interactively single-step a loaded image from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(image)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			bus := newFlatBus(data)
			clock := z80.NewTactClock(nil)
			cpu := z80.New(bus, clock)
			bps := machine.NewBreakpointSet()
			peripheral := newFramePeripheral(^uint64(0), clock.Count) // effectively no frame boundary while stepping
			m := machine.New(cpu, peripheral, bps)
			m.Context.Mode = machine.ModeUntilHalt

			return runDebugREPL(m, bps)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "raw memory image loaded at address 0")
	cmd.MarkFlagRequired("image")
	return cmd
}

func runDebugREPL(m *machine.Machine, bps *machine.BreakpointSet) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("debug: failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	printState(m)
	fmt.Print("\r\n[s]tep [b]reakpoint [c]ontinue [q]uit\r\n")

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return err
		}

		switch buf[0] {
		case 'q', 'Q', 0x03: // Ctrl-C
			return nil
		case 's', 'S':
			m.CPU.ExecuteInstruction()
			printState(m)
		case 'b', 'B':
			bps.Set(m.CPU.PC)
			fmt.Printf("\r\nbreakpoint set at %#04x\r\n", m.CPU.PC)
		case 'c', 'C':
			reason := m.ExecuteMachineLoop()
			fmt.Printf("\r\nstopped: %s\r\n", reason)
			printState(m)
		}
	}
}

func printState(m *machine.Machine) {
	c := m.CPU
	fmt.Printf("\rPC=%#04x SP=%#04x AF=%#04x BC=%#04x DE=%#04x HL=%#04x IX=%#04x IY=%#04x tacts=%d halted=%v\r\n",
		c.PC, c.SP, c.AF(), c.BC(), c.DE(), c.HL(), c.IX, c.IY, m.CPU.Clock.Count(), c.Halted)
}
