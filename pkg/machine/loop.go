// Package machine implements the thin shell that drives a z80.CPU
// through frames, breakpoints, and user-defined termination points —
// the "machine loop" surrounding the CPU core, adapted from the
// worker-pool/result-table idioms of this codebase's search tooling
// to a strictly single-threaded execution loop with a lock-guarded
// snapshot surface for concurrent readers.
package machine

import (
	"sync/atomic"

	"github.com/z80core/spectrum/pkg/z80"
)

// TerminationReason reports why ExecuteMachineLoop returned.
type TerminationReason uint8

const (
	Normal TerminationReason = iota
	UntilHalt
	UntilExecutionPoint
	Breakpoint
	Cancelled
)

func (r TerminationReason) String() string {
	switch r {
	case Normal:
		return "Normal"
	case UntilHalt:
		return "UntilHalt"
	case UntilExecutionPoint:
		return "UntilExecutionPoint"
	case Breakpoint:
		return "Breakpoint"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Mode selects how ExecuteMachineLoop decides when to stop.
type Mode uint8

const (
	ModeNormal Mode = iota // run exactly one frame
	ModeUntilHalt
	ModeUntilExecutionPoint
)

// ExecutionContext is the loop-scoped configuration §3 of the design
// calls out: the termination mode, an optional termination address,
// and the last reason the loop returned.
type ExecutionContext struct {
	Mode            Mode
	TerminationAddr uint16
	LastReason      TerminationReason
}

// Peripheral is the machine shell's view of everything outside the
// CPU: it decides whether INT is currently asserted, and it gets a
// callback at the start of each frame and after every instruction so
// it can drive video/audio/tape/keyboard state in lockstep.
type Peripheral interface {
	ShouldRaiseInterrupt() bool
	OnFrameStart()
	OnInstructionExecuted()
	// FrameComplete reports whether the current frame's tact budget has
	// been reached, and clears its own latch when told to by the loop.
	FrameComplete() bool
	ClearFrameComplete()
}

// Machine wraps a CPU with the frame/breakpoint/cancellation loop of
// SPEC_FULL.md §6.7. It owns no concurrency itself: ExecuteMachineLoop
// must be called from a single goroutine; concurrent readers use
// Snapshot (see snapshot.go).
type Machine struct {
	CPU        *z80.CPU
	Peripheral Peripheral

	Breakpoints *BreakpointSet

	Context ExecutionContext

	// startupBreakpoint is the one-shot "don't stop here on first entry"
	// guard described in SPEC_FULL.md §6.7: it lets a caller step past a
	// breakpoint sitting on the current PC.
	startupBreakpoint    uint16
	hasStartupBreakpoint bool

	// ClockMultiplier is only ever adopted at a frame boundary to keep
	// timing coherent (SPEC_FULL.md §6.7 step 4a); pendingMultiplier
	// records a change requested mid-frame.
	ClockMultiplier   int
	pendingMultiplier int
	hasPending        bool

	cancel atomic.Bool
}

// New creates a Machine driving cpu, with peripheral supplying the
// interrupt/frame hooks and bp the breakpoint set (may be empty or nil;
// a nil set never stops the loop).
func New(cpu *z80.CPU, peripheral Peripheral, bp *BreakpointSet) *Machine {
	return &Machine{
		CPU:             cpu,
		Peripheral:      peripheral,
		Breakpoints:     bp,
		ClockMultiplier: 1,
	}
}

// Configure is an idempotent (re)initialization hook, called after
// peripheral configuration changes (e.g. loading a new ROM set). It
// does not touch CPU register state.
func (m *Machine) Configure() {
	m.Context.LastReason = Normal
	m.hasStartupBreakpoint = false
	m.cancel.Store(false)
}

// HardReset delegates to the CPU's hard reset.
func (m *Machine) HardReset() { m.CPU.HardReset() }

// Reset delegates to the CPU's soft reset.
func (m *Machine) Reset() { m.CPU.Reset() }

// SetClockMultiplier requests a clock-multiplier change; it is adopted
// at the next frame boundary rather than immediately, per SPEC_FULL.md
// §9.
func (m *Machine) SetClockMultiplier(n int) {
	if n < 1 {
		n = 1
	}
	m.pendingMultiplier = n
	m.hasPending = true
}

// Cancel requests cooperative cancellation of an in-progress
// ExecuteMachineLoop call. It is observed between instructions; any
// instruction already in flight runs to completion.
func (m *Machine) Cancel() { m.cancel.Store(true) }

// ExecuteMachineLoop runs the algorithm of SPEC_FULL.md §6.7: it checks
// the breakpoint set once up front (honoring the startup-breakpoint
// guard), then repeatedly executes one full instruction, running frame
// bookkeeping, interrupt assertion, and termination checks around it,
// until a termination condition is met.
func (m *Machine) ExecuteMachineLoop() TerminationReason {
	m.Context.LastReason = Normal

	if !m.hasStartupBreakpoint || m.CPU.PC != m.startupBreakpoint {
		if m.Breakpoints.Check(m.CPU.PC) {
			m.startupBreakpoint = m.CPU.PC
			m.hasStartupBreakpoint = true
			m.Context.LastReason = Breakpoint
			return Breakpoint
		}
	}
	m.hasStartupBreakpoint = false

	for {
		if m.cancel.Load() {
			m.cancel.Store(false)
			m.Context.LastReason = Cancelled
			return Cancelled
		}

		if m.Peripheral.FrameComplete() {
			if m.hasPending {
				m.ClockMultiplier = m.pendingMultiplier
				m.hasPending = false
			}
			m.Peripheral.OnFrameStart()
			m.Peripheral.ClearFrameComplete()
		}

		m.CPU.INT = m.Peripheral.ShouldRaiseInterrupt()
		if m.CPU.NMI {
			m.CPU.AcceptNMI()
		} else if m.CPU.INT {
			m.CPU.AcceptINT(0xFF) // RST 38h vector; IM 1 ignores dataBus anyway
		}

		m.CPU.ExecuteInstruction()
		m.Peripheral.OnInstructionExecuted()

		if m.Context.Mode == ModeUntilExecutionPoint && m.CPU.PC == m.Context.TerminationAddr {
			m.Context.LastReason = UntilExecutionPoint
			return UntilExecutionPoint
		}

		if m.Breakpoints.Check(m.CPU.PC) {
			m.startupBreakpoint = m.CPU.PC
			m.hasStartupBreakpoint = true
			m.Context.LastReason = Breakpoint
			return Breakpoint
		}

		if m.Context.Mode == ModeUntilHalt && m.CPU.Halted {
			m.Context.LastReason = UntilHalt
			return UntilHalt
		}

		if m.Peripheral.FrameComplete() {
			m.Context.LastReason = Normal
			return Normal
		}
	}
}

// LastStartupBreakpoint returns the current one-shot startup breakpoint
// address, if any.
func (m *Machine) LastStartupBreakpoint() (addr uint16, ok bool) {
	return m.startupBreakpoint, m.hasStartupBreakpoint
}
