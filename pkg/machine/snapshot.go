package machine

import (
	"sync"

	"github.com/z80core/spectrum/pkg/z80"
)

// Snapshot is an immutable copy of CPU-visible state, safe to read
// from any goroutine. SPEC_FULL.md §9 forbids reading live CPU state
// concurrently with the running loop; Snapshotter is the sanctioned
// escape hatch, copying under a reader-writer mutex the caller owns.
type Snapshot struct {
	Registers z80.Registers
	Tacts     uint64
	Halted    bool
}

// Snapshotter guards a Machine with a mutex so Snapshot() can safely
// run on a different goroutine than ExecuteMachineLoop, at the cost of
// the caller taking the same lock around every loop iteration (or
// batch of iterations) it drives.
type Snapshotter struct {
	mu sync.RWMutex
	m  *Machine
}

// NewSnapshotter wraps m.
func NewSnapshotter(m *Machine) *Snapshotter {
	return &Snapshotter{m: m}
}

// RunLocked executes fn with the write lock held, for use around calls
// to ExecuteMachineLoop or any register mutation.
func (s *Snapshotter) RunLocked(fn func(m *Machine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m)
}

// Snapshot copies the CPU's externally visible state under the read
// lock. It never observes a partially updated register file, since
// RunLocked always holds the exclusive lock while the loop runs.
func (s *Snapshotter) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Registers: s.m.CPU.Registers,
		Tacts:     s.m.CPU.Clock.Count(),
		Halted:    s.m.CPU.Halted,
	}
}
