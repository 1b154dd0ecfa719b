package z80

// TactClock is the CPU's sole tact (T-state) counter. It is the only
// component that ever advances the tact count; every increment — however
// many T-states it represents — is equivalent to that many single steps,
// firing OnTact exactly once per step, in order, before the next step
// begins. That hook is the sole mechanism external hardware (memory
// contention, the video beam, sound sampling) uses to stay in phase with
// the CPU (spec.md §4.3).
type TactClock struct {
	count  uint64
	OnTact func()
}

// NewTactClock creates a clock with the given hook. The hook must not be
// nil for the lifetime of the CPU; the core never registers one itself,
// the host does at construction (spec.md §9 Design Notes).
func NewTactClock(onTact func()) *TactClock {
	if onTact == nil {
		onTact = func() {}
	}
	return &TactClock{OnTact: onTact}
}

// Count returns the current tact count.
func (c *TactClock) Count() uint64 { return c.count }

// Add advances the clock by n T-states, invoking OnTact once per step.
func (c *TactClock) Add(n int) {
	for i := 0; i < n; i++ {
		c.count++
		c.OnTact()
	}
}

// Add1 through Add7 are named shorthands for the bulk increments spec.md
// §4.3 calls out explicitly (opcode fetch is 4, memory/port ops are 3-4,
// ADD HL,rr's internal cycles are 7, and so on).
func (c *TactClock) Add1() { c.Add(1) }
func (c *TactClock) Add2() { c.Add(2) }
func (c *TactClock) Add3() { c.Add(3) }
func (c *TactClock) Add4() { c.Add(4) }
func (c *TactClock) Add5() { c.Add(5) }
func (c *TactClock) Add7() { c.Add(7) }
