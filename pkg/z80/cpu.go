package z80

// Prefix names the opcode-prefix state the decoder is currently in. The
// decoder is a small state machine over this enumeration (spec.md §4.5).
type Prefix uint8

const (
	PrefixNone Prefix = iota
	PrefixED
	PrefixCB
	PrefixDD
	PrefixFD
	PrefixDDCB
	PrefixFDCB
)

// CPU is the Z80 aggregate: register file, tact clock, bus, and the
// signal/prefix state that drives dispatch. Strictly single-threaded and
// synchronous — see spec.md §5; concurrent readers must go through a
// snapshot copy taken under a lock owned by the caller (pkg/machine).
type CPU struct {
	Registers

	Clock *TactClock
	Bus   Bus

	Halted bool

	// Signal flags (spec.md §3).
	INT   bool
	NMI   bool
	RESET bool

	prefix Prefix

	// pendingEI counts down instructions after EI before INT is honored
	// again (the one-instruction interrupt delay documented in
	// SPEC_FULL.md §6.6). 0 means no delay in effect.
	pendingEI int
}

// New creates a CPU wired to the given bus and clock.
func New(bus Bus, clock *TactClock) *CPU {
	c := &CPU{Bus: bus, Clock: clock}
	c.HardReset()
	return c
}

// HardReset zeroes the register file, clears interrupt state, and sets
// PC=0, R=0, SP=0xFFFF, AF=0xFFFF, matching spec.md §6's HardReset.
func (c *CPU) HardReset() {
	c.Registers = Registers{}
	c.SetAF(0xFFFF)
	c.SP = 0xFFFF
	c.PC = 0
	c.R = 0
	c.IM = 0
	c.IFF1, c.IFF2 = false, false
	c.Halted = false
	c.INT, c.NMI, c.RESET = false, false, false
	c.prefix = PrefixNone
	c.pendingEI = 0
}

// Reset performs a soft reset: PC=0, interrupts disabled, IM=0. RAM (and
// the rest of the register file) is left untouched, matching spec.md §6.
func (c *CPU) Reset() {
	c.PC = 0
	c.IFF1, c.IFF2 = false, false
	c.IM = 0
	c.Halted = false
	c.prefix = PrefixNone
	c.pendingEI = 0
}

// ExecuteInstruction runs the two-level prefix loop of spec.md §4.5 to
// completion: it resets the prefix state to None, then repeatedly steps
// the decoder until a handler returns with prefix == None again. An
// instruction is "entirely executed" only when this returns.
//
// While Halted, a HALT-latched CPU executes NOPs (4 T-states each)
// without advancing PC until an interrupt releases it; that is handled
// by the machine loop's interrupt check before it calls this method, but
// ExecuteInstruction defends the invariant directly too: if still halted
// on entry, it burns one NOP-equivalent cycle and returns.
func (c *CPU) ExecuteInstruction() {
	if c.pendingEI > 0 {
		c.pendingEI--
	}

	if c.Halted {
		c.Clock.Add4()
		c.IncR(1)
		c.f53Updated = false
		return
	}

	// f53Updated describes the instruction that ran last. SCF (0x37) and
	// CCF (0x3F) read it, so it is left as it stands when the next opcode
	// byte is one of them; every other instruction starts from false and
	// sets it only if it recomputes R5/R3 itself, so a run of non-flag
	// instructions (LD r,r', JP/CALL/RET, PUSH/POP, NOP, EX, ...) leaves
	// it false rather than latching a stale true.
	if op := c.Bus.ReadMem(c.PC); op != 0x37 && op != 0x3F {
		c.f53Updated = false
	}

	c.prefix = PrefixNone
	for {
		if c.step() {
			return
		}
	}
}

// step decodes and, where the prefix is terminal, executes exactly one
// opcode cell. It returns true once the instruction is fully executed
// (prefix has returned to None), false if it just latched a new prefix
// and dispatch should continue immediately without an intervening
// breakpoint or interrupt check (spec.md §4.5).
func (c *CPU) step() bool {
	switch c.prefix {
	case PrefixNone:
		op := c.fetchOpcode()
		switch op {
		case 0xCB:
			c.prefix = PrefixCB
			return false
		case 0xED:
			c.prefix = PrefixED
			return false
		case 0xDD:
			c.prefix = PrefixDD
			return false
		case 0xFD:
			c.prefix = PrefixFD
			return false
		default:
			c.execBase(op)
			return true
		}

	case PrefixCB:
		op := c.fetchOpcode()
		c.execCB(op, cbTargetHL, 0)
		c.prefix = PrefixNone
		return true

	case PrefixED:
		op := c.fetchOpcode()
		c.execED(op)
		c.prefix = PrefixNone
		return true

	case PrefixDD, PrefixFD:
		useIY := c.prefix == PrefixFD
		op := c.fetchOpcode()
		if op == 0xCB {
			if useIY {
				c.prefix = PrefixFDCB
			} else {
				c.prefix = PrefixDDCB
			}
			return false
		}
		c.execIndexed(op, useIY)
		c.prefix = PrefixNone
		return true

	case PrefixDDCB, PrefixFDCB:
		useIY := c.prefix == PrefixFDCB
		d := int8(c.fetchByte())
		// The fourth byte's read carries two extra internal cycles on
		// real hardware (address calculation), so it costs 5T rather
		// than a plain 3T memory read.
		op := c.fetchByte()
		c.Clock.Add2()
		c.execIndexedCB(op, d, useIY)
		c.prefix = PrefixNone
		return true
	}
	return true
}

// indexBase returns IX or IY depending on useIY, for the DD/FD tables.
func (c *CPU) indexBase(useIY bool) uint16 {
	if useIY {
		return c.IY
	}
	return c.IX
}

func (c *CPU) setIndexBase(useIY bool, v uint16) {
	if useIY {
		c.IY = v
	} else {
		c.IX = v
	}
}

// cond evaluates one of the eight Z80 condition codes against F.
type condCode uint8

const (
	condNZ condCode = iota
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

func (c *CPU) testCond(cc condCode) bool {
	switch cc {
	case condNZ:
		return c.F&FlagZ == 0
	case condZ:
		return c.F&FlagZ != 0
	case condNC:
		return c.F&FlagC == 0
	case condC:
		return c.F&FlagC != 0
	case condPO:
		return c.F&FlagP == 0
	case condPE:
		return c.F&FlagP != 0
	case condP:
		return c.F&FlagS == 0
	case condM:
		return c.F&FlagS != 0
	}
	return false
}
