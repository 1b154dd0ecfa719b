package z80

// AcceptNMI services a pending non-maskable interrupt: it always fires
// regardless of IFF1, clears IFF1 (but leaves IFF2, which is why RETN
// restores IFF1 from IFF2), releases HALT, and pushes PC before
// jumping to 0x0066. Costs 11 T-states, per spec.md §4.6.
func (c *CPU) AcceptNMI() {
	c.Halted = false
	c.IFF1 = false
	c.IncR(1)
	c.Clock.Add5()
	c.push(c.PC)
	c.PC = 0x0066
	c.WZ = c.PC
	c.NMI = false
}

// AcceptINT services a pending maskable interrupt if IFF1 is set and no
// EI delay is in effect. It releases HALT, disables further interrupts
// until the handler re-enables them, and dispatches per IM. Returns
// false if the interrupt could not be accepted this instruction.
func (c *CPU) AcceptINT(dataBus uint8) bool {
	if !c.IFF1 || c.pendingEI > 0 {
		return false
	}

	c.Halted = false
	c.IFF1, c.IFF2 = false, false
	c.IncR(1)

	switch c.IM {
	case 0:
		// The data bus normally carries a full instruction for IM 0; the
		// core supports the common case of a single-byte RST opcode,
		// which is what every real ZX Spectrum interrupt source drives.
		c.Clock.Add2()
		c.push(c.PC)
		c.PC = uint16(dataBus & 0x38)
		c.WZ = c.PC
	case 1:
		c.Clock.Add7()
		c.push(c.PC)
		c.PC = 0x0038
		c.WZ = c.PC
	case 2:
		c.Clock.Add7()
		vector := uint16(c.I)<<8 | uint16(dataBus)
		addr := c.readMemWord(vector)
		c.push(c.PC)
		c.PC = addr
		c.WZ = c.PC
	}

	c.NMI = false
	c.INT = false
	return true
}
