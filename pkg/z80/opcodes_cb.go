package z80

// cbTarget names where a CB-prefixed operation reads and writes its
// operand. The low 3 bits of a CB opcode select exactly these eight
// slots in this order, so the enum values double as that field's
// decode (spec.md §4.5's bit-field decode over 256 literal arms).
type cbTarget uint8

const (
	cbTargetB cbTarget = iota
	cbTargetC
	cbTargetD
	cbTargetE
	cbTargetH
	cbTargetL
	cbTargetHL // (HL), address taken from HL
	cbTargetA
	cbTargetMem // (IX+d)/(IY+d), address passed in explicitly
)

// cbReadWrite returns get/set closures for the operand the low 3 bits
// of a CB opcode name. addr is only consulted for cbTargetMem, the
// DD CB/FD CB sub-table's indexed form.
func (c *CPU) cbReadWrite(target cbTarget, addr uint16) (get func() uint8, set func(uint8)) {
	switch target {
	case cbTargetB:
		return func() uint8 { return c.B }, func(v uint8) { c.B = v }
	case cbTargetC:
		return func() uint8 { return c.C }, func(v uint8) { c.C = v }
	case cbTargetD:
		return func() uint8 { return c.D }, func(v uint8) { c.D = v }
	case cbTargetE:
		return func() uint8 { return c.E }, func(v uint8) { c.E = v }
	case cbTargetH:
		return func() uint8 { return c.H }, func(v uint8) { c.H = v }
	case cbTargetL:
		return func() uint8 { return c.L }, func(v uint8) { c.L = v }
	case cbTargetA:
		return func() uint8 { return c.A }, func(v uint8) { c.A = v }
	case cbTargetHL:
		// The indirect (HL) read carries one extra internal cycle over
		// a plain memory read, same as the base table's INC (HL)/DEC
		// (HL) handlers charge separately around their own read.
		return func() uint8 { v := c.readMem(c.HL()); c.Clock.Add1(); return v },
			func(v uint8) { c.writeMem(c.HL(), v) }
	default: // cbTargetMem
		return func() uint8 { v := c.readMem(addr); c.Clock.Add1(); return v },
			func(v uint8) { c.writeMem(addr, v) }
	}
}

// execCB executes one CB-prefixed opcode against the given operand.
// target selects the storage slot the low 3 bits of op name; addr is
// only meaningful when target is cbTargetMem. The register field's own
// bits (op&7) still choose which get/set pair to use in the plain CB
// case, since that IS the operand selector; for the indexed sub-table
// the caller resolves target/addr itself and passes op unchanged so
// the undocumented copy-back (spec.md §7) can inspect op&7.
func (c *CPU) execCB(op uint8, target cbTarget, addr uint16) {
	reg := op & 0x07
	row := op >> 3

	var t cbTarget
	if target == cbTargetMem {
		t = cbTargetMem
	} else {
		t = cbTarget(reg)
	}
	get, set := c.cbReadWrite(t, addr)

	switch {
	case row < 8: // rotate/shift group, row selects the operation
		v := get()
		var result uint8
		switch row {
		case 0:
			result = c.execRlc(v)
		case 1:
			result = c.execRrc(v)
		case 2:
			result = c.execRl(v)
		case 3:
			result = c.execRr(v)
		case 4:
			result = c.execSla(v)
		case 5:
			result = c.execSra(v)
		case 6:
			result = c.execSll(v)
		case 7:
			result = c.execSrl(v)
		}
		set(result)

	case row < 16: // BIT b,(operand); row-8 is the bit number
		bit := row - 8
		v := get()
		r53 := v
		if t == cbTargetMem || t == cbTargetHL {
			// (HL) and indexed forms take bits 3/5 from the high byte of
			// WZ/MEMPTR rather than the tested value (spec.md §1).
			r53 = uint8(c.WZ >> 8)
		}
		c.execBit(v, bit, r53)
		// BIT never writes its operand back, even for (HL)/(IX+d).

	case row < 24: // RES b,(operand); row-16 is the bit number
		bit := row - 16
		v := get() &^ (1 << bit)
		set(v)

	default: // SET b,(operand); row-24 is the bit number
		bit := row - 24
		v := get() | (1 << bit)
		set(v)
	}
}

// execIndexedCB executes one DD CB/FD CB opcode: op is the final
// opcode byte, d the signed displacement already read, useIY selects
// IX vs IY. The address is always (index+d); when the low 3 bits of op
// don't name (HL) (i.e. reg != 6), the Z80 additionally copies the
// result into that register — an undocumented side effect of every
// DDCB/FDCB rotate/shift/RES/SET (BIT excluded, it never writes back)
// that only exists because the internal read/modify/write cycle always
// targets the same latch regardless of which register the opcode names
// (spec.md §7).
func (c *CPU) execIndexedCB(op uint8, d int8, useIY bool) {
	base := c.indexBase(useIY)
	addr := uint16(int32(base) + int32(d))
	c.WZ = addr

	reg := op & 0x07
	row := op >> 3

	if row >= 8 && row < 16 { // BIT: no copy-back, operand always (addr)
		bit := row - 8
		v := c.readMem(addr)
		c.Clock.Add1()
		c.execBit(v, bit, uint8(c.WZ>>8))
		return
	}

	c.execCB(op, cbTargetMem, addr)

	if reg != 6 {
		// c.execCB already wrote the result to (addr) via the memory
		// target; re-read it and mirror into the named register too.
		v := c.readMemNoTact(addr)
		get, set := c.cbReadWrite(cbTarget(reg), 0)
		_ = get
		set(v)
	}
}

// readMemNoTact reads a byte without charging clock cycles, used only
// to fetch back a value execCB already timed correctly so the
// undocumented register copy-back in execIndexedCB doesn't double-bill
// T-states for the same memory cell.
func (c *CPU) readMemNoTact(addr uint16) uint8 {
	return c.Bus.ReadMem(addr)
}
