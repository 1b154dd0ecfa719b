package z80

// execIndexed executes one DD- or FD-prefixed opcode. Only the opcodes
// that actually reference HL, H, or L are redirected to IX/IY (with
// IXH/IXL/IYH/IYL substituted for H/L in the register-field positions,
// the undocumented half-register access spec.md §7 calls out); every
// other opcode behaves exactly as its un-prefixed form, at the cost of
// the wasted prefix fetch. Rather than duplicate execBase's ~150 other
// cells, the ones that don't touch HL/H/L fall through to it directly.
func (c *CPU) execIndexed(op uint8, useIY bool) {
	switch {
	case op >= 0x40 && op <= 0x7F && op != 0x76:
		c.execIndexedLdRR(op, useIY)
		return
	case op >= 0x80 && op <= 0xBF:
		c.execIndexedAluR(op, useIY)
		return
	}

	switch op {
	case 0x21: // LD IX/IY,nn
		c.setIndexBase(useIY, c.fetchWord())
	case 0x22: // LD (nn),IX/IY
		addr := c.fetchWord()
		c.writeMemWord(addr, c.indexBase(useIY))
		c.WZ = addr + 1
	case 0x2A: // LD IX/IY,(nn)
		addr := c.fetchWord()
		c.setIndexBase(useIY, c.readMemWord(addr))
		c.WZ = addr + 1
	case 0x23: // INC IX/IY
		c.setIndexBase(useIY, c.indexBase(useIY)+1)
		c.Clock.Add2()
	case 0x2B: // DEC IX/IY
		c.setIndexBase(useIY, c.indexBase(useIY)-1)
		c.Clock.Add2()
	case 0x09, 0x19, 0x29, 0x39: // ADD IX/IY,rr (rr substitutes IX/IY for HL)
		var rhs uint16
		switch op {
		case 0x09:
			rhs = c.BC()
		case 0x19:
			rhs = c.DE()
		case 0x29:
			rhs = c.indexBase(useIY)
		default:
			rhs = c.SP
		}
		c.setIndexBase(useIY, c.execAddHL(c.indexBase(useIY), rhs))
		c.Clock.Add7()
	case 0x24: // INC IXH/IYH
		get, set := c.indexHighRef(useIY)
		v := get()
		c.execInc(&v)
		set(v)
	case 0x25: // DEC IXH/IYH
		get, set := c.indexHighRef(useIY)
		v := get()
		c.execDec(&v)
		set(v)
	case 0x26: // LD IXH/IYH,n
		_, set := c.indexHighRef(useIY)
		set(c.fetchByte())
	case 0x2C: // INC IXL/IYL
		get, set := c.indexLowRef(useIY)
		v := get()
		c.execInc(&v)
		set(v)
	case 0x2D: // DEC IXL/IYL
		get, set := c.indexLowRef(useIY)
		v := get()
		c.execDec(&v)
		set(v)
	case 0x2E: // LD IXL/IYL,n
		_, set := c.indexLowRef(useIY)
		set(c.fetchByte())
	case 0x34: // INC (IX/IY+d)
		d := int8(c.fetchByte())
		addr := c.indexAddr(useIY, d)
		c.Clock.Add5()
		v := c.readMem(addr)
		c.execInc(&v)
		c.Clock.Add1()
		c.writeMem(addr, v)
	case 0x35: // DEC (IX/IY+d)
		d := int8(c.fetchByte())
		addr := c.indexAddr(useIY, d)
		c.Clock.Add5()
		v := c.readMem(addr)
		c.execDec(&v)
		c.Clock.Add1()
		c.writeMem(addr, v)
	case 0x36: // LD (IX/IY+d),n
		d := int8(c.fetchByte())
		n := c.fetchByte()
		addr := c.indexAddr(useIY, d)
		c.Clock.Add2()
		c.writeMem(addr, n)
	case 0xE1: // POP IX/IY
		c.setIndexBase(useIY, c.pop())
	case 0xE5: // PUSH IX/IY
		c.Clock.Add1()
		c.push(c.indexBase(useIY))
	case 0xE3: // EX (SP),IX/IY
		v := c.readMemWord(c.SP)
		c.Clock.Add1()
		c.writeMemWord(c.SP, c.indexBase(useIY))
		c.Clock.Add2()
		c.setIndexBase(useIY, v)
		c.WZ = v
	case 0xE9: // JP (IX/IY)
		c.PC = c.indexBase(useIY)
	case 0xF9: // LD SP,IX/IY
		c.SP = c.indexBase(useIY)
		c.Clock.Add2()
	default:
		// No HL/H/L involvement; behaves as the un-prefixed opcode.
		c.execBase(op)
	}
}

// indexHighRef and indexLowRef expose IXH/IXL or IYH/IYL as a get/set
// pair, since they're packed inside the 16-bit IX/IY fields rather than
// backed by their own byte, unlike B/C/D/E/H/L/A.
func (c *CPU) indexHighRef(useIY bool) (get func() uint8, set func(uint8)) {
	if useIY {
		return c.IYH, c.SetIYH
	}
	return c.IXH, c.SetIXH
}

func (c *CPU) indexLowRef(useIY bool) (get func() uint8, set func(uint8)) {
	if useIY {
		return c.IYL, c.SetIYL
	}
	return c.IXL, c.SetIXL
}

func (c *CPU) indexAddr(useIY bool, d int8) uint16 {
	addr := uint16(int32(c.indexBase(useIY)) + int32(d))
	c.WZ = addr
	return addr
}

// indexedRegGetSet resolves the register-field encoding the same way
// regRef does, except idx 4/5 (H/L) name IXH/IXL or IYH/IYL instead.
// idx 6 ((HL)) is never passed here — callers handle (IX+d)/(IY+d)
// directly since it needs the displacement byte consumed first.
func (c *CPU) indexedRegGetSet(idx uint8, useIY bool) (get func() uint8, set func(uint8)) {
	switch idx {
	case 4:
		return c.indexHighRef(useIY)
	case 5:
		return c.indexLowRef(useIY)
	default:
		ref := c.regRef(idx)
		return func() uint8 { return *ref }, func(v uint8) { *ref = v }
	}
}

func (c *CPU) execIndexedLdRR(op uint8, useIY bool) {
	dst := (op >> 3) & 0x07
	src := op & 0x07

	if src == 6 {
		d := int8(c.fetchByte())
		addr := c.indexAddr(useIY, d)
		c.Clock.Add5()
		v := c.readMem(addr)
		if dst == 6 {
			return
		}
		*c.regRef(dst) = v // (IX+d) source never lands in IXH/IXL, always the plain register
		return
	}
	get, _ := c.indexedRegGetSet(src, useIY)
	v := get()

	if dst == 6 {
		d := int8(c.fetchByte())
		addr := c.indexAddr(useIY, d)
		c.Clock.Add5()
		c.writeMem(addr, v)
		return
	}
	_, set := c.indexedRegGetSet(dst, useIY)
	set(v)
}

func (c *CPU) execIndexedAluR(op uint8, useIY bool) {
	aluOp := (op >> 3) & 0x07
	src := op & 0x07

	var v uint8
	if src == 6 {
		d := int8(c.fetchByte())
		addr := c.indexAddr(useIY, d)
		c.Clock.Add5()
		v = c.readMem(addr)
	} else {
		get, _ := c.indexedRegGetSet(src, useIY)
		v = get()
	}

	switch aluOp {
	case 0:
		c.execAdd(v)
	case 1:
		c.execAdc(v)
	case 2:
		c.execSub(v)
	case 3:
		c.execSbc(v)
	case 4:
		c.execAnd(v)
	case 5:
		c.execXor(v)
	case 6:
		c.execOr(v)
	case 7:
		c.execCp(v)
	}
}
