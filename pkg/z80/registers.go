// Package z80 implements a cycle-accurate Zilog Z80 CPU core: the register
// file, flag tables, tact clock, bus contract, and the four opcode dispatch
// tables (base, ED, CB, and the indexed DD/FD tables with their CB
// sub-tables).
package z80

// Registers holds the full Z80 register file: the main and alternate
// 8/16-bit banks, the index registers, PC/SP, the interrupt-related
// latches, and WZ (MEMPTR).
//
// 16-bit views are little-endian composites of their 8-bit halves,
// implemented as computed accessors rather than a union so the layout
// stays portable across host byte orders.
type Registers struct {
	A, F, B, C, D, E, H, L uint8

	A_, F_, B_, C_, D_, E_, H_, L_ uint8

	IX, IY uint16
	PC, SP uint16

	I, R uint8

	IFF1, IFF2 bool
	IM         uint8 // 0, 1, or 2

	WZ uint16 // MEMPTR

	// f53Updated records whether the previous instruction explicitly
	// recomputed R5/R3 from a result byte, per the SCF/CCF undocumented
	// behavior in spec.md §3: SCF/CCF OR their R5/R3 into the existing
	// bits when the prior instruction updated F53, and replace them
	// otherwise.
	f53Updated bool
}

// AF returns the 16-bit accumulator+flags pair.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

// SetAF writes both halves of AF.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v)
}

// BC returns the 16-bit BC pair.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC writes both halves of BC.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the 16-bit DE pair.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE writes both halves of DE.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the 16-bit HL pair.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL writes both halves of HL.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// IXH, IXL, IYH, IYL expose the undocumented byte-halves of the index
// registers, used by the DD/FD-prefixed 8-bit opcodes (LD IXH,n and kin).
func (r *Registers) IXH() uint8 { return uint8(r.IX >> 8) }
func (r *Registers) IXL() uint8 { return uint8(r.IX) }
func (r *Registers) IYH() uint8 { return uint8(r.IY >> 8) }
func (r *Registers) IYL() uint8 { return uint8(r.IY) }

func (r *Registers) SetIXH(v uint8) { r.IX = uint16(v)<<8 | (r.IX & 0x00FF) }
func (r *Registers) SetIXL(v uint8) { r.IX = (r.IX & 0xFF00) | uint16(v) }
func (r *Registers) SetIYH(v uint8) { r.IY = uint16(v)<<8 | (r.IY & 0x00FF) }
func (r *Registers) SetIYL(v uint8) { r.IY = (r.IY & 0xFF00) | uint16(v) }

// ExchangeAF implements EX AF,AF'.
func (r *Registers) ExchangeAF() {
	r.A, r.A_ = r.A_, r.A
	r.F, r.F_ = r.F_, r.F
}

// ExchangeBank implements EXX: swaps BC/DE/HL with their alternates.
func (r *Registers) ExchangeBank() {
	r.B, r.B_ = r.B_, r.B
	r.C, r.C_ = r.C_, r.C
	r.D, r.D_ = r.D_, r.D
	r.E, r.E_ = r.E_, r.E
	r.H, r.H_ = r.H_, r.H
	r.L, r.L_ = r.L_, r.L
}

// IncR advances R's low 7 bits by delta, wrapping within those 7 bits and
// preserving the sticky bit 7 (spec.md §3 invariant (ii)).
func (r *Registers) IncR(delta uint8) {
	r.R = (r.R & 0x80) | ((r.R + delta) & 0x7F)
}
