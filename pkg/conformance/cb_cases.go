package conformance

import (
	"fmt"

	"github.com/z80core/spectrum/pkg/z80"
)

// RepresentativeOperands is a bounded sample of edge-case byte values
// (all zero/one bits, single bits set at the boundaries, alternating
// patterns) used where a full 0..255 sweep would multiply out to an
// unreasonable case count once crossed with every opcode cell of a
// prefix table, but every cell still needs to be exercised at least
// once per spec.md §8's "every opcode in every prefix table" invariant.
func RepresentativeOperands() []uint8 {
	return []uint8{0x00, 0xFF, 0x01, 0x80, 0x7F, 0x55, 0xAA, 0x0F, 0xF0}
}

var rotateName = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

// cbOpcode combines a row (0-31, selecting the rotate/BIT/RES/SET group
// and, within it, the operation/bit number) with a target register
// field into the full second byte of a CB-prefixed opcode.
func cbOpcode(row, target uint8) uint8 { return row<<3 | target }

// CbCases sweeps the entire CB-prefixed table: all four row groups
// (rotate/shift, BIT, RES, SET) against all eight register-field
// targets, including (HL), against RepresentativeOperands.
func CbCases() []Case {
	var cases []Case

	for row := uint8(0); row < 8; row++ { // rotate/shift group
		row := row
		for target := uint8(0); target < 8; target++ {
			target := target
			for _, carry := range []uint8{0, z80.FlagC} {
				carry := carry
				for _, b := range RepresentativeOperands() {
					b := b
					name := fmt.Sprintf("%s %s operand=%#02x carry=%d", rotateName[row], regFieldName[target], b, carry)
					cases = append(cases, Case{
						Name: name,
						Run: func() (bool, string) {
							seed, mem := seedWithOperand(z80.Registers{F: carry}, target, b)
							result := Run(seed, mem, 0xCB, cbOpcode(row, target))
							wantVal, wantFlags := oracleRotate(row, b, carry)

							got := readOperand(result, target)
							if got != wantVal || result.Registers.F != wantFlags {
								return false, fmt.Sprintf("got value=%#02x F=%#08b, want value=%#02x F=%#08b", got, result.Registers.F, wantVal, wantFlags)
							}
							return true, ""
						},
					})
				}
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ { // BIT group
		bit := bit
		for target := uint8(0); target < 8; target++ {
			target := target
			for _, carry := range []uint8{0, z80.FlagC} {
				carry := carry
				for _, b := range RepresentativeOperands() {
					b := b
					name := fmt.Sprintf("BIT %d,%s operand=%#02x", bit, regFieldName[target], b)
					cases = append(cases, Case{
						Name: name,
						Run: func() (bool, string) {
							seed, mem := seedWithOperand(z80.Registers{F: carry}, target, b)
							result := Run(seed, mem, 0xCB, cbOpcode(8+bit, target))
							// Register forms take bits 5/3 from the tested
							// byte; the (HL) form takes them from WZ's high
							// byte, which the seed leaves at zero.
							r53 := b
							if target == 6 {
								r53 = uint8(seed.WZ >> 8)
							}
							wantFlags := oracleBit(b, bit, r53, carry)
							if result.Registers.F != wantFlags {
								return false, fmt.Sprintf("got F=%#08b, want F=%#08b", result.Registers.F, wantFlags)
							}
							return true, ""
						},
					})
				}
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ { // RES group: no flags, just the cleared bit
		bit := bit
		for target := uint8(0); target < 8; target++ {
			target := target
			for _, b := range RepresentativeOperands() {
				b := b
				name := fmt.Sprintf("RES %d,%s operand=%#02x", bit, regFieldName[target], b)
				cases = append(cases, Case{
					Name: name,
					Run: func() (bool, string) {
						seed, mem := seedWithOperand(z80.Registers{}, target, b)
						result := Run(seed, mem, 0xCB, cbOpcode(16+bit, target))
						want := b &^ (1 << bit)
						got := readOperand(result, target)
						if got != want {
							return false, fmt.Sprintf("got value=%#02x, want %#02x", got, want)
						}
						return true, ""
					},
				})
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ { // SET group: no flags, just the set bit
		bit := bit
		for target := uint8(0); target < 8; target++ {
			target := target
			for _, b := range RepresentativeOperands() {
				b := b
				name := fmt.Sprintf("SET %d,%s operand=%#02x", bit, regFieldName[target], b)
				cases = append(cases, Case{
					Name: name,
					Run: func() (bool, string) {
						seed, mem := seedWithOperand(z80.Registers{}, target, b)
						result := Run(seed, mem, 0xCB, cbOpcode(24+bit, target))
						want := b | (1 << bit)
						got := readOperand(result, target)
						if got != want {
							return false, fmt.Sprintf("got value=%#02x, want %#02x", got, want)
						}
						return true, ""
					},
				})
			}
		}
	}

	return cases
}

// readOperand reads back whatever register or (HL) memory cell target
// names after a run, mirroring seedWithOperand for the write side.
func readOperand(result RunResult, target uint8) uint8 {
	if target == 6 {
		return result.Mem[operandMemAddr]
	}
	v, _ := extractOperand(result.Registers, target)
	return v
}

// EdCases sweeps NEG and the block I/O group's documented flag quirk.
func EdCases() []Case {
	var cases []Case

	for _, a := range RepresentativeOperands() {
		a := a
		name := fmt.Sprintf("NEG A=%#02x", a)
		cases = append(cases, Case{
			Name: name,
			Run: func() (bool, string) {
				seed := z80.Registers{A: a}
				got := Run(seed, nil, 0xED, 0x44).Registers
				wantA, wantF := oracleNeg(a)
				if got.A != wantA || got.F != wantF {
					return false, fmt.Sprintf("got A=%#02x F=%#08b, want A=%#02x F=%#08b", got.A, got.F, wantA, wantF)
				}
				return true, ""
			},
		})
	}

	ioOps := []struct {
		opcode    uint8
		name      string
		decrement bool
		isOut     bool
	}{
		{0xA2, "INI", false, false},
		{0xAA, "IND", true, false},
		{0xA3, "OUTI", false, true},
		{0xAB, "OUTD", true, true},
	}

	for _, op := range ioOps {
		op := op
		for _, val := range RepresentativeOperands() {
			val := val
			for _, bc := range []uint16{0x0001, 0x00FF, 0x1234, 0x8000} {
				bc := bc
				name := fmt.Sprintf("%s val=%#02x BC=%#04x", op.name, val, bc)
				cases = append(cases, Case{
					Name: name,
					Run: func() (bool, string) {
						seed := z80.Registers{}
						seed.SetBC(bc)
						seed.SetHL(operandMemAddr)

						var mem, ports map[uint16]uint8
						if op.isOut {
							mem = map[uint16]uint8{operandMemAddr: val}
						} else {
							ports = map[uint16]uint8{bc & 0xFF: val}
						}

						result := RunWithPorts(seed, mem, ports, 0xED, op.opcode)

						wantB, _ := oracleIncDec(uint8(bc>>8), true)
						wantHL := seed.HL() + 1
						if op.decrement {
							wantHL = seed.HL() - 1
						}

						var k uint16
						if op.isOut {
							k = uint16(val) + uint16(uint8(wantHL))
							if result.Ports[bc&0xFF] != val {
								return false, fmt.Sprintf("port %#04x got %#02x, want %#02x", bc, result.Ports[bc&0xFF], val)
							}
						} else {
							c := uint8(bc)
							if op.decrement {
								c--
							} else {
								c++
							}
							k = uint16(val) + uint16(c)
							if result.Mem[operandMemAddr] != val {
								return false, fmt.Sprintf("(HL) got %#02x, want %#02x", result.Mem[operandMemAddr], val)
							}
						}
						wantFlags := oracleBlockIO(wantB, val, k)

						if result.Registers.B != wantB || result.Registers.F != wantFlags || result.Registers.HL() != wantHL {
							return false, fmt.Sprintf("got B=%#02x HL=%#04x F=%#08b, want B=%#02x HL=%#04x F=%#08b",
								result.Registers.B, result.Registers.HL(), result.Registers.F, wantB, wantHL, wantFlags)
						}
						return true, ""
					},
				})
			}
		}
	}

	return cases
}
