package conformance

import (
	"fmt"

	"github.com/z80core/spectrum/pkg/z80"
)

// IndexedTimingCases spot-checks representative DD/FD and DDCB/FDCB
// opcodes against their documented T-state totals, and the DDCB/FDCB
// rotate/shift/RES/SET forms' undocumented register copy-back, across
// both IX and IY. This is the table the two off-by-one-cycle timing
// bugs and any future regression in it would otherwise slip through
// unnoticed, since the base-table and CB-table sweeps above never
// touch a prefix byte.
func IndexedTimingCases() []Case {
	var cases []Case

	for _, iy := range []bool{false, true} {
		iy := iy
		prefix := uint8(0xDD)
		label := "IX"
		if iy {
			prefix = 0xFD
			label = "IY"
		}

		cases = append(cases, tactCase(fmt.Sprintf("LD %s,nn", label),
			z80.Registers{}, nil, 14, prefix, 0x21, 0x34, 0x12))

		cases = append(cases, tactCase(fmt.Sprintf("INC %s", label),
			z80.Registers{}, nil, 10, prefix, 0x23))

		cases = append(cases, tactCase(fmt.Sprintf("LD %sH,n", label),
			z80.Registers{}, nil, 11, prefix, 0x26, 0x99))

		for _, d := range []int8{0, 5, -5, 127, -128} {
			d := d
			addr := uint16(int32(0x8000) + int32(d))

			cases = append(cases, Case{
				Name: fmt.Sprintf("BIT 3,(%s%+d) tacts", label, d),
				Run: func() (bool, string) {
					seed := indexSeed(iy, 0x8000)
					result := Run(seed, map[uint16]uint8{addr: 0xFF}, prefix, 0xCB, uint8(d), 0x5E)
					if result.Tacts != 20 {
						return false, fmt.Sprintf("got %d tacts, want 20", result.Tacts)
					}
					return true, ""
				},
			})

			cases = append(cases, Case{
				Name: fmt.Sprintf("RLC (%s%+d),B tacts+copyback", label, d),
				Run: func() (bool, string) {
					seed := indexSeed(iy, 0x8000)
					result := Run(seed, map[uint16]uint8{addr: 0x80}, prefix, 0xCB, uint8(d), 0x00)
					if result.Tacts != 23 {
						return false, fmt.Sprintf("got %d tacts, want 23", result.Tacts)
					}
					wantVal, _ := oracleRotate(0, 0x80, 0)
					if result.Mem[addr] != wantVal {
						return false, fmt.Sprintf("(addr) got %#02x, want %#02x", result.Mem[addr], wantVal)
					}
					if result.Registers.B != wantVal {
						return false, fmt.Sprintf("copy-back to B got %#02x, want %#02x", result.Registers.B, wantVal)
					}
					return true, ""
				},
			})

			cases = append(cases, Case{
				Name: fmt.Sprintf("SET 5,(%s%+d) tacts, no copyback", label, d),
				Run: func() (bool, string) {
					seed := indexSeed(iy, 0x8000)
					result := Run(seed, map[uint16]uint8{addr: 0x00}, prefix, 0xCB, uint8(d), 0xEE)
					if result.Tacts != 23 {
						return false, fmt.Sprintf("got %d tacts, want 23", result.Tacts)
					}
					if result.Mem[addr] != 0x20 {
						return false, fmt.Sprintf("(addr) got %#02x, want 0x20", result.Mem[addr])
					}
					return true, ""
				},
			})
		}
	}

	return cases
}

// tactCase builds a case that only asserts the instruction's total
// T-state count, for opcodes whose flag/register effects are already
// covered by the base-table dispatch (execIndexed falls through to
// execBase for anything that isn't index-specific).
func tactCase(name string, seed z80.Registers, mem map[uint16]uint8, wantTacts uint64, opcode ...uint8) Case {
	return Case{
		Name: name,
		Run: func() (bool, string) {
			result := Run(seed, mem, opcode...)
			if result.Tacts != wantTacts {
				return false, fmt.Sprintf("got %d tacts, want %d", result.Tacts, wantTacts)
			}
			return true, ""
		},
	}
}

// indexSeed returns a register state with IX or IY set to base.
func indexSeed(useIY bool, base uint16) z80.Registers {
	if useIY {
		return z80.Registers{IY: base}
	}
	return z80.Registers{IX: base}
}
