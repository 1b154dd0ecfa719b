package conformance

import (
	"fmt"

	"github.com/z80core/spectrum/pkg/z80"
)

// Case is one conformance check: a name for reporting and a Run
// function that executes it against the real CPU and returns whether
// it matched the oracle.
type Case struct {
	Name string
	Run  func() (ok bool, detail string)
}

// aluOpcode combines a row ((op>>3)&7, selecting ADD/ADC/.../CP) with a
// src register field (op&7, selecting B,C,D,E,H,L,(HL),A) into the full
// ALU-A,r opcode byte.
func aluOpcode(row, src uint8) uint8 { return 0x80 | row<<3 | src }

// regFieldName is the standard Z80 register-field encoding order, used
// to label cases and to seed the right operand for every src value.
var regFieldName = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// operandMemAddr is where (HL)-form cases stash their operand byte;
// chosen away from 0x0000 so it never collides with the opcode bytes
// RunOpcode/Run place at PC=0.
const operandMemAddr = 0x8000

// seedWithOperand returns a seed with src's operand field set to b: a
// plain register for src 0-5 and 7, or (HL) pointed at operandMemAddr
// with the byte poked into memory for src==6.
func seedWithOperand(base z80.Registers, src, b uint8) (seed z80.Registers, mem map[uint16]uint8) {
	seed = base
	switch src {
	case 0:
		seed.B = b
	case 1:
		seed.C = b
	case 2:
		seed.D = b
	case 3:
		seed.E = b
	case 4:
		seed.H = b
	case 5:
		seed.L = b
	case 6:
		seed.SetHL(operandMemAddr)
		mem = map[uint16]uint8{operandMemAddr: b}
	case 7:
		seed.A = b
	}
	return seed, mem
}

// AluCases builds one case per (operation, source register, vector,
// operand-byte) quadruple, sweeping the entire ALU-A,r block (all eight
// operations against all eight register-field sources, including
// (HL)), against the independently computed oracle in oracle.go.
func AluCases() []Case {
	var cases []Case
	ops := []struct {
		row  uint8
		name string
	}{
		{0, "ADD"}, {1, "ADC"}, {2, "SUB"}, {3, "SBC"},
		{4, "AND"}, {5, "XOR"}, {6, "OR"}, {7, "CP"},
	}

	for _, op := range ops {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			for vi, vec := range Vectors {
				vec := vec
				vi := vi
				for _, b := range ByteOperands() {
					b := b
					name := fmt.Sprintf("%s A,%s vec=%d operand=%#02x", op.name, regFieldName[src], vi, b)
					cases = append(cases, Case{
						Name: name,
						Run: func() (bool, string) {
							seed, mem := seedWithOperand(vec, src, b)
							// src==7 names A itself: accumulator and
							// operand are the same register, so the
							// oracle's "a" input is b too, not vec.A.
							a := vec.A
							if src == 7 {
								a = b
							}
							got := Run(seed, mem, aluOpcode(op.row, src)).Registers
							wantA, wantF := aluOracle(op.row, a, b, vec.F)
							if got.A != wantA || got.F != wantF {
								return false, fmt.Sprintf("got A=%#02x F=%#08b, want A=%#02x F=%#08b", got.A, got.F, wantA, wantF)
							}
							return true, ""
						},
					})
				}
			}
		}
	}
	return cases
}

// aluOracle mirrors execAluR's operation selection but against the
// from-first-principles functions in oracle.go.
func aluOracle(row uint8, a, v, f uint8) (resultA, resultF uint8) {
	switch row {
	case 0:
		return oracleAdd(a, v, 0, false)
	case 1:
		return oracleAdd(a, v, f, true)
	case 2:
		return oracleSub(a, v, 0, false)
	case 3:
		return oracleSub(a, v, f, true)
	case 4:
		r := a & v
		return r, oracleLogic(r, true)
	case 5:
		r := a ^ v
		return r, oracleLogic(r, false)
	case 6:
		r := a | v
		return r, oracleLogic(r, false)
	case 7:
		_, fl := oracleSub(a, v, 0, false)
		// CP leaves A unmodified and takes its undocumented bits from
		// the operand, not the (discarded) result.
		fl = (fl &^ (z80.Flag3 | z80.Flag5)) | (v & (z80.Flag3 | z80.Flag5))
		return a, fl
	}
	return a, f
}

// incDecOpcode combines a register field (0..7, (HL) at 6) with the
// INC (0x04 base) or DEC (0x05 base) op family.
func incDecOpcode(reg uint8, isDec bool) uint8 {
	if isDec {
		return 0x05 | reg<<3
	}
	return 0x04 | reg<<3
}

// IncDecCases builds one case per (INC/DEC, register field, operand
// byte) triple, sweeping every 8-bit register plus (HL).
func IncDecCases() []Case {
	var cases []Case
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg
		for _, isDec := range []bool{false, true} {
			isDec := isDec
			mnemonic := "INC"
			if isDec {
				mnemonic = "DEC"
			}
			for _, b := range ByteOperands() {
				b := b
				name := fmt.Sprintf("%s %s=%#02x", mnemonic, regFieldName[reg], b)
				cases = append(cases, Case{
					Name: name,
					Run: func() (bool, string) {
						seed, mem := seedWithOperand(z80.Registers{}, reg, b)
						result := Run(seed, mem, incDecOpcode(reg, isDec))
						want, wantFlags := oracleIncDec(b, isDec)
						wantFlags |= seed.F & z80.FlagC

						var got uint8
						if reg == 6 {
							got = result.Mem[operandMemAddr]
						} else {
							got, _ = extractOperand(result.Registers, reg)
						}
						if got != want || result.Registers.F != wantFlags {
							return false, fmt.Sprintf("got value=%#02x F=%#08b, want value=%#02x F=%#08b", got, result.Registers.F, want, wantFlags)
						}
						return true, ""
					},
				})
			}
		}
	}
	return cases
}

// extractOperand reads back the register field src names from regs,
// the read-side counterpart to seedWithOperand. It never resolves
// (HL); callers read memory for that case themselves.
func extractOperand(regs z80.Registers, src uint8) (uint8, bool) {
	switch src {
	case 0:
		return regs.B, true
	case 1:
		return regs.C, true
	case 2:
		return regs.D, true
	case 3:
		return regs.E, true
	case 4:
		return regs.H, true
	case 5:
		return regs.L, true
	case 7:
		return regs.A, true
	}
	return 0, false
}

// AllCases returns the full conformance sweep: the base-table ALU-A,r
// and INC/DEC blocks, the CB-prefixed rotate/shift/BIT/RES/SET table,
// the ED-prefixed NEG and block-I/O group, DD/FD/DDCB/FDCB timing spot
// checks, DAA, and the SCF/CCF R5/R3 latch.
func AllCases() []Case {
	cases := AluCases()
	cases = append(cases, IncDecCases()...)
	cases = append(cases, CbCases()...)
	cases = append(cases, EdCases()...)
	cases = append(cases, IndexedTimingCases()...)
	cases = append(cases, DaaCases()...)
	cases = append(cases, ScfCcfCases()...)
	return cases
}
