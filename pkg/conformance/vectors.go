// Package conformance sweeps the z80 instruction core against an
// independently computed oracle, adapted from this codebase's
// superoptimizer search/verification machinery: the same test-vector
// quick-check and worker-pool concurrency that used to reject
// non-equivalent candidate sequences here rejects opcode handlers that
// disagree with a from-first-principles flag computation.
package conformance

import "github.com/z80core/spectrum/pkg/z80"

// Vector is one seed register state a case is checked against. The set
// below is ported from the search package's TestVectors: chosen to hit
// zero, all-ones, alternating-bit, and single-bit-set patterns, which
// between them exercise every half-carry and overflow lookup table
// entry across a handful of runs.
var Vectors = []z80.Registers{
	{A: 0x00, F: 0x00, B: 0x00, C: 0x00, D: 0x00, E: 0x00, H: 0x00, L: 0x00, SP: 0x0000},
	{A: 0xFF, F: 0xFF, B: 0xFF, C: 0xFF, D: 0xFF, E: 0xFF, H: 0xFF, L: 0xFF, SP: 0xFFFF},
	{A: 0x01, F: 0x00, B: 0x02, C: 0x03, D: 0x04, E: 0x05, H: 0x06, L: 0x07, SP: 0x1234},
	{A: 0x80, F: 0x01, B: 0x40, C: 0x20, D: 0x10, E: 0x08, H: 0x04, L: 0x02, SP: 0x8000},
	{A: 0x55, F: 0x00, B: 0xAA, C: 0x55, D: 0xAA, E: 0x55, H: 0xAA, L: 0x55, SP: 0x5555},
	{A: 0xAA, F: 0x01, B: 0x55, C: 0xAA, D: 0x55, E: 0xAA, H: 0x55, L: 0xAA, SP: 0xAAAA},
	{A: 0x0F, F: 0x00, B: 0xF0, C: 0x0F, D: 0xF0, E: 0x0F, H: 0xF0, L: 0x0F, SP: 0xFFFE},
	{A: 0x7F, F: 0x01, B: 0x80, C: 0x7F, D: 0x80, E: 0x7F, H: 0x80, L: 0x7F, SP: 0x7FFF},
}

// ByteOperands is the full 0..255 sweep used for the INC/DEC checks and
// as the operand of the two-operand ALU checks (ADD/ADC/SUB/SBC/AND/OR/
// XOR/CP), where a full cross product with Vectors is still cheap. The
// CB rotate/shift checks use RepresentativeOperands instead.
func ByteOperands() []uint8 {
	out := make([]uint8, 256)
	for i := range out {
		out[i] = uint8(i)
	}
	return out
}
