package z80

import "testing"

// testBus is a flat 64K memory/port space for driving the CPU directly
// in white-box tests, without pkg/machine's frame/breakpoint loop.
type testBus struct {
	mem   [65536]uint8
	ports [65536]uint8
}

func (b *testBus) ReadMem(addr uint16) uint8     { return b.mem[addr] }
func (b *testBus) WriteMem(addr uint16, v uint8) { b.mem[addr] = v }
func (b *testBus) ReadPort(port uint16) uint8    { return b.ports[port&0xFF] }
func (b *testBus) WritePort(port uint16, v uint8) {
	b.ports[port&0xFF] = v
}

func newTestCPU(program ...uint8) (*CPU, *testBus, *TactClock) {
	bus := &testBus{}
	copy(bus.mem[:], program)
	clock := NewTactClock(nil)
	cpu := New(bus, clock)
	return cpu, bus, clock
}

func TestLdBCnn(t *testing.T) {
	cpu, _, clock := newTestCPU(0x01, 0x34, 0x12, 0x00)
	cpu.ExecuteInstruction()
	if cpu.BC() != 0x1234 {
		t.Fatalf("BC = %#04x, want 0x1234", cpu.BC())
	}
	if cpu.PC != 0x0003 {
		t.Fatalf("PC = %#04x, want 0x0003", cpu.PC)
	}
	if clock.Count() != 10 {
		t.Fatalf("tacts = %d, want 10", clock.Count())
	}
}

func TestRlca(t *testing.T) {
	cpu, _, clock := newTestCPU(0x07)
	cpu.A = 0x80
	cpu.F = 0x00
	cpu.ExecuteInstruction()
	if cpu.A != 0x01 {
		t.Fatalf("A = %#02x, want 0x01", cpu.A)
	}
	if cpu.F&FlagC == 0 {
		t.Fatal("expected C set")
	}
	if cpu.F&(FlagH|FlagN) != 0 {
		t.Fatal("expected H and N clear")
	}
	if clock.Count() != 4 {
		t.Fatalf("tacts = %d, want 4", clock.Count())
	}
}

func TestRra(t *testing.T) {
	cpu, _, clock := newTestCPU(0x1F)
	cpu.A = 0x01
	cpu.F = FlagC
	cpu.ExecuteInstruction()
	if cpu.A != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", cpu.A)
	}
	if cpu.F&FlagC == 0 {
		t.Fatal("expected C set")
	}
	if clock.Count() != 4 {
		t.Fatalf("tacts = %d, want 4", clock.Count())
	}
}

func TestDjnzLoop(t *testing.T) {
	cpu, _, clock := newTestCPU(0x10, 0xFE) // DJNZ -2, self-looping
	cpu.B = 0x02

	cpu.ExecuteInstruction() // B: 2->1, nonzero, taken (13T), PC back to 0
	if cpu.B != 0x01 || cpu.PC != 0 {
		t.Fatalf("after first iter B=%#02x PC=%#04x, want B=1 PC=0", cpu.B, cpu.PC)
	}
	cpu.ExecuteInstruction() // B: 1->0, zero, not taken (8T), PC falls through
	if cpu.B != 0x00 {
		t.Fatalf("after second iter B = %#02x, want 0", cpu.B)
	}
	if clock.Count() != 13+8 {
		t.Fatalf("tacts = %d, want %d", clock.Count(), 13+8)
	}
	if cpu.PC != 2 {
		t.Fatalf("PC = %#04x, want 2 (past the DJNZ)", cpu.PC)
	}
}

func TestAddHLBC(t *testing.T) {
	cpu, _, clock := newTestCPU(0x09)
	cpu.SetHL(0x1234)
	cpu.SetBC(0x1111)
	cpu.ExecuteInstruction()
	if cpu.HL() != 0x2345 {
		t.Fatalf("HL = %#04x, want 0x2345", cpu.HL())
	}
	if cpu.F&(FlagN|FlagH|FlagC) != 0 {
		t.Fatalf("F = %#08b, want N,H,C clear", cpu.F)
	}
	if clock.Count() != 11 {
		t.Fatalf("tacts = %d, want 11", clock.Count())
	}
}

func TestHaltExecutesNops(t *testing.T) {
	cpu, _, clock := newTestCPU(0x76)
	cpu.ExecuteInstruction()
	if !cpu.Halted {
		t.Fatal("expected Halted")
	}
	pc := cpu.PC
	cpu.ExecuteInstruction()
	if cpu.PC != pc {
		t.Fatalf("PC advanced during HALT: %#04x -> %#04x", pc, cpu.PC)
	}
	if clock.Count() != 8 {
		t.Fatalf("tacts = %d, want 8 (two NOP-equivalent halts)", clock.Count())
	}
}

func TestConditionalCallNotTakenVsTaken(t *testing.T) {
	// CALL NZ,nn twice: once with Z set (not taken), once cleared (taken).
	cpu, _, clock := newTestCPU(0xC4, 0x00, 0x10)
	cpu.F = FlagZ
	cpu.ExecuteInstruction()
	if clock.Count() != 10 {
		t.Fatalf("not-taken CALL cc: tacts = %d, want 10", clock.Count())
	}
	if cpu.PC != 3 {
		t.Fatalf("not-taken CALL cc: PC = %#04x, want 3", cpu.PC)
	}

	cpu2, _, clock2 := newTestCPU(0xC4, 0x00, 0x10)
	cpu2.F = 0
	cpu2.ExecuteInstruction()
	if clock2.Count() != 17 {
		t.Fatalf("taken CALL cc: tacts = %d, want 17", clock2.Count())
	}
	if cpu2.PC != 0x1000 {
		t.Fatalf("taken CALL cc: PC = %#04x, want 0x1000", cpu2.PC)
	}
}

func TestBreakpointStyleUntilExecutionPoint(t *testing.T) {
	cpu, _, _ := newTestCPU(0x00, 0x00, 0x00, 0xC3, 0x00, 0x00) // NOP,NOP,NOP,JP 0
	for i := 0; i < 3; i++ {
		cpu.ExecuteInstruction()
	}
	if cpu.PC != 3 {
		t.Fatalf("PC after three NOPs = %#04x, want 3", cpu.PC)
	}
}
