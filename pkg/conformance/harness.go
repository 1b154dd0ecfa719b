package conformance

import "github.com/z80core/spectrum/pkg/z80"

// memBus is a flat 64K RAM/port space, good enough for feeding a single
// opcode to the CPU and reading back the result — it never contends or
// banks, unlike a real machine's Bus implementation.
type memBus struct {
	mem   [65536]uint8
	ports [65536]uint8
}

func (b *memBus) ReadMem(addr uint16) uint8     { return b.mem[addr] }
func (b *memBus) WriteMem(addr uint16, v uint8) { b.mem[addr] = v }
func (b *memBus) ReadPort(port uint16) uint8    { return b.ports[port&0xFF] }
func (b *memBus) WritePort(port uint16, v uint8) {
	b.ports[port&0xFF] = v
}

// RunOpcode executes the instruction encoded by opcode (which may
// include prefix bytes) starting from the given register state, and
// returns the resulting register state. PC is fixed at 0x0000 for
// every run so WZ/PC-relative effects are directly comparable across
// cases.
func RunOpcode(seed z80.Registers, opcode ...uint8) z80.Registers {
	return Run(seed, nil, opcode...).Registers
}

// RunResult is the outcome of one harness run: the resulting register
// state, the memory and port space the instruction touched (for
// (HL)/(IX+d)/IN operand checks), and the number of T-states the
// instruction actually took.
type RunResult struct {
	Registers z80.Registers
	Mem       *[65536]uint8
	Ports     *[65536]uint8
	Tacts     uint64
}

// Run is RunOpcode extended with an out-of-line memory poke for cases
// whose operand lives at an address other than PC=0 — (HL)/(IX+d)
// forms need a byte sitting somewhere the opcode stream isn't. mem may
// be nil.
func Run(seed z80.Registers, mem map[uint16]uint8, opcode ...uint8) RunResult {
	return RunWithPorts(seed, mem, nil, opcode...)
}

// RunWithPorts is Run extended with an out-of-line port poke, for IN
// family cases whose input byte comes from a port rather than memory.
// ports is keyed the same way memBus.ReadPort masks its argument
// (port & 0xFF).
func RunWithPorts(seed z80.Registers, mem map[uint16]uint8, ports map[uint16]uint8, opcode ...uint8) RunResult {
	bus := &memBus{}
	copy(bus.mem[:], opcode)
	for addr, v := range mem {
		bus.mem[addr] = v
	}
	for port, v := range ports {
		bus.ports[port&0xFF] = v
	}

	clock := z80.NewTactClock(nil)
	cpu := z80.New(bus, clock)
	cpu.Registers = seed
	cpu.PC = 0

	cpu.ExecuteInstruction()
	return RunResult{Registers: cpu.Registers, Mem: &bus.mem, Ports: &bus.ports, Tacts: clock.Count()}
}

// RunN executes n consecutive instructions from the concatenated opcode
// stream starting at PC=0x0000, returning the state after the last one.
// Needed for cases that depend on state left behind by the instruction
// immediately before the one under test, such as SCF/CCF's F53-updated
// latch (spec.md §3), which only a real preceding instruction — not a
// seeded register value — can set.
func RunN(seed z80.Registers, mem map[uint16]uint8, n int, opcode ...uint8) RunResult {
	bus := &memBus{}
	copy(bus.mem[:], opcode)
	for addr, v := range mem {
		bus.mem[addr] = v
	}

	clock := z80.NewTactClock(nil)
	cpu := z80.New(bus, clock)
	cpu.Registers = seed
	cpu.PC = 0

	for i := 0; i < n; i++ {
		cpu.ExecuteInstruction()
	}
	return RunResult{Registers: cpu.Registers, Mem: &bus.mem, Ports: &bus.ports, Tacts: clock.Count()}
}
