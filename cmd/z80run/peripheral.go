package main

import "github.com/z80core/spectrum/pkg/machine"

// framePeripheral is the minimal machine.Peripheral for headless runs:
// no video/audio/keyboard, a fixed tact budget per frame, and no
// interrupt source unless armed explicitly (used by the run and debug
// subcommands, which don't need a real ULA).
type framePeripheral struct {
	tactsPerFrame uint64
	tacts         func() uint64
	frameStart    uint64
	interrupt     bool
}

func newFramePeripheral(tactsPerFrame uint64, tacts func() uint64) *framePeripheral {
	return &framePeripheral{tactsPerFrame: tactsPerFrame, tacts: tacts}
}

func (p *framePeripheral) ShouldRaiseInterrupt() bool { return p.interrupt }
func (p *framePeripheral) OnFrameStart()              { p.frameStart = p.tacts() }
func (p *framePeripheral) OnInstructionExecuted()      {}

func (p *framePeripheral) FrameComplete() bool {
	return p.tacts()-p.frameStart >= p.tactsPerFrame
}

func (p *framePeripheral) ClearFrameComplete() {
	p.frameStart = p.tacts()
}

var _ machine.Peripheral = (*framePeripheral)(nil)
