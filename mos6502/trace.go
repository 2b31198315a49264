package mos6502

import (
	"fmt"
)

// TraceState is an immutable snapshot of the register file plus the
// decoded mnemonic of the instruction the CPU is about to execute.
type TraceState struct {
	PC       uint16
	Opcode   uint8
	Mnemonic string // "???" for bytes outside the instruction set
	A        uint8
	X        uint8
	Y        uint8
	Status   uint8
	SP       uint8
}

// LogLine renders the canonical single-line trace format.
func (ts TraceState) LogLine() string {
	return fmt.Sprintf("PC:%04X OPC:%02X %-3s A:%02X X:%02X Y:%02X P:%08b SP:%02X",
		ts.PC, ts.Opcode, ts.Mnemonic, ts.A, ts.X, ts.Y, ts.Status, ts.SP)
}

// CurrentTraceState snapshots the CPU without stepping it.
func (c *CPU) CurrentTraceState() TraceState {
	code := c.MemRead(c.pc)

	mnemonic := "???"
	if op, ok := opcodes[code]; ok {
		mnemonic = op.name
	}

	return TraceState{
		PC:       c.pc,
		Opcode:   code,
		Mnemonic: mnemonic,
		A:        c.acc,
		X:        c.x,
		Y:        c.y,
		Status:   c.status,
		SP:       c.sp,
	}
}

// RunWithTrace is Run with a trace observer invoked after every
// executed instruction.
func (c *CPU) RunWithTrace(callback func(TraceState)) {
	if err := c.TryRunWithTrace(callback); err != nil {
		panic(fmt.Sprintf("cpu halted with error: %v", err))
	}
}

func (c *CPU) TryRunWithTrace(callback func(TraceState)) error {
	return c.TryRunWithCallback(func(cpu *CPU) {
		callback(cpu.CurrentTraceState())
	})
}
