package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLineFormat(t *testing.T) {
	ts := TraceState{
		PC:       0x0601,
		Opcode:   0xA9,
		Mnemonic: "LDA",
		A:        0xFF,
		X:        0x00,
		Y:        0x0A,
		Status:   0b1011_0001,
		SP:       0xFB,
	}

	assert.Equal(t, "PC:0601 OPC:A9 LDA A:FF X:00 Y:0A P:10110001 SP:FB", ts.LogLine())
}

func TestCurrentTraceStateUnknownOpcode(t *testing.T) {
	c := New()
	c.MemWrite(0x0600, 0x02)
	c.SetPC(0x0600)

	ts := c.CurrentTraceState()
	assert.Equal(t, "???", ts.Mnemonic)
	assert.Equal(t, uint8(0x02), ts.Opcode)
	assert.Equal(t, "PC:0600 OPC:02 ??? A:00 X:00 Y:00 P:00100100 SP:FD", ts.LogLine())
}

func TestRunWithTraceSnapshotsEachStep(t *testing.T) {
	c := New()
	c.Load([]uint8{0xA9, 0x05, 0xAA, 0x00})
	c.Reset()

	var lines []string
	require.NoError(t, c.TryRunWithTrace(func(ts TraceState) {
		lines = append(lines, ts.LogLine())
	}))

	assert.Equal(t, []string{
		"PC:0602 OPC:AA TAX A:05 X:00 Y:00 P:00100100 SP:FD",
		"PC:0603 OPC:00 BRK A:05 X:05 Y:00 P:00100100 SP:FD",
	}, lines)
}
