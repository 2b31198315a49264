package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prgAt(t *testing.T, m Mapper, addr uint16) uint8 {
	t.Helper()
	val, ok := m.PrgRead(addr)
	require.True(t, ok, "mapper didn't claim PRG address %04x", addr)
	return val
}

func chrAt(t *testing.T, m Mapper, addr uint16) uint8 {
	t.Helper()
	val, ok := m.ChrRead(addr)
	require.True(t, ok, "mapper didn't claim CHR address %04x", addr)
	return val
}

func TestNrom128CpuMirrorsUpperBank(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0x11
	prg[0x3FFF] = 0x22

	m, err := newMapper0(prg, make([]uint8, CHR_BANK_SIZE), false)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x11), prgAt(t, m, 0x8000))
	assert.Equal(t, uint8(0x22), prgAt(t, m, 0xBFFF))
	assert.Equal(t, uint8(0x11), prgAt(t, m, 0xC000))
	assert.Equal(t, uint8(0x22), prgAt(t, m, 0xFFFF))
}

func TestNrom256CpuUsesFull32kbPrg(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0] = 0x33
	prg[0x7FFF] = 0x44

	m, err := newMapper0(prg, make([]uint8, CHR_BANK_SIZE), false)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x33), prgAt(t, m, 0x8000))
	assert.Equal(t, uint8(0x44), prgAt(t, m, 0xFFFF))
}

func TestNromRejectsOddPrgSizes(t *testing.T) {
	for _, size := range []int{0, 0x2000, 0x4001, 0xC000} {
		_, err := newMapper0(make([]uint8, size), nil, true)

		var pe *InvalidPrgSizeError
		require.ErrorAs(t, err, &pe, "size %#x", size)
		assert.Equal(t, size, pe.Size)
	}
}

func TestNromIgnoresAddressesBelowPrgWindow(t *testing.T) {
	m, err := newMapper0(make([]uint8, 0x4000), nil, true)
	require.NoError(t, err)

	_, ok := m.PrgRead(0x7FFF)
	assert.False(t, ok)
	assert.False(t, m.PrgWrite(0x7FFF, 0xFF))
}

func TestNromAbsorbsPrgWrites(t *testing.T) {
	m, err := newMapper0(make([]uint8, 0x4000), nil, true)
	require.NoError(t, err)

	assert.True(t, m.PrgWrite(0x8000, 0xEE))
	assert.Equal(t, uint8(0), prgAt(t, m, 0x8000), "NROM has no PRG RAM")
}

func TestNromChrRomIgnoresWrites(t *testing.T) {
	chr := make([]uint8, CHR_BANK_SIZE)
	for i := range chr {
		chr[i] = 0xAB
	}

	m, err := newMapper0(make([]uint8, 0x4000), chr, false)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xAB), chrAt(t, m, 0x0010))
	assert.True(t, m.ChrWrite(0x0010, 0xCD))
	assert.Equal(t, uint8(0xAB), chrAt(t, m, 0x0010))
}

func TestNromChrRamStoresWrittenValues(t *testing.T) {
	m, err := newMapper0(make([]uint8, 0x4000), nil, true)
	require.NoError(t, err)

	assert.Equal(t, uint8(0x00), chrAt(t, m, 0x0010))
	assert.True(t, m.ChrWrite(0x0010, 0xCD))
	assert.Equal(t, uint8(0xCD), chrAt(t, m, 0x0010))
}

func TestNromEmptyChrReadsAsZero(t *testing.T) {
	m := &mapper0{prgROM: make([]uint8, 0x4000)}

	assert.Equal(t, uint8(0), chrAt(t, m, 0x1FFF))
	_, ok := m.ChrRead(0x2000)
	assert.False(t, ok, "pattern tables end at $1FFF")
}

func TestDummyMapperRoundTrips(t *testing.T) {
	dm := NewDummy()

	assert.True(t, dm.PrgWrite(0x8123, 0x42))
	assert.Equal(t, uint8(0x42), prgAt(t, dm, 0x8123))

	assert.True(t, dm.ChrWrite(0x0123, 0x24))
	assert.Equal(t, uint8(0x24), chrAt(t, dm, 0x0123))
}
