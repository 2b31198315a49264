package mos6502

import (
	"math"

	"github.com/mp3/res/apu"
	"github.com/mp3/res/mappers"
	"github.com/mp3/res/nesrom"
	"github.com/mp3/res/ppu"
)

const (
	MAX_ADDRESS = math.MaxUint16
	MEM_SIZE    = MAX_ADDRESS + 1
)

// CPU address space landmarks
// https://www.nesdev.org/wiki/CPU_memory_map
const (
	PPU_REG_BASE     = 0x2000
	PPU_REG_MIRRORED = 0x3FFF
	APU_REG_BASE     = 0x4000
	APU_REG_LAST     = 0x4017
	PRG_WINDOW       = 0x8000
)

// memory routes every CPU load and store. A flat 64 KiB byte array
// backs everything that isn't claimed by the PPU register window, the
// APU register window or the cartridge mapper.
type memory struct {
	ram    [MEM_SIZE]uint8
	apu    *apu.APU
	ppu    *ppu.PPU
	mapper mappers.Mapper // nil until a cartridge is loaded
}

func newMemory() *memory {
	return &memory{
		apu: apu.New(),
		ppu: ppu.New(nesrom.MIRROR_HORIZONTAL),
	}
}

func (m *memory) read(addr uint16) uint8 {
	switch {
	case addr >= PPU_REG_BASE && addr <= PPU_REG_MIRRORED:
		// the 8 PPU registers repeat through $2000-$3FFF
		return m.ppu.ReadReg(PPU_REG_BASE + (addr-PPU_REG_BASE)%8)
	case addr >= APU_REG_BASE && addr <= APU_REG_LAST:
		return m.apu.ReadRegister(addr)
	case addr >= PRG_WINDOW:
		// the mapper is consulted first; on a miss the internal
		// bytes show through
		if m.mapper != nil {
			if val, ok := m.mapper.PrgRead(addr); ok {
				return val
			}
		}
		return m.ram[addr]
	default:
		return m.ram[addr]
	}
}

func (m *memory) write(addr uint16, val uint8) {
	switch {
	case addr >= PPU_REG_BASE && addr <= PPU_REG_MIRRORED:
		m.ppu.WriteReg(PPU_REG_BASE+(addr-PPU_REG_BASE)%8, val)
	case addr >= APU_REG_BASE && addr <= APU_REG_LAST:
		m.apu.WriteRegister(addr, val)
	case addr >= PRG_WINDOW:
		if m.mapper != nil && m.mapper.PrgWrite(addr, val) {
			return
		}
		m.ram[addr] = val
	default:
		m.ram[addr] = val
	}
}

// read16 returns the two bytes from memory at addr (lower byte is
// first). The second byte wraps from $FFFF to $0000.
func (m *memory) read16(addr uint16) uint16 {
	lsb := uint16(m.read(addr))
	msb := uint16(m.read(addr + 1))

	return (msb << 8) | lsb
}

// write16 stores val at addr (lower byte is first).
func (m *memory) write16(addr, val uint16) {
	m.write(addr, uint8(val&0x00FF))
	m.write(addr+1, uint8(val>>8))
}
