// Package ppu implements the memory mapped register interface of the
// NES picture processing unit: internal VRAM, palette and OAM
// storage, the shared write-twice latches, and nametable mirroring.
package ppu

import (
	"fmt"

	"github.com/mp3/res/mappers"
	"github.com/mp3/res/nesrom"
)

const (
	VRAM_SIZE    = 2048
	OAM_SIZE     = 256
	PALETTE_SIZE = 32
)

// PPU address space landmarks
// https://www.nesdev.org/wiki/PPU_memory_map
const (
	PATTERN_TABLE_0  = 0x0000
	PATTERN_TABLE_1  = 0x1000
	NAMETABLE_0      = 0x2000
	NAMETABLE_1      = 0x2400
	NAMETABLE_2      = 0x2800
	NAMETABLE_3      = 0x2C00
	NAMETABLE_MIRROR = 0x3000
	PALETTE_RAM      = 0x3F00
)

type PPU struct {
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// $2005 and $2006 are written twice per value; both latches are
	// reset by a $2002 read
	addrLatch   bool
	scrollLatch bool

	v loopy // current vram address
	t loopy // temporary vram address, assembled by $2000/$2005/$2006

	readBuffer uint8 // delays non-palette $2007 reads by one access

	vram         [VRAM_SIZE]uint8
	paletteTable [PALETTE_SIZE]uint8
	oamData      [OAM_SIZE]uint8

	mirroring uint8
	mapper    mappers.Mapper // pattern table access; shared with the CPU
}

func New(mirroring uint8) *PPU {
	return &PPU{mirroring: mirroring}
}

func (p *PPU) SetMirroring(mirroring uint8) {
	p.mirroring = mirroring
}

// SetMapper installs (or, with nil, removes) the cartridge CHR
// backing of the pattern tables.
func (p *PPU) SetMapper(m mappers.Mapper) {
	p.mapper = m
}

func (p *PPU) Ctrl() uint8 {
	return p.ctrl
}

func (p *PPU) Mask() uint8 {
	return p.mask
}

func (p *PPU) String() string {
	return fmt.Sprintf("CTRL: %08b, MASK: %08b, STATUS: %08b, v: 0x%04x, t: 0x%04x", p.ctrl, p.mask, p.status, p.v.addr(), p.t.addr())
}

// ReadReg services a CPU read of one of the 8 registers. Reads are
// not free of side effects: $2002 clears the vblank bit and both
// write latches, $2007 advances the vram address.
func (p *PPU) ReadReg(reg uint16) uint8 {
	switch reg {
	case PPU_STATUS:
		st := p.status
		p.status &^= STATUS_VBLANK
		p.addrLatch = false
		p.scrollLatch = false
		return st
	case PPU_OAM_DATA:
		return p.oamData[p.oamAddr]
	case PPU_DATA:
		return p.readData()
	}

	// CTRL, MASK, OAMADDR, SCROLL and ADDR are write only
	return 0
}

// WriteReg services a CPU write of one of the 8 registers.
func (p *PPU) WriteReg(reg uint16, val uint8) {
	switch reg {
	case PPU_CTRL:
		p.ctrl = val
		p.t.setNametable(uint16(val) & 0x03)
	case PPU_MASK:
		p.mask = val
	case PPU_OAM_ADDR:
		p.oamAddr = val
	case PPU_OAM_DATA:
		p.oamData[p.oamAddr] = val
		p.oamAddr++ // wraps 0..255
	case PPU_SCROLL:
		if !p.scrollLatch {
			p.t.setCoarseX(uint16(val) >> 3)
		} else {
			p.t.setFineY(uint16(val) & 0x07)
			p.t.setCoarseY(uint16(val) >> 3)
		}
		p.scrollLatch = !p.scrollLatch
	case PPU_ADDR:
		if !p.addrLatch {
			p.t.setHigh(val)
		} else {
			p.t.setLow(val)
			p.v = p.t
		}
		p.addrLatch = !p.addrLatch
	case PPU_DATA:
		p.writeData(val)
	}

	// STATUS writes are ignored
}

func (p *PPU) vramAddrIncrement() uint16 {
	if p.ctrl&CTRL_VRAM_ADD_INCREMENT != 0 {
		return CTRL_INCR_DOWN
	}

	return CTRL_INCR_ACROSS
}

// readData implements the buffered $2007 read. Palette reads come
// back immediately and refresh the buffer from the nametable byte
// underneath the palette window; everything else returns the previous
// buffer and refreshes it from the current address.
func (p *PPU) readData() uint8 {
	addr := p.v.addr() & 0x3FFF

	var result uint8
	if addr >= PALETTE_RAM {
		result = p.MemRead(addr)
		p.readBuffer = p.MemRead(addr - 0x1000)
	} else {
		result = p.readBuffer
		p.readBuffer = p.MemRead(addr)
	}

	p.v.advance(p.vramAddrIncrement())
	return result
}

func (p *PPU) writeData(val uint8) {
	p.memWrite(p.v.addr()&0x3FFF, val)
	p.v.advance(p.vramAddrIncrement())
}

// MemRead reads from the PPU address space without the $2007
// buffering side effects.
func (p *PPU) MemRead(addr uint16) uint8 {
	switch {
	case addr < NAMETABLE_0:
		// Pattern Table 0 and 1 (upper: 0x0FFF, 0x1FFF)
		if p.mapper != nil {
			if val, ok := p.mapper.ChrRead(addr); ok {
				return val
			}
		}
		return 0
	case addr < NAMETABLE_MIRROR:
		return p.vram[p.mirrorVramAddr(addr)]
	case addr < PALETTE_RAM:
		return p.vram[p.mirrorVramAddr(addr-0x1000)]
	case addr <= 0x3FFF:
		return p.paletteTable[p.mirrorPaletteAddr(addr)]
	}

	return 0
}

func (p *PPU) memWrite(addr uint16, val uint8) {
	switch {
	case addr < NAMETABLE_0:
		if p.mapper != nil {
			p.mapper.ChrWrite(addr, val)
		}
	case addr < NAMETABLE_MIRROR:
		p.vram[p.mirrorVramAddr(addr)] = val
	case addr < PALETTE_RAM:
		p.vram[p.mirrorVramAddr(addr-0x1000)] = val
	case addr <= 0x3FFF:
		p.paletteTable[p.mirrorPaletteAddr(addr)] = val
	}
}

// mirrorVramAddr maps the 4 logical nametables at $2000-$2FFF onto
// the 2 physical 1 KiB pages of internal VRAM.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (p *PPU) mirrorVramAddr(addr uint16) uint16 {
	idx := addr - NAMETABLE_0
	table := idx / 0x400
	offset := idx % 0x400

	var mapped uint16
	switch p.mirroring {
	case nesrom.MIRROR_VERTICAL:
		mapped = table % 2
	case nesrom.MIRROR_HORIZONTAL:
		mapped = table / 2
	default:
		// four-screen needs two extra 1 KiB pages on the
		// cartridge; fold to vertical until a mapper provides them
		mapped = table % 2
	}

	return mapped*0x400 + offset
}

// mirrorPaletteAddr reduces $3F00-$3FFF to an index into the 32 byte
// palette, collapsing the $3F10/$3F14/$3F18/$3F1C aliases onto the
// background entries.
func (p *PPU) mirrorPaletteAddr(addr uint16) uint16 {
	idx := (addr - PALETTE_RAM) % 0x20
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx -= 0x10
	}

	return idx
}
