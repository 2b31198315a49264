package mappers

import (
	"github.com/mp3/res/nesrom"
)

const (
	PRG_BANK_SIZE = 16 * 1024
	CHR_BANK_SIZE = 8 * 1024
)

func init() {
	Register(0, func(r *nesrom.ROM) (Mapper, error) {
		return newMapper0(r.PrgROM, r.ChrROM, r.HasChrRAM)
	})
}

// mapper0 is NROM: a single 16 KiB or 32 KiB PRG bank and one 8 KiB
// CHR bank, no bank switching. https://www.nesdev.org/wiki/NROM
type mapper0 struct {
	prgROM   []uint8
	chr      []uint8
	chrIsRAM bool
}

func newMapper0(prgROM, chrROM []uint8, hasChrRAM bool) (*mapper0, error) {
	switch len(prgROM) {
	case PRG_BANK_SIZE, 2 * PRG_BANK_SIZE:
	default:
		return nil, &InvalidPrgSizeError{Size: len(prgROM)}
	}

	m := &mapper0{prgROM: prgROM, chr: chrROM}
	if hasChrRAM {
		m.chr = make([]uint8, CHR_BANK_SIZE)
		m.chrIsRAM = true
	}

	return m, nil
}

func (m *mapper0) PrgRead(addr uint16) (uint8, bool) {
	if addr < 0x8000 {
		return 0, false
	}

	mapped := int(addr - 0x8000)
	if len(m.prgROM) == PRG_BANK_SIZE {
		// a 16 KiB cart mirrors its single bank into both halves
		// of the $8000-$FFFF window
		mapped %= PRG_BANK_SIZE
	}

	return m.prgROM[mapped], true
}

func (m *mapper0) PrgWrite(addr uint16, val uint8) bool {
	// NROM carries no PRG RAM; writes into the ROM window are
	// absorbed and discarded
	return addr >= 0x8000
}

func (m *mapper0) ChrRead(addr uint16) (uint8, bool) {
	if addr > 0x1FFF {
		return 0, false
	}

	if len(m.chr) == 0 {
		return 0, true
	}

	return m.chr[addr], true
}

func (m *mapper0) ChrWrite(addr uint16, val uint8) bool {
	if addr > 0x1FFF {
		return false
	}

	if m.chrIsRAM {
		m.chr[addr] = val
	}

	return true
}
