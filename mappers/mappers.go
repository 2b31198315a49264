// Package mappers implements and registers mappers that are
// referenced numerically by iNES ROM files.
package mappers

import (
	"fmt"

	"github.com/mp3/res/nesrom"
)

// A Mapper translates CPU and PPU bus addresses into cartridge
// memory. Reads report whether the mapper claims the address at all;
// writes report whether the cartridge absorbed the byte. The same
// mapper instance is shared by the CPU (PRG side) and the PPU (CHR
// side).
type Mapper interface {
	PrgRead(addr uint16) (uint8, bool)
	PrgWrite(addr uint16, val uint8) bool
	ChrRead(addr uint16) (uint8, bool)
	ChrWrite(addr uint16, val uint8) bool
}

// A global registry of mapper constructors, keyed by mapper id
var allMappers = map[uint8]func(*nesrom.ROM) (Mapper, error){}

func Register(id uint8, fn func(*nesrom.ROM) (Mapper, error)) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("can't re-register mapper id %d", id))
	}
	allMappers[id] = fn
}

// Get returns a fresh mapper for the cartridge or an error if we
// don't have a mapper for that id yet.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	fn, ok := allMappers[id]
	if !ok {
		return nil, &nesrom.UnsupportedMapperError{ID: id}
	}

	return fn(rom)
}

// InvalidPrgSizeError is returned when a cartridge carries a PRG
// payload no supported board layout can hold.
type InvalidPrgSizeError struct {
	Size int
}

func (e *InvalidPrgSizeError) Error() string {
	return fmt.Sprintf("invalid PRG ROM size %#x", e.Size)
}
