// Package nesrom implements support for the NES (iNES) ROM
// format. https://www.nesdev.org/wiki/INES
package nesrom

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	HEADER_SIZE    = 16
	TRAINER_SIZE   = 512
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
)

var (
	// ErrInvalidHeader is returned for images that don't open with
	// the iNES magic bytes.
	ErrInvalidHeader = errors.New("not an iNES image")
	// ErrTruncated is returned for images shorter than their header
	// advertises.
	ErrTruncated = errors.New("truncated iNES image")
)

// UnsupportedMapperError is returned for cartridges whose mapper we
// can't emulate yet.
type UnsupportedMapperError struct {
	ID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper id %d", e.ID)
}

// ROM is a validated cartridge image: the PRG and CHR payloads plus
// the header facts the rest of the machine cares about. The optional
// trainer block is skipped during parsing and not retained.
type ROM struct {
	h *header

	PrgROM    []uint8 // 16384 * x bytes; x from header
	ChrROM    []uint8 // 8192 * y bytes; y from header
	Mirroring uint8   // one of the MIRROR_* constants
	HasChrRAM bool    // true when the header advertised zero CHR banks
}

// New reads and parses the iNES file at path.
func New(path string) (*ROM, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read ROM file %q: %w", path, err)
	}

	return ParseINES(raw)
}

// ParseINES validates raw iNES bytes and slices out the PRG and CHR
// payloads. Validation order: header length, magic, mapper id, then
// the payload length implied by the header.
func ParseINES(raw []byte) (*ROM, error) {
	if len(raw) < HEADER_SIZE {
		return nil, ErrTruncated
	}

	h := parseHeader(raw[:HEADER_SIZE])
	if !h.isINesFormat() {
		return nil, ErrInvalidHeader
	}

	if mn := h.mapperNum(); mn != 0 {
		return nil, &UnsupportedMapperError{ID: mn}
	}

	cursor := HEADER_SIZE
	if h.hasTrainer() {
		cursor += TRAINER_SIZE
	}

	prgSize := int(h.prgSize) * PRG_BLOCK_SIZE
	chrSize := int(h.chrSize) * CHR_BLOCK_SIZE
	if len(raw) < cursor+prgSize+chrSize {
		return nil, ErrTruncated
	}

	r := &ROM{
		h:         h,
		Mirroring: h.mirroringMode(),
		HasChrRAM: h.chrSize == 0,
	}
	r.PrgROM = append([]uint8(nil), raw[cursor:cursor+prgSize]...)
	cursor += prgSize
	r.ChrROM = append([]uint8(nil), raw[cursor:cursor+chrSize]...)

	return r, nil
}

func (r *ROM) NumPrgBlocks() uint8 {
	return r.h.prgSize
}

func (r *ROM) MapperNum() uint8 {
	return r.h.mapperNum()
}

func (r *ROM) HasSaveRAM() bool {
	return r.h.hasPrgRAM()
}

func (r *ROM) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", r.h))
	sb.WriteString(fmt.Sprintf("PRG: %d bytes\n", len(r.PrgROM)))
	sb.WriteString(fmt.Sprintf("CHR: %d bytes\n", len(r.ChrROM)))

	return sb.String()
}
