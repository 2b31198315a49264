package ppu

// loopy stores one of the v and t (loopy) registers and allows
// extracting and setting the various components as described below:
// yyy NN YYYYY XXXXX
// ||| || ||||| +++++-- coarse X scroll
// ||| || +++++-------- coarse Y scroll
// ||| ++-------------- nametable select
// +++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

func (l *loopy) addr() uint16 {
	return l.data
}

func (l *loopy) coarseX() uint16 {
	return l.data & 0x001F
}

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data & 0xFFE0) | (n & 0x001F)
}

func (l *loopy) coarseY() uint16 {
	return (l.data & 0x03E0) >> 5
}

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data & 0xFC1F) | ((n & 0x001F) << 5)
}

func (l *loopy) nametable() uint16 {
	return (l.data & 0x0C00) >> 10
}

func (l *loopy) setNametable(n uint16) {
	l.data = (l.data & 0xF3FF) | ((n & 0x0003) << 10)
}

func (l *loopy) fineY() uint16 {
	return (l.data & 0x7000) >> 12
}

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data & 0x8FFF) | ((n & 0x0007) << 12)
}

// setHigh installs an address high byte as bits 8-13, clearing bit 14
// the way the real register does on the first PPUADDR write.
func (l *loopy) setHigh(val uint8) {
	l.data = (l.data & 0x00FF) | ((uint16(val) & 0x3F) << 8)
}

// setLow installs an address low byte.
func (l *loopy) setLow(val uint8) {
	l.data = (l.data & 0xFF00) | uint16(val)
}

// advance moves the address by the PPUDATA increment, wrapping at the
// top of the 16-bit space.
func (l *loopy) advance(n uint16) {
	l.data += n
}
