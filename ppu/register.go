package ppu

// Memory mapped register addresses, after the bus has reduced the
// $2000-$3FFF mirror region down to the 8 real registers.
// https://www.nesdev.org/wiki/PPU_registers
const (
	PPU_CTRL     = 0x2000
	PPU_MASK     = 0x2001
	PPU_STATUS   = 0x2002
	PPU_OAM_ADDR = 0x2003
	PPU_OAM_DATA = 0x2004
	PPU_SCROLL   = 0x2005
	PPU_ADDR     = 0x2006
	PPU_DATA     = 0x2007
)

// 7  bit  0
// ---- ----
// VPHB SINN
// |||| ||||
// |||| ||++- Base nametable address
// |||| ||    (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
// |||| |+--- VRAM address increment per CPU read/write of PPUDATA
// |||| |     (0: add 1, going across; 1: add 32, going down)
// |||| +---- Sprite pattern table address for 8x8 sprites
// ||||       (0: $0000; 1: $1000; ignored in 8x16 mode)
// |||+------ Background pattern table address (0: $0000; 1: $1000)
// ||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
// |+-------- PPU master/slave select
// |          (0: read backdrop from EXT pins; 1: output color on EXT pins)
// +--------- Generate an NMI at the start of the vertical blanking interval (0: off; 1: on)
const (
	CTRL_NAMETABLE1              = 1
	CTRL_NAMETABLE2              = 1 << 1
	CTRL_VRAM_ADD_INCREMENT      = 1 << 2
	CTRL_SPRITE_PATTERN_ADDR     = 1 << 3
	CTRL_BACKGROUND_PATTERN_ADDR = 1 << 4
	CTRL_SPRITE_SIZE             = 1 << 5
	CTRL_MASTER_SLAVE_SELECT     = 1 << 6
	CTRL_GENERATE_NMI            = 1 << 7

	CTRL_INCR_ACROSS = 1
	CTRL_INCR_DOWN   = 32
)

// PPUMASK bits
const (
	MASK_GRAYSCALE            = 1
	MASK_SHOW_BACKGROUND_LEFT = 1 << 1
	MASK_SHOW_SPRITES_LEFT    = 1 << 2
	MASK_SHOW_BACKGROUND      = 1 << 3
	MASK_SHOW_SPRITES         = 1 << 4
	MASK_EMPHASIZE_RED        = 1 << 5
	MASK_EMPHASIZE_GREEN      = 1 << 6
	MASK_EMPHASIZE_BLUE       = 1 << 7
)

// PPUSTATUS bits
const (
	STATUS_SPRITE_OVERFLOW = 1 << 5
	STATUS_SPRITE0_HIT     = 1 << 6
	STATUS_VBLANK          = 1 << 7
)
