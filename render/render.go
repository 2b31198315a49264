// Package render composes whole frames from the current PPU and
// cartridge CHR state. It is a frame-at-a-time compositor driven by
// the host display loop, not a cycle-accurate pixel pipeline: tiles
// are drawn from the nametable and pattern table the CTRL register
// currently selects, with no mid-frame scrolling.
package render

import (
	"image"
	"image/color"

	"github.com/mp3/res/ppu"
)

// Display constants
const (
	NES_RES_WIDTH  = 256
	NES_RES_HEIGHT = 240

	TILE_SIZE  = 8
	TILE_BYTES = 16 // two bit planes of 8 bytes each
)

type Frame struct {
	img *image.RGBA
}

func NewFrame() *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, NES_RES_WIDTH, NES_RES_HEIGHT))}
}

func (f *Frame) Image() *image.RGBA {
	return f.img
}

func (f *Frame) setPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= NES_RES_WIDTH || y < 0 || y >= NES_RES_HEIGHT {
		return
	}
	f.img.SetRGBA(x, y, c)
}

// Draw renders the backdrop, the background nametable and the 64 OAM
// sprites into the frame.
func (f *Frame) Draw(p *ppu.PPU) {
	f.drawBackdrop(p)
	if p.Mask()&ppu.MASK_SHOW_BACKGROUND != 0 {
		f.DrawBackground(p)
	}
	if p.Mask()&ppu.MASK_SHOW_SPRITES != 0 {
		f.DrawSprites(p)
	}
}

func (f *Frame) drawBackdrop(p *ppu.PPU) {
	c := HardwarePalette[p.MemRead(ppu.PALETTE_RAM)&0x3F]
	for y := 0; y < NES_RES_HEIGHT; y++ {
		for x := 0; x < NES_RES_WIDTH; x++ {
			f.img.SetRGBA(x, y, c)
		}
	}
}

// DrawBackground walks the 32x30 tile grid of the nametable selected
// by CTRL bits 0-1, using the pattern table selected by CTRL bit 4.
func (f *Frame) DrawBackground(p *ppu.PPU) {
	ctrl := p.Ctrl()
	nametable := uint16(ppu.NAMETABLE_0) + 0x400*uint16(ctrl&0x03)

	var patternBase uint16 = ppu.PATTERN_TABLE_0
	if ctrl&ppu.CTRL_BACKGROUND_PATTERN_ADDR != 0 {
		patternBase = ppu.PATTERN_TABLE_1
	}

	for row := 0; row < 30; row++ {
		for col := 0; col < 32; col++ {
			tile := uint16(p.MemRead(nametable + uint16(row*32+col)))
			pal := bgPalette(p, nametable, col, row)
			f.drawTile(p, patternBase, tile, col*TILE_SIZE, row*TILE_SIZE, pal, false, false, false)
		}
	}
}

// bgPalette resolves the 4 palette entries covering the tile at
// (col, row) from the attribute table at the end of the nametable.
func bgPalette(p *ppu.PPU, nametable uint16, col, row int) [4]uint8 {
	attr := p.MemRead(nametable + 0x3C0 + uint16(row/4*8+col/4))
	shift := uint((row % 4 / 2 * 2) + (col % 4 / 2)) * 2
	idx := uint16((attr >> shift) & 0x03)

	base := uint16(ppu.PALETTE_RAM) + idx*4
	return [4]uint8{
		p.MemRead(ppu.PALETTE_RAM), // entry 0 is the shared backdrop
		p.MemRead(base + 1),
		p.MemRead(base + 2),
		p.MemRead(base + 3),
	}
}

// DrawSprites renders the 64 OAM records, last to first so that
// lower-numbered sprites win overlaps. Records parked below the
// visible area (Y of $EF-$FF) are skipped.
func (f *Frame) DrawSprites(p *ppu.PPU) {
	ctrl := p.Ctrl()

	var patternBase uint16 = ppu.PATTERN_TABLE_0
	if ctrl&ppu.CTRL_SPRITE_PATTERN_ADDR != 0 {
		patternBase = ppu.PATTERN_TABLE_1
	}

	for i := 63; i >= 0; i-- {
		s := p.SpriteAt(i)
		if s.Y >= 0xEF {
			continue
		}

		base := uint16(ppu.PALETTE_RAM) + 0x10 + uint16(s.Palette)*4
		pal := [4]uint8{
			0, // sprite pixel 0 is transparent
			p.MemRead(base + 1),
			p.MemRead(base + 2),
			p.MemRead(base + 3),
		}

		f.drawTile(p, patternBase, uint16(s.TileID), int(s.X), int(s.Y), pal, s.FlipH, s.FlipV, true)
	}
}

// drawTile blits one 8x8 tile from the pattern table. The two bit
// planes sit 8 bytes apart; bit 7 is the leftmost pixel.
func (f *Frame) drawTile(p *ppu.PPU, patternBase, tile uint16, x, y int, pal [4]uint8, flipH, flipV, skipZero bool) {
	for row := 0; row < TILE_SIZE; row++ {
		lo := p.MemRead(patternBase + tile*TILE_BYTES + uint16(row))
		hi := p.MemRead(patternBase + tile*TILE_BYTES + uint16(row) + 8)

		for bit := 0; bit < TILE_SIZE; bit++ {
			px := ((hi>>uint(7-bit))&1)<<1 | ((lo >> uint(7-bit)) & 1)
			if px == 0 && skipZero {
				continue
			}

			tx, ty := x+bit, y+row
			if flipH {
				tx = x + TILE_SIZE - 1 - bit
			}
			if flipV {
				ty = y + TILE_SIZE - 1 - row
			}

			f.setPixel(tx, ty, HardwarePalette[pal[px]&0x3F])
		}
	}
}
