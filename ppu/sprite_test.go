package ppu

import (
	"testing"

	"github.com/mp3/res/nesrom"
)

func TestSpriteAttributes(t *testing.T) {
	cases := []struct {
		attrib         uint8
		wantPa         uint8
		wantPr         Priority
		wantFH, wantFV bool
	}{
		{0b11111111, 0x03, BACK, true, true},
		{0b01111111, 0x03, BACK, true, false},
		{0b00111111, 0x03, BACK, false, false},
		{0b00111101, 0x01, BACK, false, false},
		{0b00011101, 0x01, FRONT, false, false},
		{0b10011101, 0x01, FRONT, false, true},
		{0b10011110, 0x02, FRONT, false, true},
	}

	for i, tc := range cases {
		p := New(nesrom.MIRROR_HORIZONTAL)
		p.WriteReg(PPU_OAM_ADDR, 0)
		for _, b := range []uint8{0, 0, tc.attrib, 0} {
			p.WriteReg(PPU_OAM_DATA, b)
		}

		s := p.SpriteAt(0)
		if s.Palette != tc.wantPa || s.RenderP != tc.wantPr || s.FlipH != tc.wantFH || s.FlipV != tc.wantFV {
			t.Errorf("%d: %02x, %d, %t, %t; wanted %02x, %d, %t, %t", i, s.Palette, s.RenderP, s.FlipH, s.FlipV, tc.wantPa, tc.wantPr, tc.wantFH, tc.wantFV)
		}

		if got := s.Attributes(); got != tc.attrib&0xE3 {
			t.Errorf("%d: attributes = %08b, wanted %08b", i, got, tc.attrib&0xE3)
		}
	}
}

func TestSpriteAtDecodesPosition(t *testing.T) {
	p := New(nesrom.MIRROR_HORIZONTAL)
	p.WriteReg(PPU_OAM_ADDR, 4) // second record
	for _, b := range []uint8{0x20, 0x42, 0x00, 0x80} {
		p.WriteReg(PPU_OAM_DATA, b)
	}

	s := p.SpriteAt(1)
	if s.Y != 0x20 || s.TileID != 0x42 || s.X != 0x80 {
		t.Errorf("Got y=%02x tile=%02x x=%02x, wanted 20, 42, 80", s.Y, s.TileID, s.X)
	}
}
