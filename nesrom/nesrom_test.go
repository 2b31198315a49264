package nesrom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles an iNES byte stream from header fields and a raw
// payload (trainer + PRG + CHR, in that order).
func buildINES(prgBanks, chrBanks, flags6, flags7 uint8, payload ...[]byte) []byte {
	raw := make([]byte, HEADER_SIZE)
	copy(raw, []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = prgBanks
	raw[5] = chrBanks
	raw[6] = flags6
	raw[7] = flags7
	for _, p := range payload {
		raw = append(raw, p...)
	}
	return raw
}

func fill(n int, b uint8) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = b
	}
	return s
}

func TestParseINESReadsPrgAndChr(t *testing.T) {
	prg := fill(PRG_BLOCK_SIZE, 0xAA)
	chr := fill(CHR_BLOCK_SIZE, 0xBB)

	rom, err := ParseINES(buildINES(1, 1, 0, 0, prg, chr))
	require.NoError(t, err)

	assert.Equal(t, uint8(0), rom.MapperNum())
	assert.Equal(t, uint8(MIRROR_HORIZONTAL), rom.Mirroring)
	assert.False(t, rom.HasChrRAM)
	assert.Equal(t, prg, []byte(rom.PrgROM))
	assert.Equal(t, chr, []byte(rom.ChrROM))
}

func TestParseINESSkipsTrainer(t *testing.T) {
	trainer := fill(TRAINER_SIZE, 0xCC)
	prg := fill(PRG_BLOCK_SIZE, 0xAA)

	rom, err := ParseINES(buildINES(1, 0, TRAINER, 0, trainer, prg))
	require.NoError(t, err)

	assert.Equal(t, prg, []byte(rom.PrgROM))
	assert.Empty(t, rom.ChrROM)
	assert.True(t, rom.HasChrRAM, "zero CHR banks means the board carries CHR RAM")
}

func TestParseINESMirroringFlags(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   uint8
	}{
		{0x00, MIRROR_HORIZONTAL},
		{MIRRORING, MIRROR_VERTICAL},
		{IGNORE_MIRRORING, MIRROR_FOUR_SCREEN},
		{IGNORE_MIRRORING | MIRRORING, MIRROR_FOUR_SCREEN}, // four-screen wins
	}

	for i, tc := range cases {
		rom, err := ParseINES(buildINES(1, 0, tc.flags6, 0, fill(PRG_BLOCK_SIZE, 0)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, rom.Mirroring, "case %d", i)
	}
}

func TestParseINESRejectsInvalidHeader(t *testing.T) {
	raw := buildINES(1, 0, 0, 0, fill(PRG_BLOCK_SIZE, 0))
	copy(raw, "BAD!")

	_, err := ParseINES(raw)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseINESRejectsNonNromMapper(t *testing.T) {
	_, err := ParseINES(buildINES(1, 0, 0x10, 0, fill(PRG_BLOCK_SIZE, 0)))

	var me *UnsupportedMapperError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, uint8(1), me.ID)
}

func TestParseINESRejectsTruncated(t *testing.T) {
	// Too short for a header at all.
	_, err := ParseINES([]byte{0x4E, 0x45, 0x53})
	assert.ErrorIs(t, err, ErrTruncated)

	// Header promises one PRG bank but the payload is short.
	_, err = ParseINES(buildINES(1, 0, 0, 0, fill(PRG_BLOCK_SIZE-1, 0)))
	assert.ErrorIs(t, err, ErrTruncated)

	// A trainer pushes the payload past the end.
	_, err = ParseINES(buildINES(1, 0, TRAINER, 0, fill(PRG_BLOCK_SIZE, 0)))
	assert.ErrorIs(t, err, ErrTruncated)
}
