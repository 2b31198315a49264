package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteAndReadPathsAreStubbed(t *testing.T) {
	a := New()

	a.WriteRegister(0x4000, 0xFF)
	a.WriteRegister(0x4017, 0x80)

	assert.Equal(t, uint8(0x00), a.ReadRegister(0x4000))
	assert.Equal(t, uint8(0x00), a.ReadRegister(0x4017))
}

func TestStatusRegisterReadbackIsAvailable(t *testing.T) {
	a := New()

	a.WriteRegister(0x4015, 0x1F)

	assert.Equal(t, uint8(0x1F), a.ReadRegister(0x4015))
}

func TestWritesOutsideRegisterWindowAreDropped(t *testing.T) {
	a := New()

	a.WriteRegister(0x3FFF, 0x11)
	a.WriteRegister(0x4018, 0x22)

	for reg := uint16(APU_BASE); reg <= APU_LAST; reg++ {
		a.WriteRegister(reg, 0) // status included
	}
	assert.Equal(t, uint8(0), a.ReadRegister(APU_STATUS))
}
