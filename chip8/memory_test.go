package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	mem := NewMemory(0x1000)
	mem.Write(0x200, 0xAB)
	assert.Equal(t, byte(0xAB), mem.Read(0x200))
}

func TestMemoryBlockRoundTrip(t *testing.T) {
	mem := NewMemory(0x1000)
	block := []byte{1, 2, 3, 4, 5}

	mem.WriteBlock(0x300, block)
	got := mem.ReadBlock(0x300, len(block))
	assert.Equal(t, block, got)
}

func TestMemoryZeroBlock(t *testing.T) {
	mem := NewMemory(0x1000)
	mem.WriteBlock(0x300, []byte{1, 2, 3})
	mem.ZeroBlock(0x300, 3)

	for i := uint32(0x300); i < 0x303; i++ {
		assert.Equal(t, byte(0), mem.Read(i))
	}
}

func TestMemoryClear(t *testing.T) {
	mem := NewMemory(0x1000)
	mem.Write(0x123, 0xFF)
	mem.Clear()
	assert.Equal(t, byte(0), mem.Read(0x123))
}

func TestMemoryMove(t *testing.T) {
	mem := NewMemory(16)
	for i := byte(0); i < 4; i++ {
		mem.Write(uint32(i), i+1)
	}

	mem.Move(4)
	for i := uint32(4); i < 8; i++ {
		assert.Equal(t, byte(i-4+1), mem.Read(i))
	}
}

func TestMemorySize(t *testing.T) {
	assert.Equal(t, 0x10000, NewMemory(0x10000).Size())
}
