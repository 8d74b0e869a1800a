package chip8

import (
	"crypto/sha256"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFontChecksumsMatchInstalledBytes(t *testing.T) {
	mem := NewMemory(0x1000)
	installFonts(mem)

	loRes, hiRes := FontChecksums()

	gotLoRes := sha256.Sum256(mem.ReadBlock(LoResFontAddr, len(LoResFont)))
	gotHiRes := sha256.Sum256(mem.ReadBlock(HiResFontAddr, len(HiResFont)))

	assert.Equal(t, loRes, gotLoRes)
	assert.Equal(t, hiRes, gotHiRes)
}

func TestLoResGlyphAddr(t *testing.T) {
	assert.Equal(t, uint32(LoResFontAddr), loResGlyphAddr(0))
	assert.Equal(t, uint32(LoResFontAddr+5*0xF), loResGlyphAddr(0xF))
}

func TestHiResGlyphAddr(t *testing.T) {
	assert.Equal(t, uint32(HiResFontAddr), hiResGlyphAddr(0))
	assert.Equal(t, uint32(HiResFontAddr+10*0xF), hiResGlyphAddr(0xF))
}

func TestHiResFontDoesNotOverlapLoResFont(t *testing.T) {
	assert.True(t, HiResFontAddr >= LoResFontAddr+len(LoResFont))
}
