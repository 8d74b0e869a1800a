package chip8

import "crypto/sha256"

// LoResFontAddr and HiResFontAddr are where the two bitmap fonts are
// installed at boot. The hi-res slot sits below 0x0A0 as spec section 3
// requires, matching scchip/cpu.py's sysfont_sm_loc/sysfont_bg_loc.
const (
	LoResFontAddr = 0x000
	HiResFontAddr = 0x050
)

// LoResFont holds sixteen 5-byte glyphs (hex digits 0..F), one nibble's
// worth of columns wide, for the classic low-resolution font. This is
// compiled into the binary rather than loaded from a file on disk, since
// file loading is an explicit external collaborator (spec section 1) -- the
// teacher does the same for its RCA 1802 boot ROM, embedding it as a byte
// array rather than reading it from disk at runtime.
var LoResFont = [16 * 5]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// HiResFont holds sixteen 10-byte glyphs for the Super-CHIP big font, used
// by FX30 (LD HF, Vx).
var HiResFont = [16 * 10]byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x3E, 0x7F, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x3C, 0x7E, 0xC3, 0x03, 0x0E, 0x0E, 0x03, 0xC3, 0x7E, 0x3C, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0x7E, 0x3C, // 5
	0x3C, 0x7E, 0xC3, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x60, 0x60, // 7
	0x3C, 0x7E, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0x7E, 0x3C, // 8
	0x3C, 0x7E, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0xC3, 0x7E, 0x3C, // 9
	0x18, 0x3C, 0x66, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, // A
	0xFC, 0xFE, 0xC3, 0xC3, 0xFE, 0xFE, 0xC3, 0xC3, 0xFE, 0xFC, // B
	0x3C, 0x7E, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0x7E, 0x3C, // C
	0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xFF, 0xFF, // E
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xC0, 0xC0, // F
}

// FontChecksums exposes the SHA-256 of each compiled-in font table, so
// tests can confirm the bytes installed into a Machine's memory at boot
// are byte-identical to these tables, per spec section 8 property 5.
func FontChecksums() (loRes, hiRes [32]byte) {
	return sha256.Sum256(LoResFont[:]), sha256.Sum256(HiResFont[:])
}

// installFonts copies both glyph tables into memory at their fixed
// addresses. Called once by Reset.
func installFonts(mem *Memory) {
	mem.WriteBlock(LoResFontAddr, LoResFont[:])
	mem.WriteBlock(HiResFontAddr, HiResFont[:])
}

// loResGlyphAddr returns the address of the low-res glyph for digit d (FX29).
func loResGlyphAddr(d byte) uint32 {
	return LoResFontAddr + uint32(d&0xF)*5
}

// hiResGlyphAddr returns the address of the hi-res glyph for digit d (FX30).
func hiResGlyphAddr(d byte) uint32 {
	return HiResFontAddr + uint32(d&0xF)*10
}
