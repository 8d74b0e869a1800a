package chip8

// opFunc is a decoded instruction handler. word is the full 16-bit
// instruction as fetched; handlers pull whichever nibble fields they need
// out of it themselves via the op* helpers below.
type opFunc func(m *Machine, word uint16) error

// Field extraction follows the standard CHIP-8 opcode layout: a high
// nibble selecting the family, then x/y/n or nn/nnn operands depending on
// the family (spec section 4.1).
func opHi(word uint16) uint16  { return word >> 12 }
func opX(word uint16) byte     { return byte(word >> 8 & 0xF) }
func opY(word uint16) byte     { return byte(word >> 4 & 0xF) }
func opN(word uint16) byte     { return byte(word & 0xF) }
func opNN(word uint16) byte    { return byte(word & 0xFF) }
func opNNN(word uint16) uint16 { return word & 0xFFF }

// dispatchTable is everything New needs to decode instructions for one
// architecture: a top-level table keyed by the high nibble, plus secondary
// tables for the six families (0, 5, 8, 9, E, F) whose low bits select
// between several unrelated instructions (keyed on the full word for 0, the
// low nibble for 5, 8 and 9, and the low byte for E and F). This mirrors scchip/cpu.py's
// self.instructions dict of dicts, built once at construction time rather
// than re-dispatched with a chain of if/else on every Step -- and, per
// spec section 4.1, only registers the opcodes available on the selected
// architecture, so a Super-CHIP-only opcode run under plain CHIP-8 falls
// through to invalidOpcode.
type dispatchTable struct {
	primary [16]opFunc
	zero    map[uint16]opFunc
	five    map[byte]opFunc
	eight   map[byte]opFunc
	nine    map[byte]opFunc
	e       map[byte]opFunc
	f       map[byte]opFunc
}

func buildDispatch(preset ArchitecturePreset) *dispatchTable {
	arch := preset.Arch
	d := &dispatchTable{
		zero:  map[uint16]opFunc{},
		five:  map[byte]opFunc{},
		eight: map[byte]opFunc{},
		nine:  map[byte]opFunc{},
		e:     map[byte]opFunc{},
		f:     map[byte]opFunc{},
	}

	d.primary[0x0] = dispatch0
	d.primary[0x1] = opJP
	d.primary[0x2] = opCALL
	d.primary[0x3] = opSEByte
	d.primary[0x4] = opSNEByte
	d.primary[0x5] = dispatch5
	d.primary[0x6] = opLDByte
	d.primary[0x7] = opADDByte
	d.primary[0x8] = dispatch8
	d.primary[0x9] = dispatch9
	d.primary[0xA] = opLDI
	d.primary[0xB] = opJPV0
	d.primary[0xC] = opRND
	d.primary[0xD] = opDRW
	d.primary[0xE] = dispatchE
	d.primary[0xF] = dispatchF

	d.zero[0x00E0] = opCLS
	d.zero[0x00EE] = opRET

	d.five[0x0] = opSERegs

	d.eight[0x0] = opLDReg
	d.eight[0x1] = opOR
	d.eight[0x2] = opAND
	d.eight[0x3] = opXOR
	d.eight[0x4] = opADDReg
	d.eight[0x5] = opSUB
	d.eight[0x6] = opSHR
	d.eight[0x7] = opSUBN
	d.eight[0xE] = opSHL

	d.nine[0x0] = opSNERegs

	d.e[0x9E] = opSKP
	d.e[0xA1] = opSKNP

	d.f[0x07] = opLDVxDT
	d.f[0x0A] = opLDVxK
	d.f[0x15] = opLDDTVx
	d.f[0x18] = opLDSTVx
	d.f[0x1E] = opADDIVx
	d.f[0x29] = opLDFVx
	d.f[0x33] = opLDBVx
	d.f[0x55] = opLDIVx
	d.f[0x65] = opLDVxI

	if schipOrLater(arch) {
		d.zero[0x00FD] = opExit
		d.zero[0x00FE] = opLoRes
		d.zero[0x00FF] = opHiRes
		d.f[0x75] = opLDRVx
		d.f[0x85] = opLDVxR
	}

	if arch >= ArchSuperCHIP11 {
		d.f[0x30] = opLDHFVx
		d.zero[0x00FB] = opScrollRight
		d.zero[0x00FC] = opScrollLeft
		for n := uint16(0x0); n <= 0xF; n++ {
			d.zero[0x00C0|n] = opScrollDown
		}
	}

	if arch >= ArchXOCHIP {
		for n := uint16(0x0); n <= 0xF; n++ {
			d.zero[0x00D0|n] = opScrollUp
		}
		d.five[0x2] = opSaveRange
		d.five[0x3] = opLoadRange
		d.f[0x01] = opPlaneMask
		d.f[0x02] = opLoadPattern
		d.f[0x3A] = opPitch
	}

	return d
}

func dispatch0(m *Machine, word uint16) error {
	if fn, ok := m.dispatch.zero[word]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}

func dispatch5(m *Machine, word uint16) error {
	if fn, ok := m.dispatch.five[opN(word)]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}

func dispatch8(m *Machine, word uint16) error {
	if fn, ok := m.dispatch.eight[opN(word)]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}

func dispatch9(m *Machine, word uint16) error {
	if fn, ok := m.dispatch.nine[opN(word)]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}

func dispatchE(m *Machine, word uint16) error {
	if fn, ok := m.dispatch.e[opNN(word)]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}

func dispatchF(m *Machine, word uint16) error {
	if word == 0xF000 && m.preset.Arch >= ArchXOCHIP {
		// F000 NNNN: the second word is the operand, fetched by opLDILong
		// itself since it alone needs to advance PC by 4, not 2.
		return opLDILong(m, word)
	}
	if fn, ok := m.dispatch.f[opNN(word)]; ok {
		return fn(m, word)
	}
	return m.invalidOpcode(word)
}
