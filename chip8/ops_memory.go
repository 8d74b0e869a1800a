package chip8

// opLDI loads I = nnn (ANNN).
func opLDI(m *Machine, word uint16) error {
	m.Reg.I = opNNN(word)
	return nil
}

// opLDILong loads I = NNNN, a full 16-bit address taken from the word
// immediately following the opcode (F000 NNNN, XO-CHIP). PC is advanced an
// extra two bytes to skip over the operand word.
func opLDILong(m *Machine, word uint16) error {
	addr := m.fetch(m.Reg.PC)
	m.Reg.PC += 2
	m.Reg.I = addr
	return nil
}

// opADDIVx computes I += Vx. When the index_overflow quirk is enabled,
// VF is set to 1 if the result overflows the architecture's addressable
// range, matching the CHIP-48 behaviour several titles (Spacefight 2091!)
// were written to rely on (spec section 4.8).
func opADDIVx(m *Machine, word uint16) error {
	sum := uint32(m.Reg.I) + uint32(m.Reg.V[opX(word)])
	limit := uint32(1) << uint(m.preset.IndexBits)

	if m.preset.Quirks.IndexOverflow {
		if sum >= limit {
			m.Reg.V[0xF] = 1
		} else {
			m.Reg.V[0xF] = 0
		}
	}

	m.Reg.I = m.wrapIndex(sum)
	return nil
}

// opLDFVx sets I to the low-res glyph address for digit Vx (FX29).
func opLDFVx(m *Machine, word uint16) error {
	m.Reg.I = uint16(loResGlyphAddr(m.Reg.V[opX(word)]))
	return nil
}

// opLDHFVx sets I to the hi-res glyph address for digit Vx (FX30,
// Super-CHIP and later).
func opLDHFVx(m *Machine, word uint16) error {
	m.Reg.I = uint16(hiResGlyphAddr(m.Reg.V[opX(word)]))
	return nil
}

// opLDBVx stores the three decimal digits of Vx at I, I+1, I+2 (FX33).
func opLDBVx(m *Machine, word uint16) error {
	v := m.Reg.V[opX(word)]
	if err := m.checkAddr(word, uint32(m.Reg.I)+2); err != nil {
		return err
	}

	m.Mem.Write(uint32(m.Reg.I), v/100)
	m.Mem.Write(uint32(m.Reg.I)+1, v/10%10)
	m.Mem.Write(uint32(m.Reg.I)+2, v%10)
	return nil
}

// loadIndexAdvance returns how far I moves after FX55/FX65 for register
// count x. When the load quirk is off, I always advances; the
// index_increment quirk shrinks that advance from x+1 to x, matching
// scchip/cpu.py._post_Fx55_Fx65 (spec section 4.8).
func (m *Machine) loadIndexAdvance(x byte) uint32 {
	if m.preset.Quirks.Load {
		return 0
	}
	if m.preset.Quirks.IndexIncrement {
		return uint32(x)
	}
	return uint32(x) + 1
}

// opLDIVx stores V0..Vx to memory starting at I (FX55). When the load
// quirk is off, I is left pointing past the last byte written, the
// original CHIP-8 behaviour several early programs depend on (spec section
// 4.8) -- or at the last byte written when the index_increment quirk is on
// (see loadIndexAdvance).
func opLDIVx(m *Machine, word uint16) error {
	x := opX(word)
	if err := m.checkAddr(word, uint32(m.Reg.I)+uint32(x)); err != nil {
		return err
	}

	for i := byte(0); i <= x; i++ {
		m.Mem.Write(uint32(m.Reg.I)+uint32(i), m.Reg.V[i])
	}

	m.Reg.I = m.wrapIndex(uint32(m.Reg.I) + m.loadIndexAdvance(x))
	return nil
}

// opLDVxI loads V0..Vx from memory starting at I (FX65), with the same
// I-advance behaviour as opLDIVx.
func opLDVxI(m *Machine, word uint16) error {
	x := opX(word)
	if err := m.checkAddr(word, uint32(m.Reg.I)+uint32(x)); err != nil {
		return err
	}

	for i := byte(0); i <= x; i++ {
		m.Reg.V[i] = m.Mem.Read(uint32(m.Reg.I) + uint32(i))
	}

	m.Reg.I = m.wrapIndex(uint32(m.Reg.I) + m.loadIndexAdvance(x))
	return nil
}

// maxUserFlagIndex is the highest x that FX75/FX85 accept outside
// XO-CHIP -- higher indices are a decode error there, not a silent
// truncation (scchip/cpu.py._Fx75/_Fx85).
const maxUserFlagIndex = 7

// opLDRVx saves V0..Vx into persistent flag storage (FX75, Super-CHIP and
// later).
func opLDRVx(m *Machine, word uint16) error {
	x := opX(word)
	if m.preset.Arch < ArchXOCHIP && x > maxUserFlagIndex {
		return m.invalidOpcode(word)
	}

	for i := byte(0); i <= x; i++ {
		m.Reg.UserFlags[i] = m.Reg.V[i]
	}
	return nil
}

// opLDVxR restores V0..Vx from persistent flag storage (FX85, Super-CHIP
// and later).
func opLDVxR(m *Machine, word uint16) error {
	x := opX(word)
	if m.preset.Arch < ArchXOCHIP && x > maxUserFlagIndex {
		return m.invalidOpcode(word)
	}

	for i := byte(0); i <= x; i++ {
		m.Reg.V[i] = m.Reg.UserFlags[i]
	}
	return nil
}

// registerRange walks the register indices from x to y inclusive, in
// whichever direction x > y or x < y implies -- 5XY2/5XY3 allow a
// descending range, storing Vx first (XO-CHIP).
func registerRange(x, y byte) []byte {
	if x <= y {
		seq := make([]byte, 0, int(y-x)+1)
		for i := x; ; i++ {
			seq = append(seq, i)
			if i == y {
				break
			}
		}
		return seq
	}

	seq := make([]byte, 0, int(x-y)+1)
	for i := x; ; i-- {
		seq = append(seq, i)
		if i == y {
			break
		}
	}
	return seq
}

// opSaveRange stores Vx..Vy (inclusive, in either direction) to memory
// starting at I without moving I (5XY2, XO-CHIP).
func opSaveRange(m *Machine, word uint16) error {
	seq := registerRange(opX(word), opY(word))
	if err := m.checkAddr(word, uint32(m.Reg.I)+uint32(len(seq))-1); err != nil {
		return err
	}

	for i, reg := range seq {
		m.Mem.Write(uint32(m.Reg.I)+uint32(i), m.Reg.V[reg])
	}
	return nil
}

// opLoadRange loads Vx..Vy (inclusive, in either direction) from memory
// starting at I without moving I (5XY3, XO-CHIP).
func opLoadRange(m *Machine, word uint16) error {
	seq := registerRange(opX(word), opY(word))
	if err := m.checkAddr(word, uint32(m.Reg.I)+uint32(len(seq))-1); err != nil {
		return err
	}

	for i, reg := range seq {
		m.Reg.V[reg] = m.Mem.Read(uint32(m.Reg.I) + uint32(i))
	}
	return nil
}
