package chip8

// opLDByte loads Vx = nn (6XNN).
func opLDByte(m *Machine, word uint16) error {
	m.Reg.V[opX(word)] = opNN(word)
	return nil
}

// opADDByte computes Vx += nn without touching VF (7XNN).
func opADDByte(m *Machine, word uint16) error {
	m.Reg.V[opX(word)] += opNN(word)
	return nil
}

// opLDReg loads Vx = Vy (8XY0).
func opLDReg(m *Machine, word uint16) error {
	m.Reg.V[opX(word)] = m.Reg.V[opY(word)]
	return nil
}

// opOR computes Vx |= Vy, clearing VF when the logic quirk is active
// (8XY1, spec section 4.8).
func opOR(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	m.Reg.V[x] |= m.Reg.V[y]
	if m.preset.Quirks.Logic {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opAND computes Vx &= Vy (8XY2).
func opAND(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	m.Reg.V[x] &= m.Reg.V[y]
	if m.preset.Quirks.Logic {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opXOR computes Vx ^= Vy (8XY3).
func opXOR(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	m.Reg.V[x] ^= m.Reg.V[y]
	if m.preset.Quirks.Logic {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opADDReg computes Vx += Vy, setting VF to 1 on unsigned overflow (8XY4).
// VF is always written last, matching spec section 9's settled decision
// that the non-goal is the *unused* Vf-ordering quirk, not the ordering
// itself -- every dialect here computes the result before touching VF.
func opADDReg(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	sum := uint16(m.Reg.V[x]) + uint16(m.Reg.V[y])
	m.Reg.V[x] = byte(sum)
	if sum > 0xFF {
		m.Reg.V[0xF] = 1
	} else {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opSUB computes Vx -= Vy, setting VF to 1 when no borrow occurred (8XY5).
func opSUB(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	vx, vy := m.Reg.V[x], m.Reg.V[y]
	m.Reg.V[x] = vx - vy
	if vx >= vy {
		m.Reg.V[0xF] = 1
	} else {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opSHR computes Vx >>= 1 (shift quirk on: Vx in place; shift quirk off:
// Vx = Vy >> 1), setting VF to the bit shifted out (8XY6, spec section
// 4.8).
func opSHR(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	src := m.Reg.V[x]
	if !m.preset.Quirks.Shift {
		src = m.Reg.V[y]
	}
	m.Reg.V[x] = src >> 1
	m.Reg.V[0xF] = src & 0x1
	return nil
}

// opSUBN computes Vx = Vy - Vx, setting VF to 1 when no borrow occurred
// (8XY7).
func opSUBN(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	vx, vy := m.Reg.V[x], m.Reg.V[y]
	m.Reg.V[x] = vy - vx
	if vy >= vx {
		m.Reg.V[0xF] = 1
	} else {
		m.Reg.V[0xF] = 0
	}
	return nil
}

// opSHL computes Vx <<= 1 (shift quirk on: Vx in place; shift quirk off:
// Vx = Vy << 1), setting VF to the bit shifted out (8XYE).
func opSHL(m *Machine, word uint16) error {
	x, y := opX(word), opY(word)
	src := m.Reg.V[x]
	if !m.preset.Quirks.Shift {
		src = m.Reg.V[y]
	}
	m.Reg.V[x] = src << 1
	m.Reg.V[0xF] = src >> 7 & 0x1
	return nil
}

// opRND computes Vx = random() & nn (CXNN).
func opRND(m *Machine, word uint16) error {
	m.Reg.V[opX(word)] = byte(m.rng.Intn(256)) & opNN(word)
	return nil
}
