package chip8

// opSKP skips the next instruction if key Vx is held (EX9E).
func opSKP(m *Machine, word uint16) error {
	if m.Keys.Down(m.Reg.V[opX(word)]) {
		m.skip()
	}
	return nil
}

// opSKNP skips the next instruction if key Vx is not held (EXA1).
func opSKNP(m *Machine, word uint16) error {
	if !m.Keys.Down(m.Reg.V[opX(word)]) {
		m.skip()
	}
	return nil
}

// opLDVxK waits for a key to be pressed and released, then loads its value
// into Vx (FX0A). The wait is cooperative: while no key has resolved yet,
// PC is rewound so the same instruction re-executes next Step rather than
// blocking the caller (spec section 5).
func opLDVxK(m *Machine, word uint16) error {
	if !m.Keys.Waiting() {
		m.Keys.beginWait()
	}

	key, ok := m.Keys.resolve()
	if !ok {
		m.Reg.PC -= 2
		return nil
	}

	m.Reg.V[opX(word)] = key
	return nil
}
