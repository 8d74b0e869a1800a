package chip8

// opLDVxDT loads Vx = DT (FX07).
func opLDVxDT(m *Machine, word uint16) error {
	m.Reg.V[opX(word)] = m.Reg.DT
	return nil
}

// opLDDTVx loads DT = Vx (FX15).
func opLDDTVx(m *Machine, word uint16) error {
	m.Reg.DT = m.Reg.V[opX(word)]
	return nil
}

// opLDSTVx loads ST = Vx (FX18).
func opLDSTVx(m *Machine, word uint16) error {
	m.Reg.ST = m.Reg.V[opX(word)]
	return nil
}

// opPitch sets the XO-CHIP playback pitch register from Vx (FX3A).
func opPitch(m *Machine, word uint16) error {
	m.pitchReg = m.Reg.V[opX(word)]
	return nil
}
