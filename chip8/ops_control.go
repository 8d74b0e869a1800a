package chip8

// opRET pops the return stack into PC (00EE).
func opRET(m *Machine, word uint16) error {
	addr, err := m.Stack.Pop()
	if err != nil {
		return StackUnderflowTrap{Word: word, Address: m.Reg.PC - 2}
	}
	m.Reg.PC = addr
	return nil
}

// opJP sets PC to nnn (1NNN).
func opJP(m *Machine, word uint16) error {
	m.Reg.PC = opNNN(word)
	return nil
}

// opCALL pushes the return address and jumps to nnn (2NNN).
func opCALL(m *Machine, word uint16) error {
	if err := m.Stack.Push(m.Reg.PC); err != nil {
		return StackOverflowTrap{Word: word, Address: m.Reg.PC - 2}
	}
	m.Reg.PC = opNNN(word)
	return nil
}

// opSEByte skips the next instruction if Vx == nn (3XNN).
func opSEByte(m *Machine, word uint16) error {
	if m.Reg.V[opX(word)] == opNN(word) {
		m.skip()
	}
	return nil
}

// opSNEByte skips the next instruction if Vx != nn (4XNN).
func opSNEByte(m *Machine, word uint16) error {
	if m.Reg.V[opX(word)] != opNN(word) {
		m.skip()
	}
	return nil
}

// opSERegs skips the next instruction if Vx == Vy (5XY0).
func opSERegs(m *Machine, word uint16) error {
	if m.Reg.V[opX(word)] == m.Reg.V[opY(word)] {
		m.skip()
	}
	return nil
}

// opSNERegs skips the next instruction if Vx != Vy (9XY0).
func opSNERegs(m *Machine, word uint16) error {
	if m.Reg.V[opX(word)] != m.Reg.V[opY(word)] {
		m.skip()
	}
	return nil
}

// opJPV0 jumps to nnn + V0, or to nnn + Vx when the jump quirk is enabled
// and treats the high nibble of nnn as the register index x (BXNN on
// Super-CHIP and later, spec section 4.8).
func opJPV0(m *Machine, word uint16) error {
	if m.preset.Quirks.Jump {
		m.Reg.PC = opNNN(word) + uint16(m.Reg.V[opX(word)])
		return nil
	}
	m.Reg.PC = opNNN(word) + uint16(m.Reg.V[0])
	return nil
}

// opExit halts the machine (00FD, Super-CHIP 1.0+).
func opExit(m *Machine, word uint16) error {
	return HaltTrap{Word: word, Address: m.Reg.PC - 2}
}
