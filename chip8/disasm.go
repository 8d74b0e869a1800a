package chip8

import "fmt"

// Disassemble renders the one instruction at addr as a mnemonic line,
// extended from the teacher's single-dialect chip8.Disassemble to the full
// Super-CHIP/XO-CHIP opcode set. Used to build the disassembly snippet a
// host attaches to trap reports (spec section 7).
func (m *Machine) Disassemble(addr uint16) string {
	if int(addr) >= m.Mem.Size()-1 {
		return ""
	}

	word := m.fetch(addr)
	return fmt.Sprintf("%04X - %s", addr, mnemonic(word))
}

func mnemonic(word uint16) string {
	a, b, n := opNNN(word), opNN(word), opN(word)
	x, y := opX(word), opY(word)

	switch {
	case word == 0x00E0:
		return "CLS"
	case word == 0x00EE:
		return "RET"
	case word == 0x00FD:
		return "EXIT"
	case word == 0x00FE:
		return "LOW"
	case word == 0x00FF:
		return "HIGH"
	case word&0xFFF0 == 0x00C0:
		return fmt.Sprintf("SCD    %d", n)
	case word&0xFFF0 == 0x00D0:
		return fmt.Sprintf("SCU    %d", n)
	case word == 0x00FB:
		return "SCR"
	case word == 0x00FC:
		return "SCL"
	case word&0xF000 == 0x0000:
		return fmt.Sprintf("SYS    #%03X", a)
	case word&0xF000 == 0x1000:
		return fmt.Sprintf("JP     #%03X", a)
	case word&0xF000 == 0x2000:
		return fmt.Sprintf("CALL   #%03X", a)
	case word&0xF000 == 0x3000:
		return fmt.Sprintf("SE     V%X, #%02X", x, b)
	case word&0xF000 == 0x4000:
		return fmt.Sprintf("SNE    V%X, #%02X", x, b)
	case word&0xF00F == 0x5000:
		return fmt.Sprintf("SE     V%X, V%X", x, y)
	case word&0xF00F == 0x5002:
		return fmt.Sprintf("SAVE   V%X-V%X", x, y)
	case word&0xF00F == 0x5003:
		return fmt.Sprintf("LOAD   V%X-V%X", x, y)
	case word&0xF000 == 0x6000:
		return fmt.Sprintf("LD     V%X, #%02X", x, b)
	case word&0xF000 == 0x7000:
		return fmt.Sprintf("ADD    V%X, #%02X", x, b)
	case word&0xF00F == 0x8000:
		return fmt.Sprintf("LD     V%X, V%X", x, y)
	case word&0xF00F == 0x8001:
		return fmt.Sprintf("OR     V%X, V%X", x, y)
	case word&0xF00F == 0x8002:
		return fmt.Sprintf("AND    V%X, V%X", x, y)
	case word&0xF00F == 0x8003:
		return fmt.Sprintf("XOR    V%X, V%X", x, y)
	case word&0xF00F == 0x8004:
		return fmt.Sprintf("ADD    V%X, V%X", x, y)
	case word&0xF00F == 0x8005:
		return fmt.Sprintf("SUB    V%X, V%X", x, y)
	case word&0xF00F == 0x8006:
		return fmt.Sprintf("SHR    V%X, V%X", x, y)
	case word&0xF00F == 0x8007:
		return fmt.Sprintf("SUBN   V%X, V%X", x, y)
	case word&0xF00F == 0x800E:
		return fmt.Sprintf("SHL    V%X, V%X", x, y)
	case word&0xF00F == 0x9000:
		return fmt.Sprintf("SNE    V%X, V%X", x, y)
	case word&0xF000 == 0xA000:
		return fmt.Sprintf("LD     I, #%03X", a)
	case word&0xF000 == 0xB000:
		return fmt.Sprintf("JP     V0, #%03X", a)
	case word&0xF000 == 0xC000:
		return fmt.Sprintf("RND    V%X, #%02X", x, b)
	case word&0xF000 == 0xD000:
		return fmt.Sprintf("DRW    V%X, V%X, %d", x, y, n)
	case word&0xF0FF == 0xE09E:
		return fmt.Sprintf("SKP    V%X", x)
	case word&0xF0FF == 0xE0A1:
		return fmt.Sprintf("SKNP   V%X", x)
	case word&0xF0FF == 0xF001:
		return fmt.Sprintf("PLANE  %d", x)
	case word == 0xF000:
		return "LD     I, long"
	case word&0xF0FF == 0xF002:
		return "LOAD   audio"
	case word&0xF0FF == 0xF007:
		return fmt.Sprintf("LD     V%X, DT", x)
	case word&0xF0FF == 0xF00A:
		return fmt.Sprintf("LD     V%X, K", x)
	case word&0xF0FF == 0xF015:
		return fmt.Sprintf("LD     DT, V%X", x)
	case word&0xF0FF == 0xF018:
		return fmt.Sprintf("LD     ST, V%X", x)
	case word&0xF0FF == 0xF01E:
		return fmt.Sprintf("ADD    I, V%X", x)
	case word&0xF0FF == 0xF029:
		return fmt.Sprintf("LD     F, V%X", x)
	case word&0xF0FF == 0xF030:
		return fmt.Sprintf("LD     HF, V%X", x)
	case word&0xF0FF == 0xF033:
		return fmt.Sprintf("LD     B, V%X", x)
	case word&0xF0FF == 0xF03A:
		return fmt.Sprintf("PITCH  V%X", x)
	case word&0xF0FF == 0xF055:
		return fmt.Sprintf("LD     [I], V%X", x)
	case word&0xF0FF == 0xF065:
		return fmt.Sprintf("LD     V%X, [I]", x)
	case word&0xF0FF == 0xF075:
		return fmt.Sprintf("LD     R, V%X", x)
	case word&0xF0FF == 0xF085:
		return fmt.Sprintf("LD     V%X, R", x)
	}

	return "??"
}
