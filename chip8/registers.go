package chip8

// Registers holds everything about machine state that isn't memory, the
// framebuffer or the stack: the sixteen general-purpose V registers, the
// index register, the program counter, and the two timers.
//
// V is a fixed [16]byte rather than a slice, matching the teacher's
// chip8.V field -- there is never a reason to resize it, on any dialect.
type Registers struct {
	V  [16]byte
	I  uint16
	PC uint16
	DT byte // delay timer, decremented at 60Hz while nonzero
	ST byte // sound timer, decremented at 60Hz while nonzero; nonzero sounds the buzzer

	// UserFlags backs FX75/FX85 (save/restore V0..Vx to/from persistent
	// flag storage). Sixteen slots are always allocated; outside XO-CHIP
	// only the first eight (x <= 7) are addressable, per
	// scchip/cpu.py._Fx75/_Fx85 -- a larger x there is a decode error, not
	// a silent truncation.
	UserFlags [16]byte
}

// Reset zeroes every register and points PC at the program's entry point.
func (r *Registers) Reset() {
	*r = Registers{PC: ProgramStart}
}
