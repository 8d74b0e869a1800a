package chip8

import (
	"math"
	"math/rand"
)

// Machine is the complete state of one running CHIP-8 family program:
// memory, registers, stack, framebuffer, keypad and timers, plus the
// architecture/quirk configuration that was resolved at construction time.
// It owns no goroutines and touches no wall-clock time itself -- pacing is
// the Scheduler's job (spec section 5).
type Machine struct {
	preset   ArchitecturePreset
	dispatch *dispatchTable

	Mem   *Memory
	Reg   Registers
	Stack *Stack
	FB    *Framebuffer
	Keys  *Keypad
	Trace *Trace

	display Display
	input   Input
	audio   Audio

	rng *rand.Rand

	clockSpeed int
	debugMode  bool
	halted     bool
	haltErr    error

	soundOn             bool
	spriteDrawnThisTick bool

	pattern  [16]byte
	pitchReg byte
}

// New builds a Machine for the given configuration and ports. A zero-value
// Display/Input/Audio is never acceptable -- callers that don't have a
// real host should pass NullDisplay{}, NullInput{} and NullAudio{}.
func New(cfg Config, display Display, input Input, audio Audio) (*Machine, error) {
	preset, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	m := &Machine{
		preset:     preset,
		Mem:        NewMemory(preset.MemorySize),
		Stack:      NewStack(preset.StackCapacity),
		FB:         NewFramebuffer(preset.NumPlanes),
		Keys:       NewKeypad(),
		Trace:      NewTrace(256),
		display:    display,
		input:      input,
		audio:      audio,
		rng:        rand.New(rand.NewSource(1)),
		debugMode:  cfg.DebugMode,
		clockSpeed: cfg.ClockSpeed,
	}

	m.dispatch = buildDispatch(preset)
	m.Reset()

	return m, nil
}

// Preset returns the resolved architecture configuration this Machine was
// built with.
func (m *Machine) Preset() ArchitecturePreset {
	return m.preset
}

// Reset restores registers, stack, framebuffer and keypad to their boot
// state and re-installs both font tables, without reallocating memory.
func (m *Machine) Reset() {
	m.Mem.Clear()
	installFonts(m.Mem)

	m.Reg.Reset()
	m.Stack.Reset()
	m.FB.Resize(64, 32)
	m.FB.SetPlaneMask(1)
	m.Keys = NewKeypad()

	m.halted = false
	m.haltErr = nil
	m.soundOn = false
	m.spriteDrawnThisTick = false
	m.pitchReg = 64
	m.pattern = [16]byte{}
}

// pitchHz converts the XO-CHIP pitch register to a playback frequency,
// following the formula XO-CHIP hosts use to drive FX3A/F002: 4000 *
// 2^((pitch-64)/48) (spec section 4.8).
func (m *Machine) pitchHz() float64 {
	return 4000 * math.Pow(2, (float64(m.pitchReg)-64)/48)
}

// LoadROM copies program into memory starting at ProgramStart. It returns
// ConfigError if the program doesn't fit in the machine's memory.
func (m *Machine) LoadROM(program []byte) error {
	if ProgramStart+len(program) > m.Mem.Size() {
		return ConfigError{Reason: "program too large for target architecture"}
	}

	m.Mem.WriteBlock(ProgramStart, program)
	return nil
}

// Halted reports whether the machine has stopped executing, either because
// it hit 00FD (EXIT) or because a prior Step returned a fatal trap. With
// DebugMode on, invalid opcodes are skipped and do not halt; every other
// trap still does.
func (m *Machine) Halted() bool {
	return m.halted
}

// HaltErr returns the trap that halted the machine, if any.
func (m *Machine) HaltErr() error {
	return m.haltErr
}

// fetch reads the big-endian 16-bit instruction word at addr (spec section
// 4.1). It does not advance PC.
func (m *Machine) fetch(addr uint16) uint16 {
	return uint16(m.Mem.Read(uint32(addr)))<<8 | uint16(m.Mem.Read(uint32(addr)+1))
}

// skip advances PC past the next instruction, the shared tail of every
// conditional-skip opcode (3XNN/4XNN/5XY0/9XY0/EX9E/EXA1). The next word is
// skipped whole: if it is the F000 NNNN long-load prefix, its operand word
// belongs to it and must be skipped too, or the skip lands mid-sequence and
// misdecodes the operand as its own instruction (cpu.py._post_skip).
func (m *Machine) skip() {
	if m.fetch(m.Reg.PC) == 0xF000 {
		m.Reg.PC += 4
		return
	}
	m.Reg.PC += 2
}

// Step decodes and executes exactly one instruction. It returns the trap
// that halted the machine, or nil if execution should continue. When
// DebugMode is set, an InvalidOpcodeTrap is recorded to Trace and skipped
// (PC advanced past the bad word) rather than propagated, per spec section
// 7's debug-mode behaviour; every other trap always halts regardless of
// DebugMode.
func (m *Machine) Step() error {
	if m.halted {
		return m.haltErr
	}

	word := m.fetch(m.Reg.PC)
	m.Reg.PC += 2

	var err error
	if fn := m.dispatch.primary[opHi(word)]; fn != nil {
		err = fn(m, word)
	} else {
		err = m.invalidOpcode(word)
	}

	if err != nil {
		if _, ok := err.(InvalidOpcodeTrap); ok && m.debugMode {
			return nil
		}
		m.halted = true
		m.haltErr = err
		return err
	}

	return nil
}

// invalidOpcode records and returns an InvalidOpcodeTrap for word, fetched
// from the instruction just before the current PC.
func (m *Machine) invalidOpcode(word uint16) error {
	trap := InvalidOpcodeTrap{Word: word, Address: m.Reg.PC - 2}
	if m.debugMode {
		m.Trace.Logf("decode", "skipped %s", trap.Error())
	}
	return trap
}

// checkAddr returns IndexOutOfRangeTrap if location isn't a valid memory
// address on this machine, otherwise nil.
func (m *Machine) checkAddr(word uint16, location uint32) error {
	if location >= uint32(m.Mem.Size()) {
		return IndexOutOfRangeTrap{Word: word, Address: m.Reg.PC - 2, Location: location}
	}
	return nil
}

// wrapIndex masks an index register update to the architecture's index
// width when the index_overflow quirk is off, matching spec section 4.8.
func (m *Machine) wrapIndex(v uint32) uint16 {
	if m.preset.Quirks.IndexOverflow {
		return uint16(v)
	}
	mask := uint32(1)<<uint(m.preset.IndexBits) - 1
	return uint16(v & mask)
}

// tick is called once per 60Hz timer tick by the Scheduler: it decrements
// DT/ST, edge-triggers the buzzer through Audio, and clears the
// once-per-frame sprite_delay gate (spec sections 4.6 and 5).
func (m *Machine) tick() {
	if m.Reg.DT > 0 {
		m.Reg.DT--
	}
	if m.Reg.ST > 0 {
		m.Reg.ST--
	}

	on := m.Reg.ST > 0
	if on != m.soundOn {
		m.soundOn = on
		m.audio.SetTone(on)
	}

	m.spriteDrawnThisTick = false
}
