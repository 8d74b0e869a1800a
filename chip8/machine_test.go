package chip8

import (
	"crypto/sha256"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func newTestMachine(t *testing.T, arch Architecture) *Machine {
	t.Helper()
	m, err := New(Config{Arch: arch}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	return m
}

func load(t *testing.T, m *Machine, program ...uint16) {
	t.Helper()
	bytes := make([]byte, 0, len(program)*2)
	for _, word := range program {
		bytes = append(bytes, byte(word>>8), byte(word))
	}
	assert.NoError(t, m.LoadROM(bytes))
}

func TestResetInstallsFontsAndEntryPoint(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	assert.Equal(t, uint16(ProgramStart), m.Reg.PC)

	loRes, _ := FontChecksums()
	assert.Equal(t, loRes, sha256.Sum256(m.Mem.ReadBlock(LoResFontAddr, len(LoResFont))))
}

func TestLoadROMRejectsOversizedProgram(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	huge := make([]byte, m.Mem.Size())

	err := m.LoadROM(huge)
	assert.Error(t, err, err.Error())
}

func TestStepJP(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x1300)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x300), m.Reg.PC)
}

func TestStepCallAndReturn(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x2300)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x300), m.Reg.PC)
	assert.Equal(t, 1, m.Stack.Depth())

	m.Mem.WriteBlock(0x300, []byte{0x00, 0xEE})
	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x202), m.Reg.PC)
}

func TestStepReturnUnderflowHalts(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x00EE)

	err := m.Step()
	assert.Error(t, err, err.Error())
	assert.True(t, m.Halted())

	_, ok := err.(StackUnderflowTrap)
	assert.True(t, ok)
}

func TestStepInvalidOpcodeHaltsWithoutDebugMode(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x5001) // 5XY1 is not a defined instruction

	err := m.Step()
	assert.Error(t, err, err.Error())
	assert.True(t, m.Halted())
}

func TestStepInvalidOpcodeSkipsUnderDebugMode(t *testing.T) {
	m, err := New(Config{Arch: ArchCHIP8, DebugMode: true}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	load(t, m, 0x5001, 0x1300)

	assert.NoError(t, m.Step())
	assert.False(t, m.Halted())
	assert.Equal(t, 1, m.Trace.Len())

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x300), m.Reg.PC)
}

func TestAddCarry(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x60FF, 0x6102, 0x8014)

	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())

	assert.Equal(t, byte(1), m.Reg.V[0])
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestSubNoBorrow(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	load(t, m, 0x6005, 0x6103, 0x8015)

	for i := 0; i < 3; i++ {
		assert.NoError(t, m.Step())
	}

	assert.Equal(t, byte(2), m.Reg.V[0])
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestShiftQuirkInPlace(t *testing.T) {
	m := newTestMachine(t, ArchSuperCHIP11) // shift quirk on
	load(t, m, 0x6003, 0x8006)

	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())

	assert.Equal(t, byte(1), m.Reg.V[0])
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestShiftQuirkOffUsesVy(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8) // shift quirk off
	load(t, m, 0x6003, 0x8106)

	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())

	assert.Equal(t, byte(1), m.Reg.V[1])
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestLogicQuirkClearsVF(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8) // logic quirk on
	m.Reg.V[0xF] = 1
	load(t, m, 0x8011)

	assert.NoError(t, m.Step())
	assert.Equal(t, byte(0), m.Reg.V[0xF])
}

func TestDrawSetsCollisionFlag(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8)
	m.Mem.WriteBlock(0x300, []byte{0xFF})
	m.Reg.I = 0x300
	load(t, m, 0xD001, 0xD001)

	assert.NoError(t, m.Step())
	assert.Equal(t, byte(0), m.Reg.V[0xF])

	m.tick() // CHIP-8's sprite_delay quirk allows one draw per tick
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestDrawCountsRowsOnSuperChip11(t *testing.T) {
	m := newTestMachine(t, ArchSuperCHIP11)
	m.Mem.WriteBlock(0x300, []byte{0xFF, 0xFF})
	m.Reg.I = 0x300
	load(t, m, 0xD002, 0xD002)

	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(2), m.Reg.V[0xF])
}

func TestIndexOverflowWraps(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8) // index_overflow quirk off: wraps to 12 bits
	m.Reg.I = 0xFFF
	m.Reg.V[0] = 2
	load(t, m, 0xF01E)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x001), m.Reg.I)
}

func TestIndexOverflowQuirkSetsVF(t *testing.T) {
	on := true
	m, err := New(Config{Arch: ArchCHIP48, Overrides: QuirkOverrides{IndexOverflow: &on}}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	m.Reg.I = 0xFFF
	m.Reg.V[0] = 2
	load(t, m, 0xF01E)

	assert.NoError(t, m.Step())
	assert.Equal(t, byte(1), m.Reg.V[0xF])
}

func TestLoadQuirkOffAdvancesIndex(t *testing.T) {
	m := newTestMachine(t, ArchSuperCHIP10) // load off, index_increment off: advances by x+1
	m.Reg.I = 0x300
	m.Reg.V[0] = 1
	m.Reg.V[1] = 2
	load(t, m, 0xF155)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x302), m.Reg.I)
}

func TestIndexIncrementQuirkShrinksLoadAdvance(t *testing.T) {
	m := newTestMachine(t, ArchCHIP48) // load off, index_increment on: advances by x
	m.Reg.I = 0x300
	m.Reg.V[0] = 1
	m.Reg.V[1] = 2
	load(t, m, 0xF155)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x301), m.Reg.I)
}

func TestLoadQuirkOnLeavesIndexAlone(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8) // load quirk on
	m.Reg.I = 0x300
	load(t, m, 0xF055)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(0x300), m.Reg.I)
}

func TestFx0ACooperativeWait(t *testing.T) {
	in := &toggleInput{}
	m, err := New(Config{Arch: ArchCHIP8}, NullDisplay{}, in, NullAudio{})
	assert.NoError(t, err)
	load(t, m, 0xF00A)

	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(ProgramStart), m.Reg.PC) // rewound, still waiting

	in.down = true
	m.Keys.Poll(in)
	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(ProgramStart), m.Reg.PC) // pressed, waiting for release

	in.down = false
	m.Keys.Poll(in)
	assert.NoError(t, m.Step())
	assert.Equal(t, uint16(ProgramStart+2), m.Reg.PC)
	assert.Equal(t, byte(0), m.Reg.V[0])
}

type toggleInput struct {
	down bool
}

func (t *toggleInput) KeyDown(key byte) bool { return key == 0 && t.down }
func (t *toggleInput) AnyKey() (byte, bool)  { return 0, false }

func TestSpriteDelayQuirkGatesSecondDraw(t *testing.T) {
	m := newTestMachine(t, ArchCHIP8) // sprite_delay quirk on
	m.Mem.WriteBlock(0x300, []byte{0xFF})
	m.Reg.I = 0x300
	load(t, m, 0xD001, 0xD001)

	assert.NoError(t, m.Step())
	pc := m.Reg.PC
	assert.NoError(t, m.Step())
	assert.Equal(t, pc, m.Reg.PC) // rewound, not yet drawn again

	m.tick()
	assert.NoError(t, m.Step())
	assert.Equal(t, pc+2, m.Reg.PC)
}
