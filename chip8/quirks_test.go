package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPresetDefaults(t *testing.T) {
	tests := []struct {
		name       string
		arch       Architecture
		wantShift  bool
		wantLogic  bool
		wantJump   bool
		wantPlanes int
	}{
		{"chip8", ArchCHIP8, false, true, false, 1},
		{"chip48", ArchCHIP48, true, false, true, 1},
		{"schip1.0", ArchSuperCHIP10, true, false, true, 1},
		{"schip1.1", ArchSuperCHIP11, true, false, true, 1},
		{"xochip", ArchXOCHIP, false, false, false, 2},
		{"xochip16", ArchXOCHIP16, false, false, false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset := Preset(tt.arch)
			assert.Equal(t, tt.wantShift, preset.Quirks.Shift)
			assert.Equal(t, tt.wantLogic, preset.Quirks.Logic)
			assert.Equal(t, tt.wantJump, preset.Quirks.Jump)
			assert.Equal(t, tt.wantPlanes, preset.NumPlanes)
		})
	}
}

func TestPresetIndexWidth(t *testing.T) {
	assert.Equal(t, 12, Preset(ArchCHIP8).IndexBits)
	assert.Equal(t, 16, Preset(ArchXOCHIP).IndexBits)
}

func TestPresetCountsRows(t *testing.T) {
	assert.False(t, Preset(ArchSuperCHIP10).CountsRows)
	assert.True(t, Preset(ArchSuperCHIP11).CountsRows)
	assert.True(t, Preset(ArchXOCHIP).CountsRows)
}

func TestQuirkOverrideWinsOverPreset(t *testing.T) {
	shift := true
	cfg := Config{Arch: ArchCHIP8, Overrides: QuirkOverrides{Shift: &shift}}

	preset, err := cfg.resolve()
	assert.NoError(t, err)
	assert.True(t, preset.Quirks.Shift)
}

func TestConfigRejectsUnknownArchitecture(t *testing.T) {
	cfg := Config{Arch: Architecture(99)}
	_, err := cfg.resolve()
	assert.Error(t, err, err.Error())
}

func TestArchitectureString(t *testing.T) {
	assert.Equal(t, "xochip16", ArchXOCHIP16.String())
	assert.Equal(t, "unknown", Architecture(42).String())
}
