package chip8

// Display, Input and Audio are the three ports a host supplies to a
// Machine. The core never imports a concrete graphics, windowing or audio
// library -- it only calls through these interfaces, which is what lets
// the windowed and terminal frontends live entirely outside this module
// (spec section 1, "Polymorphic ports").
//
// The Null* implementations below satisfy all three and do nothing,
// grounded on scchip/renderers/r_null.py, scchip/inputs/i_null.py and
// scchip/audio/a_null.py -- they exist so this package's own tests can run
// a Machine to completion without any host present.

// Display receives framebuffer snapshots to render.
type Display interface {
	// Present is handed the current plane bytes (as returned by
	// Framebuffer.Planes, one slice per plane the architecture supports)
	// and the active resolution. Present must not retain the plane slices past the
	// call -- they alias Machine-owned storage.
	Present(planes [][]byte, width, height int)
}

// Input reports the live state of the 16-key hex keypad and is polled once
// per timer tick by the Scheduler (spec section 5).
type Input interface {
	// KeyDown reports whether key (0x0-0xF) is currently held.
	KeyDown(key byte) bool

	// AnyKey returns the first currently-held key and true, or (0, false)
	// if no key is held. The core does not call it: FX0A works from the
	// key snapshot taken by Keypad.Poll.
	AnyKey() (byte, bool)
}

// Audio receives the buzzer's state each timer tick, plus the XO-CHIP
// playback pattern/pitch when the guest program sets one.
type Audio interface {
	// SetTone is called whenever ST (the sound timer) transitions between
	// zero and nonzero, reporting whether the buzzer should now be
	// sounding.
	SetTone(on bool)

	// SetPattern is called by XO-CHIP's FX02 (EXT. audio pattern) with the
	// 16-byte pattern buffer and playback pitch; pitch follows the
	// register-driven formula in spec section 4.8 (4000 * 2^((Vx-64)/48)).
	// Hosts without XO-CHIP audio support may ignore this.
	SetPattern(pattern [16]byte, pitchHz float64)
}

// NullDisplay discards every frame. Used by tests and headless runs.
type NullDisplay struct{}

func (NullDisplay) Present(planes [][]byte, width, height int) {}

// NullInput reports no key ever held.
type NullInput struct{}

func (NullInput) KeyDown(key byte) bool { return false }
func (NullInput) AnyKey() (byte, bool)  { return 0, false }

// NullAudio discards every tone and pattern change.
type NullAudio struct{}

func (NullAudio) SetTone(on bool)                              {}
func (NullAudio) SetPattern(pattern [16]byte, pitchHz float64) {}
