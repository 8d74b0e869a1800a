package chip8

// Keypad tracks which of the 16 hex keys were down on the most recent poll
// and the wait state FX0A needs across Step calls. The Scheduler polls the
// Input port once per timer tick and hands the result to Keypad.Poll
// (spec section 5); Step itself never calls into Input directly, keeping
// the core's only contact with a host-supplied port at the scheduler
// boundary.
type Keypad struct {
	down [16]bool

	// waitingFx0A is true while a Fx0A instruction is parked waiting for a
	// keypress. pressedKey is the key we're waiting to see released, once
	// one has been pressed (haveKey) -- CHIP-8's Fx0A blocks until a key is both
	// pressed and then released, not merely pressed (scchip/cpu.py._Fx0A).
	waitingFx0A bool
	pressedKey  byte
	haveKey     bool
}

// NewKeypad returns a keypad with every key up.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Poll replaces the down-state of all 16 keys, normally called once per
// timer tick with the host Input port's current readings.
func (k *Keypad) Poll(in Input) {
	for key := byte(0); key < 16; key++ {
		k.down[key] = in.KeyDown(key)
	}
}

// Down reports whether key is currently held, per the last Poll.
func (k *Keypad) Down(key byte) bool {
	return k.down[key&0xF]
}

// beginWait arms the Fx0A wait state machine. Called once when Fx0A is
// first decoded.
func (k *Keypad) beginWait() {
	k.waitingFx0A = true
	k.haveKey = false
}

// resolve advances the Fx0A wait state machine using the current key
// snapshot, returning (key, true) once a key has been pressed and then
// released. Until then it returns (0, false) and the caller must rewind PC
// to re-enter Fx0A next cycle rather than busy-wait (spec section 5).
func (k *Keypad) resolve() (byte, bool) {
	if !k.haveKey {
		for key := byte(0); key < 16; key++ {
			if k.down[key] {
				k.pressedKey = key
				k.haveKey = true
				break
			}
		}
		return 0, false
	}

	if k.down[k.pressedKey] {
		return 0, false
	}

	k.waitingFx0A = false
	return k.pressedKey, true
}

// Waiting reports whether a Fx0A wait is currently in progress.
func (k *Keypad) Waiting() bool {
	return k.waitingFx0A
}
