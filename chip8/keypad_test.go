package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

type fixedInput struct {
	keys map[byte]bool
}

func (f fixedInput) KeyDown(key byte) bool { return f.keys[key] }
func (f fixedInput) AnyKey() (byte, bool)  { return 0, false }

func TestKeypadPollAndDown(t *testing.T) {
	k := NewKeypad()
	k.Poll(fixedInput{keys: map[byte]bool{0x5: true}})

	assert.True(t, k.Down(0x5))
	assert.False(t, k.Down(0x6))
}

func TestKeypadResolveWaitsForPressThenRelease(t *testing.T) {
	k := NewKeypad()
	k.beginWait()

	k.Poll(fixedInput{keys: map[byte]bool{}})
	_, ok := k.resolve()
	assert.False(t, ok)

	k.Poll(fixedInput{keys: map[byte]bool{0xA: true}})
	_, ok = k.resolve()
	assert.False(t, ok)
	assert.True(t, k.Waiting())

	k.Poll(fixedInput{keys: map[byte]bool{}})
	key, ok := k.resolve()
	assert.True(t, ok)
	assert.Equal(t, byte(0xA), key)
	assert.False(t, k.Waiting())
}
