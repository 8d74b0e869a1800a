package chip8

import (
	"context"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestSchedulerStopsCleanlyOnExit(t *testing.T) {
	m, err := New(Config{Arch: ArchSuperCHIP11, ClockSpeed: 1000}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	load(t, m, 0x00FD)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = NewScheduler(m).Run(ctx)
	assert.NoError(t, err)
	assert.True(t, m.Halted())
}

func TestSchedulerPropagatesFatalTrap(t *testing.T) {
	m, err := New(Config{Arch: ArchCHIP8, ClockSpeed: 1000}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	load(t, m, 0x00EE) // RET with an empty stack

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = NewScheduler(m).Run(ctx)
	assert.Error(t, err, err.Error())

	_, ok := err.(StackUnderflowTrap)
	assert.True(t, ok)
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	m, err := New(Config{Arch: ArchCHIP8}, NullDisplay{}, NullInput{}, NullAudio{})
	assert.NoError(t, err)
	load(t, m, 0x1200) // tight infinite loop, jumps to itself

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = NewScheduler(m).Run(ctx)
	assert.NoError(t, err)
}
