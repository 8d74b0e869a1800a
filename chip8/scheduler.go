package chip8

import (
	"context"
	"time"
)

// tickRate is the fixed 60Hz rate at which timers decrement, input is
// polled and a frame is presented, independent of CPU clock speed (spec
// section 5).
const tickRate = time.Second / 60

// uncappedBurst bounds how many cycles Scheduler runs between timer ticks
// when ClockSpeed is 0. True "uncapped" execution is bounded only by host
// performance, which the performance dashboard (out of scope here) would
// otherwise surface; this is a pragmatic ceiling so an uncapped Machine
// with no host-visible feedback can't spin a single Run call forever on a
// runaway program.
const uncappedBurst = 100000

// Scheduler owns the run loop: it paces Machine.Step calls against the
// configured clock speed, and drives the 60Hz timer tick (DT/ST decrement,
// input poll, frame present) on a separate cadence, following the
// teacher's main.go two-ticker loop (one ticker for CPU cycles, one for
// 60Hz video refresh) generalized to a configurable clock rate instead of
// the teacher's fixed 3ms.
type Scheduler struct {
	m *Machine
}

// NewScheduler returns a Scheduler driving m.
func NewScheduler(m *Machine) *Scheduler {
	return &Scheduler{m: m}
}

// Run executes until ctx is cancelled, the machine halts cleanly (00FD),
// or a fatal trap occurs. It returns nil on cancellation or a clean halt,
// and the trap otherwise.
func (s *Scheduler) Run(ctx context.Context) error {
	video := time.NewTicker(tickRate)
	defer video.Stop()

	// clockC is nil (and so never selected) when running uncapped; the
	// burst below drives CPU execution instead.
	var clockC <-chan time.Time
	if s.m.clockSpeed > 0 {
		clock := time.NewTicker(time.Second / time.Duration(s.m.clockSpeed))
		defer clock.Stop()
		clockC = clock.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-video.C:
			s.m.Keys.Poll(s.m.input)
			s.m.tick()

			w, h := s.m.FB.Size()
			s.m.display.Present(s.m.FB.Planes(), w, h)

			if clockC == nil {
				if err := s.runBurst(uncappedBurst); err != nil {
					return err
				}
				if s.m.Halted() {
					return cleanHaltErr(s.m.HaltErr())
				}
			}

		case <-clockC:
			if err := s.m.Step(); err != nil && !isHaltTrap(err) {
				return err
			}
			if s.m.Halted() {
				return cleanHaltErr(s.m.HaltErr())
			}
		}
	}
}

// runBurst executes up to n instructions, stopping early once the machine
// halts.
func (s *Scheduler) runBurst(n int) error {
	for i := 0; i < n && !s.m.Halted(); i++ {
		if err := s.m.Step(); err != nil && !isHaltTrap(err) {
			return err
		}
	}
	return nil
}

func isHaltTrap(err error) bool {
	_, ok := err.(HaltTrap)
	return ok
}

// cleanHaltErr returns nil for an explicit 00FD halt (a normal program
// exit) and passes any other trap through unchanged.
func cleanHaltErr(err error) error {
	if isHaltTrap(err) {
		return nil
	}
	return err
}
