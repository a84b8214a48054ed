package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRate reports a tick rate that is zero or negative.
var ErrInvalidRate = errors.New("tick rate must be positive")

// Interval returns the pause between ticks for the given ticks-per-second
// rate, truncated to whole milliseconds (1000/tps).
func Interval(tps int) (time.Duration, error) {
	if tps <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRate, tps)
	}
	return time.Duration(1000/tps) * time.Millisecond, nil
}

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// when the caller is driven by a faster frame clock.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the current tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
