package object

import "time"

// Timer is a countdown owned by the entity it paces.
type Timer struct {
	Duration  time.Duration // Value restored by Reset
	Remaining time.Duration // Never negative
}

// NewTimer creates a timer that finishes after d.
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d, Remaining: d}
}

// NewReadyTimer creates a timer that is already finished.
func NewReadyTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick counts the timer down by dt, flooring at zero, and reports whether it
// has finished.
func (t *Timer) Tick(dt time.Duration) bool {
	if dt > 0 {
		t.Remaining -= dt
		if t.Remaining < 0 {
			t.Remaining = 0
		}
	}
	return t.Remaining == 0
}

// Reset restarts the countdown at its fixed duration.
func (t *Timer) Reset() {
	t.Remaining = t.Duration
}

// Finished reports whether the countdown has reached zero.
func (t Timer) Finished() bool {
	return t.Remaining == 0
}
