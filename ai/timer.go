package ai

import "time"

// Timer is a cooperative one-shot delay advanced by the owner's tick.
// Starting a running timer restarts it, so waits never stack.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	active   bool
}

// Start (re)arms the timer for d.
func (t *Timer) Start(d time.Duration) {
	t.duration = d
	t.elapsed = 0
	t.active = true
}

// Stop cancels the timer without firing it.
func (t *Timer) Stop() {
	t.active = false
	t.elapsed = 0
}

// Active reports whether the timer is armed.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the time left before the timer fires.
func (t *Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	return max(t.duration-t.elapsed, 0)
}

// Advance moves the timer forward by dt and reports whether it fired.
// A fired timer disarms itself.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.active {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	t.active = false
	return true
}
