package timer

import "time"

// Direction selects whether a timer counts up or down.
type Direction uint8

const (
	// Up counts elapsed seconds from zero.
	Up Direction = iota

	// Down counts remaining seconds from the base value. The value keeps
	// falling below zero once the base is exhausted.
	Down
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// Timer is a start/stop/reset counter with whole-second resolution.
// The zero value is a stopped count-up timer at zero.
type Timer struct {
	running   bool
	direction Direction

	// startRef is the instant the current interval began.
	startRef time.Time

	// base is the count-down origin. Count-up timers ignore it.
	base int

	// value is the last computed reading; it is what a stopped timer reports.
	value int
}

// Reset stops the timer and sets a new base and direction.
// The reported value becomes zero for count-up timers and base for
// count-down timers.
func (t *Timer) Reset(base int, dir Direction) {
	t.running = false
	t.direction = dir
	t.base = base
	t.startRef = time.Time{}
	if dir == Down {
		t.value = base
	} else {
		t.value = 0
	}
}

// Start begins a new interval at now. Starting a running timer re-captures the
// reference and restarts the interval.
func (t *Timer) Start(now time.Time) {
	t.startRef = now
	t.running = true
	t.value = t.compute(now)
}

// Stop freezes the timer at its reading for now. Stopping a stopped timer
// does nothing and keeps the frozen value.
func (t *Timer) Stop(now time.Time) {
	if !t.running {
		return
	}
	t.value = t.compute(now)
	t.running = false
}

// Elapsed returns the reading at now. A running timer recomputes it from the
// start reference; a stopped timer returns its frozen value.
func (t *Timer) Elapsed(now time.Time) int {
	if t.running {
		t.value = t.compute(now)
	}
	return t.value
}

// Retarget replaces the base while keeping the start reference.
// A stopped timer takes value as its new frozen reading; a running timer
// derives its reading from the new base on the next Elapsed call.
func (t *Timer) Retarget(base, value int) {
	t.base = base
	if !t.running {
		t.value = value
	}
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// Direction returns the counting direction.
func (t *Timer) Direction() Direction { return t.direction }

// Base returns the count-down origin.
func (t *Timer) Base() int { return t.base }

func (t *Timer) compute(now time.Time) int {
	secs := wholeSeconds(now.Sub(t.startRef))
	if t.direction == Down {
		return t.base - secs
	}
	return secs
}

// wholeSeconds truncates d to whole seconds. Intervals are never negative
// on a monotonic clock; a negative interval is clamped to zero.
func wholeSeconds(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
