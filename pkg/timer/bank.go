package timer

import "time"

// ID names one of the engine's timers.
type ID uint8

const (
	// Main times the current warmup or program.
	Main ID = iota

	// Call times how long ago the current skater was called to the ice.
	Call

	// Separation times how long ago the previous skater's program ended.
	Separation

	// Interrupt times the current interruption.
	Interrupt

	numTimers
)

// IDs lists every timer in bank order.
var IDs = []ID{Main, Call, Separation, Interrupt}

// String returns a human-readable timer name.
func (id ID) String() string {
	switch id {
	case Main:
		return "MAIN"
	case Call:
		return "CALL"
	case Separation:
		return "SEPARATION"
	case Interrupt:
		return "INTERRUPT"
	default:
		return "UNKNOWN"
	}
}

// Bank owns the four independent engine timers and the seconds derived
// from them on the last Update.
type Bank struct {
	timers  [numTimers]Timer
	seconds [numTimers]int
}

// NewBank creates a bank with every timer stopped at zero, counting up.
func NewBank() *Bank {
	return &Bank{}
}

// Timer returns the timer for id. Unknown IDs return nil.
func (b *Bank) Timer(id ID) *Timer {
	if id >= numTimers {
		return nil
	}
	return &b.timers[id]
}

// Update derives the reading of every timer at now and caches it.
func (b *Bank) Update(now time.Time) {
	for i := range b.timers {
		b.seconds[i] = b.timers[i].Elapsed(now)
	}
}

// Seconds returns the reading cached by the last Update.
func (b *Bank) Seconds(id ID) int {
	if id >= numTimers {
		return 0
	}
	return b.seconds[id]
}

// Running reports whether the timer for id is counting.
func (b *Bank) Running(id ID) bool {
	if id >= numTimers {
		return false
	}
	return b.timers[id].running
}
