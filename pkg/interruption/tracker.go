// Package interruption counts interruptions of a program in progress and
// times the current one.
package interruption

import (
	"time"

	"github.com/skatewatch/skatewatch-go/pkg/timer"
)

// Urgency thresholds in seconds of interruption time.
const (
	WarningAfter = 10
	UrgentAfter  = 40
)

// Urgency grades how long the current interruption has lasted.
type Urgency uint8

const (
	Normal Urgency = iota
	Warning
	Urgent
)

// String returns a human-readable urgency name.
func (u Urgency) String() string {
	switch u {
	case Normal:
		return "NORMAL"
	case Warning:
		return "WARNING"
	case Urgent:
		return "URGENT"
	default:
		return "UNKNOWN"
	}
}

// Classify grades an interruption that has lasted elapsed seconds.
func Classify(elapsed int) Urgency {
	switch {
	case elapsed > UrgentAfter:
		return Urgent
	case elapsed > WarningAfter:
		return Warning
	default:
		return Normal
	}
}

// Tracker counts interruption events. Timing is delegated to the engine's
// Interrupt timer, which the tracker restarts on every Begin.
type Tracker struct {
	t         *timer.Timer
	count     int
	startedAt int
}

// NewTracker creates a tracker timing interruptions with t.
func NewTracker(t *timer.Timer) *Tracker {
	return &Tracker{t: t}
}

// Begin records a new interruption that starts mainSeconds into the program.
func (tr *Tracker) Begin(mainSeconds int, now time.Time) {
	tr.count++
	tr.startedAt = mainSeconds
	tr.t.Reset(0, timer.Up)
	tr.t.Start(now)
}

// End stops timing the current interruption. The count is unchanged.
func (tr *Tracker) End(now time.Time) {
	tr.t.Stop(now)
}

// Reset clears the count and the interruption timer.
func (tr *Tracker) Reset() {
	tr.count = 0
	tr.startedAt = 0
	tr.t.Reset(0, timer.Up)
}

// CurrentElapsed returns the seconds since the last Begin, frozen once the
// interruption has ended.
func (tr *Tracker) CurrentElapsed(now time.Time) int {
	return tr.t.Elapsed(now)
}

// Count returns the number of interruptions since the last Reset.
func (tr *Tracker) Count() int { return tr.count }

// StartedAt returns the program time at which the last interruption began.
func (tr *Tracker) StartedAt() int { return tr.startedAt }

// Active reports whether an interruption is being timed.
func (tr *Tracker) Active() bool { return tr.t.Running() }
