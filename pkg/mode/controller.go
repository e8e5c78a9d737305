package mode

import (
	"time"

	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/interruption"
	"github.com/skatewatch/skatewatch-go/pkg/timer"
)

// Controller owns the mode, the program phase, the catalog cursor, and the
// warmup duration, and drives the timer bank in response to commands.
type Controller struct {
	mode  Mode
	phase Phase

	// phaseShown is false right after entering Program mode until the first
	// phase change, so the panel reads "Competing" rather than a phase.
	phaseShown bool

	cursor *catalog.Cursor
	warmup int

	bank    *timer.Bank
	tracker *interruption.Tracker
}

// NewController creates a controller in Program mode, Between phase, with the
// main timer reset to count up from zero.
func NewController(bank *timer.Bank, cat *catalog.Catalog, warmup int) *Controller {
	c := &Controller{
		mode:    Program,
		phase:   Between,
		cursor:  catalog.NewCursor(cat),
		warmup:  warmup,
		bank:    bank,
		tracker: interruption.NewTracker(bank.Timer(timer.Interrupt)),
	}
	c.resetMain()
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Phase returns the current program phase.
func (c *Controller) Phase() Phase { return c.phase }

// Label returns the panel mode line for the current state.
func (c *Controller) Label() string { return Label(c.mode, c.phase, c.phaseShown) }

// Entry returns the selected program duration entry.
func (c *Controller) Entry() catalog.Entry { return c.cursor.Current() }

// Cursor returns the catalog cursor.
func (c *Controller) Cursor() *catalog.Cursor { return c.cursor }

// WarmupDuration returns the warmup duration in seconds.
func (c *Controller) WarmupDuration() int { return c.warmup }

// Tracker returns the interruption tracker.
func (c *Controller) Tracker() *interruption.Tracker { return c.tracker }

// Target returns the duration the main timer is judged against: the selected
// program duration, or the warmup duration in Warmup mode.
func (c *Controller) Target() int {
	if c.mode == Warmup {
		return c.warmup
	}
	return c.cursor.Current().Duration
}

// Kind returns the rule of the selected program entry.
func (c *Controller) Kind() catalog.Kind { return c.cursor.Current().Kind }

// EnterWarmup switches to Warmup mode and resets the main timer to count down
// from the warmup duration. Call and Separation timers are left alone.
func (c *Controller) EnterWarmup(now time.Time) bool {
	c.mode = Warmup
	c.resetMain()
	return true
}

// EnterProgram switches to Program mode, Between phase, resetting the main,
// call, and separation timers.
func (c *Controller) EnterProgram(now time.Time) bool {
	c.mode = Program
	c.phase = Between
	c.phaseShown = false
	c.resetMain()
	c.bank.Timer(timer.Call).Reset(0, timer.Up)
	c.bank.Timer(timer.Separation).Reset(0, timer.Up)
	return true
}

// BeginRun starts timing a program (or the warmup countdown in Warmup mode).
// Interruptions are cleared; call and separation timers stop.
func (c *Controller) BeginRun(now time.Time) bool {
	c.setPhase(InProgram)
	c.resetMain()
	c.bank.Timer(timer.Main).Start(now)
	c.tracker.Reset()
	c.bank.Timer(timer.Call).Stop(now)
	c.bank.Timer(timer.Separation).Stop(now)
	return true
}

// EndRun stops the main and interruption timers and starts the separation
// timer from zero.
func (c *Controller) EndRun(now time.Time) bool {
	c.setPhase(Between)
	c.bank.Timer(timer.Main).Stop(now)
	c.tracker.End(now)
	sep := c.bank.Timer(timer.Separation)
	sep.Reset(0, timer.Up)
	sep.Start(now)
	return true
}

// ResetMain stops the main timer and resets it for the current mode.
func (c *Controller) ResetMain(now time.Time) bool {
	c.resetMain()
	return true
}

// CallSkater records that the next skater was called: the call timer starts
// from zero and the main timer is reset without starting. Program mode only.
func (c *Controller) CallSkater(now time.Time) bool {
	if c.mode != Program {
		return false
	}
	c.setPhase(Called)
	call := c.bank.Timer(timer.Call)
	call.Reset(0, timer.Up)
	call.Start(now)
	c.resetMain()
	return true
}

// BeginInterruption starts timing an interruption of the program in progress
// and snapshots the main timer reading.
func (c *Controller) BeginInterruption(now time.Time) bool {
	if c.mode != Program || c.phase != InProgram || c.tracker.Active() {
		return false
	}
	c.tracker.Begin(c.bank.Timer(timer.Main).Elapsed(now), now)
	return true
}

// EndInterruption stops timing the current interruption.
func (c *Controller) EndInterruption(now time.Time) bool {
	if !c.tracker.Active() {
		return false
	}
	c.tracker.End(now)
	return true
}

// CycleDuration selects the next duration: the next catalog entry in
// Program mode, or the next warmup rung in Warmup mode. A warmup in progress
// keeps the seconds it has already counted.
func (c *Controller) CycleDuration(now time.Time) bool {
	if c.mode == Program {
		c.cursor.Cycle()
		return true
	}

	main := c.bank.Timer(timer.Main)
	d, remaining := catalog.CycleWarmup(c.warmup, main.Elapsed(now))
	c.warmup = d
	main.Retarget(d, remaining)
	return true
}

func (c *Controller) setPhase(p Phase) {
	if c.mode != Program {
		return
	}
	c.phase = p
	c.phaseShown = true
}

func (c *Controller) resetMain() {
	main := c.bank.Timer(timer.Main)
	if c.mode == Program {
		main.Reset(0, timer.Up)
		return
	}
	main.Reset(c.warmup, timer.Down)
}
