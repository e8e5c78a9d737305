package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skatewatch/skatewatch-go/pkg/beep"
	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/classify"
	"github.com/skatewatch/skatewatch-go/pkg/clock"
	"github.com/skatewatch/skatewatch-go/pkg/log"
	"github.com/skatewatch/skatewatch-go/pkg/mode"
	"github.com/skatewatch/skatewatch-go/pkg/timer"
)

// Errors returned by New and Run.
var (
	ErrInvalidConfig   = errors.New("invalid engine config")
	ErrInvalidInterval = errors.New("invalid tick interval")
)

// Config holds engine configuration.
type Config struct {
	// Catalog is the list of selectable program durations.
	// Defaults to the built-in standard ruleset.
	Catalog *catalog.Catalog

	// WarmupDuration is the initial warmup length in seconds.
	// Defaults to catalog.DefaultWarmup.
	WarmupDuration int

	// Silent starts the engine with button chirps disabled.
	Silent bool

	// Logger receives session events. Nil disables session logging.
	Logger log.Logger

	// SessionID stamps every session event. A random UUID when empty.
	SessionID string
}

// Validate checks the configuration. Zero values are accepted and replaced
// by defaults in New.
func (c Config) Validate() error {
	if c.WarmupDuration == 0 {
		return nil
	}
	if c.WarmupDuration < catalog.WarmupJumpFrom || c.WarmupDuration%catalog.WarmupStep != 0 {
		return fmt.Errorf("%w: warmup duration %ds must be a multiple of %ds and at least %ds",
			ErrInvalidConfig, c.WarmupDuration, catalog.WarmupStep, catalog.WarmupJumpFrom)
	}
	return nil
}

// Engine is the referee stopwatch. It is not safe for concurrent use; drive
// it from one goroutine (see Run).
type Engine struct {
	clock  clock.Clock
	bank   *timer.Bank
	ctrl   *mode.Controller
	beeps  *beep.Scheduler
	logger log.Logger

	sessionID string

	// called and ended record whether the call and separation timers have a
	// value worth showing since the last Compete.
	called bool
	ended  bool

	tier      classify.Tier
	half      bool
	tierKnown bool
}

// New creates an engine in Program mode, Between phase, with all timers at
// zero.
func New(clk clock.Clock, beeper beep.Beeper, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.WarmupDuration == 0 {
		cfg.WarmupDuration = catalog.DefaultWarmup
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NoopLogger{}
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	bank := timer.NewBank()
	e := &Engine{
		clock:     clk,
		bank:      bank,
		ctrl:      mode.NewController(bank, cfg.Catalog, cfg.WarmupDuration),
		beeps:     beep.NewScheduler(beeper),
		logger:    cfg.Logger,
		sessionID: cfg.SessionID,
	}
	e.beeps.SetNoisy(!cfg.Silent)
	e.beeps.Prime(0)
	return e, nil
}

// SessionID returns the ID stamped on session events.
func (e *Engine) SessionID() string { return e.sessionID }

// Controller returns the mode controller.
func (e *Engine) Controller() *mode.Controller { return e.ctrl }

// Bank returns the timer bank.
func (e *Engine) Bank() *timer.Bank { return e.bank }

// Noisy reports whether button chirps are enabled.
func (e *Engine) Noisy() bool { return e.beeps.Noisy() }

// HandleToken parses and applies a button token.
func (e *Engine) HandleToken(token string) bool {
	cmd, ok := ParseCommand(token)
	if !ok {
		e.logCommand(token, false, e.clock.Now())
		return false
	}
	return e.Handle(cmd)
}

// Handle applies cmd at the current clock time and reports whether it
// changed anything. Applied commands chirp unless the engine is silent; the
// whistle sounds its own long beep instead.
func (e *Engine) Handle(cmd Command) bool {
	now := e.clock.Now()
	oldLabel := e.ctrl.Label()
	wasInterrupted := e.ctrl.Tracker().Active()

	applied := e.apply(cmd, now)
	e.logCommand(cmd.String(), applied, now)
	if !applied {
		return false
	}

	switch cmd {
	case CommandWhistle:
		e.logBeep(beep.WhistleLoops, log.BeepWhistle, now)
	case CommandStart, CommandReset, CommandWarmup, CommandCompete,
		CommandCallSkater, CommandChangeDuration:
		// The main timer jumped; a jump is not a crossing.
		e.beeps.Prime(e.bank.Timer(timer.Main).Elapsed(now))
		e.beeps.Chirp()
	default:
		e.beeps.Chirp()
	}

	if label := e.ctrl.Label(); label != oldLabel {
		e.log(log.Event{
			Timestamp:  now,
			Category:   log.CategoryTransition,
			Transition: &log.TransitionEvent{OldState: oldLabel, NewState: label, Reason: cmd.String()},
		}, now)
	}

	tr := e.ctrl.Tracker()
	switch {
	case !wasInterrupted && tr.Active():
		e.log(log.Event{
			Category:     log.CategoryInterruption,
			Interruption: &log.InterruptionEvent{Count: tr.Count(), StartedAt: tr.StartedAt()},
		}, now)
	case wasInterrupted && !tr.Active():
		e.log(log.Event{
			Category: log.CategoryInterruption,
			Interruption: &log.InterruptionEvent{
				Count:     tr.Count(),
				StartedAt: tr.StartedAt(),
				Duration:  tr.CurrentElapsed(now),
				Ended:     true,
			},
		}, now)
	}
	return true
}

func (e *Engine) apply(cmd Command, now time.Time) bool {
	switch cmd {
	case CommandStart:
		return e.ctrl.BeginRun(now)
	case CommandStop:
		if !e.ctrl.EndRun(now) {
			return false
		}
		if e.ctrl.Mode() == mode.Program {
			e.ended = true
		}
		return true
	case CommandReset:
		return e.ctrl.ResetMain(now)
	case CommandInterrupt:
		return e.ctrl.BeginInterruption(now)
	case CommandContinue:
		return e.ctrl.EndInterruption(now)
	case CommandWhistle:
		e.beeps.Whistle()
		return true
	case CommandWarmup:
		return e.ctrl.EnterWarmup(now)
	case CommandCompete:
		if !e.ctrl.EnterProgram(now) {
			return false
		}
		e.called = false
		e.ended = false
		return true
	case CommandCallSkater:
		if !e.ctrl.CallSkater(now) {
			return false
		}
		e.called = true
		return true
	case CommandChangeDuration:
		return e.ctrl.CycleDuration(now)
	case CommandSilent:
		e.beeps.SetNoisy(false)
		return true
	case CommandNoisy:
		e.beeps.SetNoisy(true)
		return true
	default:
		return false
	}
}

// Tick recomputes all timers at the current clock time, classifies the main
// timer, and fires a timing alert when a beep point was reached.
func (e *Engine) Tick() Snapshot {
	now := e.clock.Now()
	e.bank.Update(now)

	m := e.ctrl.Mode()
	main := e.bank.Seconds(timer.Main)
	res := classify.Classify(classify.Input{
		Mode:    m,
		Kind:    e.ctrl.Kind(),
		Target:  e.ctrl.Target(),
		Elapsed: main,
		Running: e.bank.Running(timer.Main),
	})

	beeped := e.beeps.Observe(main, classify.BeepPoints(m, e.ctrl.Kind(), e.ctrl.Target()))
	if beeped {
		e.logBeep(beep.BurstLoops, log.BeepAlert, now)
	}

	if !e.tierKnown || res.Tier != e.tier || res.SecondHalf != e.half {
		e.tier, e.half, e.tierKnown = res.Tier, res.SecondHalf, true
		e.logTier(res, now)
	}

	return e.snapshot(now, res, beeped)
}

func (e *Engine) snapshot(now time.Time, res classify.Result, beeped bool) Snapshot {
	tr := e.ctrl.Tracker()
	s := Snapshot{
		Time:              now,
		Mode:              e.ctrl.Mode(),
		Phase:             e.ctrl.Phase(),
		Label:             e.ctrl.Label(),
		Target:            e.ctrl.Target(),
		Kind:              e.ctrl.Kind(),
		Main:              e.bank.Seconds(timer.Main),
		MainRunning:       e.bank.Running(timer.Main),
		Tier:              res.Tier,
		SecondHalf:        res.SecondHalf,
		Call:              NotStarted,
		CallRunning:       e.bank.Running(timer.Call),
		Separation:        NotStarted,
		SeparationRunning: e.bank.Running(timer.Separation),
		Interruptions:     tr.Count(),
		InterruptAt:       tr.StartedAt(),
		InterruptSeconds:  e.bank.Seconds(timer.Interrupt),
		InterruptActive:   tr.Active(),
		Noisy:             e.beeps.Noisy(),
		Beeped:            beeped,
	}
	if e.called {
		s.Call = e.bank.Seconds(timer.Call)
	}
	if e.ended {
		s.Separation = e.bank.Seconds(timer.Separation)
	}
	return s
}

// Run ticks the engine every interval and applies commands received on cmds
// between ticks, all on the calling goroutine. onTick, if not nil, receives
// every snapshot. Run returns ctx.Err() when ctx is done; a closed cmds
// channel only stops command intake.
func (e *Engine) Run(ctx context.Context, interval time.Duration, cmds <-chan Command, onTick func(Snapshot)) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := func() {
		s := e.Tick()
		if onTick != nil {
			onTick(s)
		}
	}
	tick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			e.Handle(cmd)
		case <-ticker.C:
			tick()
		}
	}
}

func (e *Engine) log(event log.Event, now time.Time) {
	event.Timestamp = now
	event.SessionID = e.sessionID
	event.Mode = e.ctrl.Mode().String()
	if e.ctrl.Mode() == mode.Program {
		event.Phase = e.ctrl.Phase().String()
	}
	event.MainSeconds = e.bank.Timer(timer.Main).Elapsed(now)
	e.logger.Log(event)
}

func (e *Engine) logCommand(token string, applied bool, now time.Time) {
	e.log(log.Event{
		Category: log.CategoryCommand,
		Command:  &log.CommandEvent{Token: token, Applied: applied},
	}, now)
}

func (e *Engine) logBeep(loops int, reason log.BeepReason, now time.Time) {
	e.log(log.Event{
		Category: log.CategoryBeep,
		Beep:     &log.BeepEvent{Loops: loops, Reason: reason},
	}, now)
}

func (e *Engine) logTier(res classify.Result, now time.Time) {
	ev := &log.TierEvent{
		Color:      res.Tier.Color.String(),
		Message:    res.Tier.Message,
		SecondHalf: res.SecondHalf,
		Target:     e.ctrl.Target(),
	}
	if e.ctrl.Mode() == mode.Program {
		ev.Kind = e.ctrl.Kind().String()
	}
	e.log(log.Event{Category: log.CategoryTier, Tier: ev}, now)
}
