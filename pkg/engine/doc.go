// Package engine ties the timing packages into one stopwatch.
//
// An Engine owns the timer bank, the mode controller, the interruption
// tracker, and the beep scheduler. It is driven from a single goroutine:
// operator commands go through Handle and the periodic tick goes through
// Tick. Neither blocks, and no locking is done.
//
// # Commands
//
// Commands are the tokens on the referee's buttons:
//
//	Start  Stop  Reset  Interrupt  Continue  Whistle
//	Warmup Compete Call.Sk Chg.Dur Silent  Noisy
//
// A command that is unknown, or not valid in the current state, is a no-op.
//
// # Ticks
//
// Each Tick recomputes every timer from the clock, classifies the main
// timer, fires timing alerts, and returns a Snapshot for display. Run drives
// ticks on a time.Ticker and applies commands from a channel between ticks,
// which is the cooperative model the device uses.
//
// # Session Log
//
// When a log.Logger is configured, the engine records commands, mode
// transitions, tier changes, beeps, and interruptions, all stamped with the
// engine's session ID.
package engine
