// Package timer implements the whole-second counters used by the timing engine.
//
// A Timer counts up from zero or down from a base value. Elapsed time is always
// derived from the distance between the current instant and the instant the
// timer was started, so repeated ticks never accumulate drift.
//
// # Resolution
//
// Values are whole seconds. The fractional part of the elapsed interval is
// truncated, matching the integer-second display of the referee panel.
//
// # Bank
//
// The engine owns exactly four timers (Main, Call, Separation, Interrupt),
// grouped in a Bank. Timers are created once and reset in place; they are
// never destroyed.
package timer
