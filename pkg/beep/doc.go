// Package beep schedules audible feedback for the referee.
//
// The engine never drives the buzzer itself. It asks a Beeper for either a
// one-shot chirp (button feedback) or a beep lasting a number of loops of the
// tick cadence (timing alerts and the whistle).
//
// # Edge Detection
//
// Timing alerts fire once when the main timer reaches a beep point. The
// Scheduler remembers the last reading it saw and fires when a point lies in
// the interval crossed since then, so a tick arriving late does not swallow
// the alert. Discontinuous jumps (a reset, a new warmup duration) are
// announced with Prime so they do not count as crossings.
//
// # Silent Mode
//
// Silent mode suppresses button chirps only. Timing alerts and the whistle
// always sound.
package beep
