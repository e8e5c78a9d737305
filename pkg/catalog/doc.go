// Package catalog holds the program duration rule sets and the warmup
// duration cycle.
//
// A rule set is an ordered list of entries, each pairing a program duration
// with the rule that applies to it:
//
//   - MAX: exceeding the target is penalized, there is no lower bound.
//   - WINDOW (+/-): both a too-short and a too-long band surround the target.
//
// Order matters. Competition rule sets are listed in the order the referee
// steps through them, and Cursor.Cycle wraps back to the first entry after
// the last one.
//
// # Warmup
//
// The warmup duration is not part of a rule set. It steps down by one minute
// per cycle and jumps from 3:00 back up to 6:00. The jump is intentional and
// is kept exactly as the reference device behaves.
package catalog
