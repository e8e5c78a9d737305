// Package mode implements the referee stopwatch's mode state machine.
//
// # Modes
//
// The stopwatch is either timing a warmup group (Warmup) or timing individual
// programs (Program). A warmup counts down from the warmup duration; a
// program counts up from zero and is judged against the selected catalog
// entry.
//
// # Program Phases
//
// In Program mode the controller also tracks where the competition stands:
//
//	Between --Call.Sk--> Called --Start--> InProgram --Stop--> Between
//
// Start is accepted from Between as well; a referee may start a program
// without calling the skater first.
//
// # Invalid Transitions
//
// Every operation reports whether it applied. An operation that makes no
// sense in the current state (calling a skater during warmup, continuing
// when nothing was interrupted) is a no-op and returns false. Nothing here
// is fatal.
package mode
