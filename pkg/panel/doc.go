// Package panel turns engine snapshots into the text shown on the
// stopwatch face.
//
// The panel has a large time readout with a tier color and message, a
// "2nd Half" indicator, a mode line, a duration box, and three lines of
// notes. Render produces all of them as plain strings and colors; drawing
// them is left to the caller.
package panel
