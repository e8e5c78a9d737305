// Package clock provides the monotonic time source used by the timing engine.
//
// The engine never reads wall-clock time directly. Every timer reference and
// every elapsed-time computation goes through a Clock, so the production
// binary can use the system monotonic clock while tests and simulations
// advance a Manual clock deterministically.
//
// Callers must guarantee that Now never goes backward. The engine does not
// check this; a decreasing clock yields undefined elapsed values.
package clock
