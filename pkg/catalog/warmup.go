package catalog

// Warmup durations in seconds.
const (
	// DefaultWarmup is the warmup length at power-up.
	DefaultWarmup = 240

	// WarmupStep is how far one cycle steps the warmup down.
	WarmupStep = 60

	// WarmupJumpFrom is the rung at which the cycle jumps back up.
	WarmupJumpFrom = 180

	// WarmupJumpTo is the duration the cycle jumps to.
	WarmupJumpTo = 360
)

// CycleWarmup returns the next warmup duration and the remaining count
// re-based onto it. The seconds already counted are preserved: at the 3:00
// rung the warmup jumps to 6:00, otherwise it steps down one minute.
func CycleWarmup(duration, remaining int) (int, int) {
	if duration == WarmupJumpFrom {
		return WarmupJumpTo, WarmupJumpTo - (duration - remaining)
	}
	return duration - WarmupStep, remaining - WarmupStep
}
