// Package classify maps elapsed time to the status tier shown to the referee.
//
// Classification is a pure function of the mode, the duration rule, the
// target, the main timer reading, and whether the main timer is counting.
// Tiers are advisory: nothing here stops a timer.
package classify

import (
	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/mode"
)

// Tier messages.
const (
	MsgTooLong     = "Too Long"
	MsgEndIsNear   = "The end is near"
	MsgShortDeduct = "Short-Deduct"
	MsgTooShort    = "Too Short-No Score"
	MsgFinalMinute = "Final Minute"
	MsgWarmupOver  = "Warmup Over"
)

// Program thresholds in seconds relative to the target.
const (
	// MaxWarnBefore opens the warning band of a MAX program.
	MaxWarnBefore = 5

	// WindowTolerance bounds the acceptable band of a WINDOW program.
	WindowTolerance = 10

	// WindowWarnAfter opens the warning band of a WINDOW program past the target.
	WindowWarnAfter = 5

	// WindowDeductBefore opens the short-with-deduction band.
	WindowDeductBefore = 30
)

// Warmup thresholds in seconds remaining.
const (
	WarmupFinalMinute = 60
	WarmupLastSeconds = 5
)

// Color is the urgency color of a tier.
type Color uint8

const (
	// Idle is the neutral color of a timer that is not counting.
	Idle Color = iota
	Green
	Yellow
	Orange
	Red
)

// String returns a human-readable color name.
func (c Color) String() string {
	switch c {
	case Idle:
		return "IDLE"
	case Green:
		return "GREEN"
	case Yellow:
		return "YELLOW"
	case Orange:
		return "ORANGE"
	case Red:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// Tier is a color with an optional advisory message.
type Tier struct {
	Color   Color
	Message string
}

// IdleTier is shown whenever the main timer is not counting.
var IdleTier = Tier{Color: Idle}

// Input is everything the classifier looks at.
type Input struct {
	Mode    mode.Mode
	Kind    catalog.Kind
	Target  int
	Elapsed int
	Running bool
}

// Result is the classification of one tick.
type Result struct {
	Tier Tier

	// SecondHalf is set once a program passes half its target. It is
	// independent of the tier and stays set after the timer stops.
	SecondHalf bool
}

// Classify evaluates in and returns the tier and second-half flag.
func Classify(in Input) Result {
	var r Result
	if in.Mode == mode.Program {
		// Compare 2*elapsed with target so odd targets split at the half second.
		r.SecondHalf = 2*in.Elapsed > in.Target
	}

	if !in.Running {
		r.Tier = IdleTier
		return r
	}

	switch {
	case in.Mode == mode.Warmup:
		r.Tier = warmupTier(in.Elapsed)
	case in.Kind == catalog.Window:
		r.Tier = windowTier(in.Target, in.Elapsed)
	default:
		r.Tier = maxTier(in.Target, in.Elapsed)
	}
	return r
}

func maxTier(target, e int) Tier {
	switch {
	case e > target:
		return Tier{Red, MsgTooLong}
	case e >= target-MaxWarnBefore:
		return Tier{Yellow, MsgEndIsNear}
	default:
		return Tier{Green, ""}
	}
}

func windowTier(target, e int) Tier {
	switch {
	case e > target+WindowTolerance:
		return Tier{Red, MsgTooLong}
	case e >= target+WindowWarnAfter:
		return Tier{Yellow, MsgEndIsNear}
	case e >= target-WindowTolerance:
		return Tier{Green, ""}
	case e >= target-WindowDeductBefore:
		return Tier{Orange, MsgShortDeduct}
	case e >= 1:
		return Tier{Red, MsgTooShort}
	default:
		return IdleTier
	}
}

func warmupTier(remaining int) Tier {
	var t Tier
	switch {
	case remaining > WarmupFinalMinute:
		t.Color = Green
	case remaining >= WarmupLastSeconds:
		t.Color = Yellow
	case remaining >= 0:
		t.Color = Orange
	default:
		t.Color = Red
	}

	switch {
	case remaining > 0 && remaining < WarmupFinalMinute:
		t.Message = MsgFinalMinute
	case remaining < 0:
		t.Message = MsgWarmupOver
	}
	return t
}

// BeepPoints returns the main timer readings at which a short beep burst is
// due: the end of a MAX program, the end of the tolerance of a WINDOW
// program, or one minute left and time up in a warmup.
func BeepPoints(m mode.Mode, kind catalog.Kind, target int) []int {
	if m == mode.Warmup {
		return []int{WarmupFinalMinute, 0}
	}
	if kind == catalog.Window {
		return []int{target + WindowTolerance}
	}
	return []int{target}
}
