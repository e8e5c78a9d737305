package engine

import (
	"time"

	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/classify"
	"github.com/skatewatch/skatewatch-go/pkg/mode"
)

// NotStarted marks a call or separation reading that has no value yet.
const NotStarted = -1

// Snapshot is everything the display needs after one tick.
type Snapshot struct {
	Time time.Time

	Mode  mode.Mode
	Phase mode.Phase
	Label string

	// Target is the selected program duration, or the warmup duration.
	Target int
	Kind   catalog.Kind

	// Main is the main timer reading: elapsed seconds in Program mode,
	// remaining seconds in Warmup mode.
	Main        int
	MainRunning bool

	Tier       classify.Tier
	SecondHalf bool

	// Call and Separation are NotStarted until the first call or the first
	// end of a run since entering Program mode.
	Call              int
	CallRunning       bool
	Separation        int
	SeparationRunning bool

	Interruptions    int
	InterruptAt      int
	InterruptSeconds int
	InterruptActive  bool

	Noisy bool

	// Beeped is set when this tick requested a timing alert.
	Beeped bool
}
