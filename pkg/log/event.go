package log

import "time"

// Event is one entry of a session log.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the engine instance that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Mode and Phase at the time of the event.
	Mode  string `cbor:"4,keyasint,omitempty"`
	Phase string `cbor:"5,keyasint,omitempty"`

	// MainSeconds is the main timer reading at the time of the event.
	MainSeconds int `cbor:"6,keyasint"`

	// Type-specific payload (one of these will be set).
	Command      *CommandEvent      `cbor:"10,keyasint,omitempty"`
	Transition   *TransitionEvent   `cbor:"11,keyasint,omitempty"`
	Tier         *TierEvent         `cbor:"12,keyasint,omitempty"`
	Beep         *BeepEvent         `cbor:"13,keyasint,omitempty"`
	Interruption *InterruptionEvent `cbor:"14,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates an operator command.
	CategoryCommand Category = 0
	// CategoryTransition indicates a mode or phase change.
	CategoryTransition Category = 1
	// CategoryTier indicates a status tier change.
	CategoryTier Category = 2
	// CategoryBeep indicates a beep request.
	CategoryBeep Category = 3
	// CategoryInterruption indicates an interruption starting or ending.
	CategoryInterruption Category = 4
)

// Categories lists every category in order.
var Categories = []Category{
	CategoryCommand,
	CategoryTransition,
	CategoryTier,
	CategoryBeep,
	CategoryInterruption,
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryTransition:
		return "TRANSITION"
	case CategoryTier:
		return "TIER"
	case CategoryBeep:
		return "BEEP"
	case CategoryInterruption:
		return "INTERRUPTION"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures an operator command.
type CommandEvent struct {
	// Token is the command as entered.
	Token string `cbor:"1,keyasint"`

	// Applied is false when the command was unknown or not valid in the
	// current state.
	Applied bool `cbor:"2,keyasint"`
}

// TransitionEvent captures a mode or phase change.
type TransitionEvent struct {
	// OldState is the previous mode line (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new mode line.
	NewState string `cbor:"2,keyasint"`

	// Reason is the command that caused the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// TierEvent captures a change of the status tier or the second-half flag.
type TierEvent struct {
	Color      string `cbor:"1,keyasint"`
	Message    string `cbor:"2,keyasint,omitempty"`
	SecondHalf bool   `cbor:"3,keyasint,omitempty"`

	// Target and Kind describe the rule the reading was judged against.
	Target int    `cbor:"4,keyasint"`
	Kind   string `cbor:"5,keyasint,omitempty"`
}

// BeepEvent captures a beep request.
type BeepEvent struct {
	Loops  int        `cbor:"1,keyasint"`
	Reason BeepReason `cbor:"2,keyasint"`
}

// BeepReason explains why a beep was requested.
type BeepReason uint8

const (
	// BeepAlert is a timing alert at a beep point.
	BeepAlert BeepReason = 0
	// BeepWhistle is the operator's whistle.
	BeepWhistle BeepReason = 1
)

// String returns the beep reason name.
func (r BeepReason) String() string {
	switch r {
	case BeepAlert:
		return "ALERT"
	case BeepWhistle:
		return "WHISTLE"
	default:
		return "UNKNOWN"
	}
}

// InterruptionEvent captures the start or end of an interruption.
type InterruptionEvent struct {
	// Count is the number of interruptions of the current program so far.
	Count int `cbor:"1,keyasint"`

	// StartedAt is the program time at which the interruption began.
	StartedAt int `cbor:"2,keyasint"`

	// Duration is the interruption length in seconds (set when it ends).
	Duration int `cbor:"3,keyasint,omitempty"`

	// Ended is true for the event closing the interruption.
	Ended bool `cbor:"4,keyasint,omitempty"`
}
