package mode

// Mode is the top-level timing mode.
type Mode uint8

const (
	// Program times individual competition programs, counting up.
	Program Mode = iota

	// Warmup times a warmup group, counting down.
	Warmup
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Program:
		return "PROGRAM"
	case Warmup:
		return "WARMUP"
	default:
		return "UNKNOWN"
	}
}

// Phase is the competition phase. It is meaningful only in Program mode.
type Phase uint8

const (
	// Between means no skater is called or skating.
	Between Phase = iota

	// Called means the next skater has been called to the ice.
	Called

	// InProgram means a program is being timed.
	InProgram
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Between:
		return "Between"
	case Called:
		return "Called"
	case InProgram:
		return "InProgram"
	default:
		return "Unknown"
	}
}

// Label returns the mode line shown on the panel.
func Label(m Mode, p Phase, phaseKnown bool) string {
	if m == Warmup {
		return "Warming Up"
	}
	if !phaseKnown {
		return "Competing"
	}
	return "Compete-" + p.String()
}
