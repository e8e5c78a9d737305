package beep

// Beep lengths in loops of the tick cadence.
const (
	// BurstLoops is the length of a timing alert.
	BurstLoops = 2

	// WhistleLoops is the length of the whistle.
	WhistleLoops = 30
)

// Beeper is the external buzzer driver. Calls are fire-and-forget.
type Beeper interface {
	// RequestBeep sounds the buzzer for the given number of loops,
	// replacing any beep in progress.
	RequestBeep(loops int)

	// Chirp emits a very short tone.
	Chirp()
}

// Scheduler turns engine events into Beeper requests.
type Scheduler struct {
	beeper Beeper
	noisy  bool

	last  int
	armed bool
}

// NewScheduler creates a scheduler in noisy mode.
func NewScheduler(b Beeper) *Scheduler {
	return &Scheduler{beeper: b, noisy: true}
}

// Noisy reports whether button chirps are enabled.
func (s *Scheduler) Noisy() bool { return s.noisy }

// SetNoisy enables or disables button chirps.
func (s *Scheduler) SetNoisy(noisy bool) { s.noisy = noisy }

// Chirp acknowledges a button press. Silent mode suppresses it.
func (s *Scheduler) Chirp() {
	if s.noisy {
		s.beeper.Chirp()
	}
}

// Whistle sounds the long whistle beep.
func (s *Scheduler) Whistle() {
	s.beeper.RequestBeep(WhistleLoops)
}

// Burst sounds a short timing alert.
func (s *Scheduler) Burst() {
	s.beeper.RequestBeep(BurstLoops)
}

// Prime sets the last seen reading without firing.
func (s *Scheduler) Prime(value int) {
	s.last = value
	s.armed = true
}

// Forget clears the last seen reading. The next Observe fires only on an
// exact match.
func (s *Scheduler) Forget() {
	s.armed = false
}

// Observe records a new main timer reading and sounds a burst if it reached
// or crossed any of points since the previous reading. It reports whether a
// burst was requested.
func (s *Scheduler) Observe(value int, points []int) bool {
	fire := false
	for _, p := range points {
		if s.reached(value, p) {
			fire = true
			break
		}
	}
	s.last = value
	s.armed = true

	if fire {
		s.Burst()
	}
	return fire
}

func (s *Scheduler) reached(value, point int) bool {
	switch {
	case !s.armed:
		return value == point
	case value > s.last:
		return s.last < point && point <= value
	case value < s.last:
		return value <= point && point < s.last
	default:
		return false
	}
}
