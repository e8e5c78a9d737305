package clock

import (
	"sync"
	"time"
)

// Clock supplies monotonically increasing instants.
type Clock interface {
	Now() time.Time
}

// System reads the host clock. The returned values carry Go's monotonic
// reading, so elapsed computations are immune to wall-clock adjustments.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time { return time.Now() }

// Compile-time interface satisfaction check.
var _ Clock = System{}

// Manual is a Clock that only moves when told to.
// It is safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock positioned at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual instant.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.now = m.now.Add(d)
	}
	return m.now
}

// Set moves the clock to t. Moving backward is refused and reported as false.
func (m *Manual) Set(t time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Before(m.now) {
		return false
	}
	m.now = t
	return true
}

// Compile-time interface satisfaction check.
var _ Clock = (*Manual)(nil)
