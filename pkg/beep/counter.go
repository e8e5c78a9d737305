package beep

import "sync"

// Output is a buzzer line that can be switched on and off.
type Output interface {
	Set(on bool)
}

// Counter is a Beeper that drives an Output from the tick loop. A beep
// request loads a loop counter; each Process call advances it by one loop,
// keeping the output on for two loops out of three so long beeps sound
// chirpy rather than continuous.
// It is safe for concurrent use.
type Counter struct {
	mu      sync.Mutex
	out     Output
	counter int
}

// NewCounter creates a Counter driving out.
func NewCounter(out Output) *Counter {
	return &Counter{out: out}
}

// RequestBeep loads the loop counter.
func (c *Counter) RequestBeep(loops int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if loops < 0 {
		loops = 0
	}
	c.counter = loops
}

// Chirp pulses the output once.
func (c *Counter) Chirp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Set(true)
	c.out.Set(false)
}

// Remaining returns the loops left in the current beep.
func (c *Counter) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter
}

// Process advances one loop and sets the output for it.
func (c *Counter) Process() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counter <= 0 {
		c.out.Set(false)
		return
	}
	c.out.Set(c.counter%3 > 0)
	c.counter--
}

// Compile-time interface satisfaction check.
var _ Beeper = (*Counter)(nil)
