package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	c := NewManual(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance elapsed = %v, want 1.5s", got)
	}

	c.Advance(-time.Hour)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("negative Advance moved clock to %v", got)
	}
}

func TestManualSetRefusesBackward(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	c := NewManual(start)

	if c.Set(start.Add(-time.Second)) {
		t.Error("Set() backward returned true")
	}
	if !c.Now().Equal(start) {
		t.Errorf("clock moved backward to %v", c.Now())
	}

	if !c.Set(start.Add(time.Minute)) {
		t.Error("Set() forward returned false")
	}
	if got := c.Now().Sub(start); got != time.Minute {
		t.Errorf("elapsed = %v, want 1m", got)
	}
}

func TestSystemIsMonotonic(t *testing.T) {
	var c Clock = System{}
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("System clock went backward: %v then %v", a, b)
	}
}
