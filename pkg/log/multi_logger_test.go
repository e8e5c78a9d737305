package log

import "testing"

type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(e Event) { c.events = append(c.events, e) }

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{Category: CategoryCommand})
	m.Log(Event{Category: CategoryBeep})

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Fatalf("got %d and %d events, want 2 each", len(a.events), len(b.events))
	}
	if b.events[1].Category != CategoryBeep {
		t.Errorf("second event category = %v, want BEEP", b.events[1].Category)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{})
}
