package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/skatewatch/skatewatch-go/pkg/log"
)

var ts = time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.swlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is a short program run: call, start, alert, too long,
// interruption, stop.
func sessionEvents(session string) []log.Event {
	at := func(s int) time.Time { return ts.Add(time.Duration(s) * time.Second) }
	return []log.Event{
		{Timestamp: at(0), SessionID: session, Category: log.CategoryCommand, Mode: "PROGRAM", Phase: "Called",
			Command: &log.CommandEvent{Token: "Call.Sk", Applied: true}},
		{Timestamp: at(0), SessionID: session, Category: log.CategoryTransition, Mode: "PROGRAM", Phase: "Called",
			Transition: &log.TransitionEvent{OldState: "Competing", NewState: "Compete-Called", Reason: "Call.Sk"}},
		{Timestamp: at(20), SessionID: session, Category: log.CategoryCommand, Mode: "PROGRAM", Phase: "InProgram",
			Command: &log.CommandEvent{Token: "Start", Applied: true}},
		{Timestamp: at(80), SessionID: session, Category: log.CategoryInterruption, Mode: "PROGRAM", Phase: "InProgram", MainSeconds: 60,
			Interruption: &log.InterruptionEvent{Count: 1, StartedAt: 60}},
		{Timestamp: at(95), SessionID: session, Category: log.CategoryInterruption, Mode: "PROGRAM", Phase: "InProgram", MainSeconds: 75,
			Interruption: &log.InterruptionEvent{Count: 1, StartedAt: 60, Duration: 15, Ended: true}},
		{Timestamp: at(170), SessionID: session, Category: log.CategoryBeep, Mode: "PROGRAM", Phase: "InProgram", MainSeconds: 150,
			Beep: &log.BeepEvent{Loops: 2, Reason: log.BeepAlert}},
		{Timestamp: at(171), SessionID: session, Category: log.CategoryTier, Mode: "PROGRAM", Phase: "InProgram", MainSeconds: 151,
			Tier: &log.TierEvent{Color: "RED", Message: "Too Long", SecondHalf: true, Target: 150, Kind: "MAX"}},
		{Timestamp: at(175), SessionID: session, Category: log.CategoryCommand, Mode: "PROGRAM", Phase: "InProgram", MainSeconds: 155,
			Command: &log.CommandEvent{Token: "Interrupt", Applied: false}},
	}
}
