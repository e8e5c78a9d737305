package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestSlog(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSlogAdapterTierEvent(t *testing.T) {
	var buf bytes.Buffer
	a := NewSlogAdapter(newTestSlog(&buf))

	a.Log(Event{
		SessionID:   "0123456789abcdef",
		Category:    CategoryTier,
		Mode:        "PROGRAM",
		MainSeconds: 145,
		Tier:        &TierEvent{Color: "YELLOW", Message: "The end is near", Target: 150, Kind: "MAX"},
	})

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG",
		"session=01234567",
		"category=TIER",
		"main=145",
		"color=YELLOW",
		`message="The end is near"`,
		"kind=MAX",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogAdapterCommandEvent(t *testing.T) {
	var buf bytes.Buffer
	a := NewSlogAdapter(newTestSlog(&buf)).WithLevel(slog.LevelInfo)

	a.Log(Event{Category: CategoryCommand, Command: &CommandEvent{Token: "Call.Sk", Applied: false}})

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level:\n%s", out)
	}
	if !strings.Contains(out, "token=Call.Sk") || !strings.Contains(out, "applied=false") {
		t.Errorf("missing command attributes:\n%s", out)
	}
}

func TestSlogAdapterInterruptionEvent(t *testing.T) {
	var buf bytes.Buffer
	a := NewSlogAdapter(newTestSlog(&buf))

	a.Log(Event{
		Category:     CategoryInterruption,
		Interruption: &InterruptionEvent{Count: 2, StartedAt: 95, Duration: 12, Ended: true},
	})

	out := buf.String()
	for _, want := range []string{"count=2", "started_at=95", "ended=true", "duration=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
