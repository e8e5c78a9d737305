package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes session events to an slog.Logger.
// Useful during development to watch a session in the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that logs at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", shortID(event.SessionID)),
		slog.String("category", event.Category.String()),
		slog.Int("main", event.MainSeconds),
	}
	if event.Mode != "" {
		attrs = append(attrs, slog.String("mode", event.Mode))
	}
	if event.Phase != "" {
		attrs = append(attrs, slog.String("phase", event.Phase))
	}

	switch {
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("token", event.Command.Token),
			slog.Bool("applied", event.Command.Applied),
		)
	case event.Transition != nil:
		attrs = append(attrs,
			slog.String("old_state", event.Transition.OldState),
			slog.String("new_state", event.Transition.NewState),
		)
		if event.Transition.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Transition.Reason))
		}
	case event.Tier != nil:
		attrs = append(attrs,
			slog.String("color", event.Tier.Color),
			slog.Int("target", event.Tier.Target),
		)
		if event.Tier.Message != "" {
			attrs = append(attrs, slog.String("message", event.Tier.Message))
		}
		if event.Tier.Kind != "" {
			attrs = append(attrs, slog.String("kind", event.Tier.Kind))
		}
		if event.Tier.SecondHalf {
			attrs = append(attrs, slog.Bool("second_half", true))
		}
	case event.Beep != nil:
		attrs = append(attrs,
			slog.Int("loops", event.Beep.Loops),
			slog.String("reason", event.Beep.Reason.String()),
		)
	case event.Interruption != nil:
		attrs = append(attrs,
			slog.Int("count", event.Interruption.Count),
			slog.Int("started_at", event.Interruption.StartedAt),
			slog.Bool("ended", event.Interruption.Ended),
		)
		if event.Interruption.Ended {
			attrs = append(attrs, slog.Int("duration", event.Interruption.Duration))
		}
	}

	a.logger.LogAttrs(context.Background(), a.level, "session", attrs...)
}

// shortID returns the first 8 characters of a session ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
