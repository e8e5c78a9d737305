// Package commands implements the skatewatch-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/skatewatch/skatewatch-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category *log.Category
	Mode     string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY main state
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	state := event.Mode
	if event.Phase != "" {
		state += "/" + event.Phase
	}

	fmt.Fprintf(w, "%s [session:%s] %-12s main=%-5d %s\n",
		ts, shortenSessionID(event.SessionID), event.Category.String(), event.MainSeconds, state)

	switch {
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Transition != nil:
		formatTransitionDetails(w, event.Transition)
	case event.Tier != nil:
		formatTierDetails(w, event.Tier)
	case event.Beep != nil:
		fmt.Fprintf(w, "  %s, %d loops\n", event.Beep.Reason.String(), event.Beep.Loops)
	case event.Interruption != nil:
		formatInterruptionDetails(w, event.Interruption)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	if cmd.Applied {
		fmt.Fprintf(w, "  %s\n", cmd.Token)
	} else {
		fmt.Fprintf(w, "  %s (ignored)\n", cmd.Token)
	}
}

func formatTransitionDetails(w io.Writer, tr *log.TransitionEvent) {
	if tr.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", tr.OldState, tr.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", tr.NewState)
	}
	if tr.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", tr.Reason)
	}
}

func formatTierDetails(w io.Writer, t *log.TierEvent) {
	fmt.Fprintf(w, "  %s", t.Color)
	if t.Message != "" {
		fmt.Fprintf(w, " %q", t.Message)
	}
	if t.SecondHalf {
		fmt.Fprint(w, " (2nd half)")
	}
	fmt.Fprintln(w)
	if t.Kind != "" {
		fmt.Fprintf(w, "  Target: %ds %s\n", t.Target, t.Kind)
	} else {
		fmt.Fprintf(w, "  Target: %ds\n", t.Target)
	}
}

func formatInterruptionDetails(w io.Writer, in *log.InterruptionEvent) {
	if in.Ended {
		fmt.Fprintf(w, "  #%d at %ds ended after %ds\n", in.Count, in.StartedAt, in.Duration)
	} else {
		fmt.Fprintf(w, "  #%d at %ds\n", in.Count, in.StartedAt)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	for _, c := range log.Categories {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s (must be command, transition, tier, beep, or interruption)", s)
}

// ParseModeFlag normalizes a mode string from command-line flag.
func ParseModeFlag(s string) (string, error) {
	switch strings.ToLower(s) {
	case "program", "compete":
		return "PROGRAM", nil
	case "warmup":
		return "WARMUP", nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be program or warmup)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Category: filter.Category,
		Mode:     filter.Mode,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
