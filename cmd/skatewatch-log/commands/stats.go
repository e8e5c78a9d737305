package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/skatewatch/skatewatch-go/pkg/log"
)

// Stats holds aggregate statistics about a session log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Sessions         map[string]*SessionStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single engine session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int

	Commands        int
	IgnoredCommands int

	// Runs counts started program runs; OverTime counts runs that reached
	// "Too Long".
	Runs     int
	OverTime int

	Alerts   int
	Whistles int

	Interruptions       int
	LongestInterruption int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		switch {
		case event.Command != nil:
			sess.Commands++
			if !event.Command.Applied {
				sess.IgnoredCommands++
			} else if event.Command.Token == "Start" && event.Mode == "PROGRAM" {
				sess.Runs++
			}
		case event.Tier != nil:
			if event.Tier.Color == "RED" && event.Tier.Message == "Too Long" {
				sess.OverTime++
			}
		case event.Beep != nil:
			if event.Beep.Reason == log.BeepWhistle {
				sess.Whistles++
			} else {
				sess.Alerts++
			}
		case event.Interruption != nil:
			if !event.Interruption.Ended {
				sess.Interruptions++
			} else if event.Interruption.Duration > sess.LongestInterruption {
				sess.LongestInterruption = event.Interruption.Duration
			}
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Skatewatch Session Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range log.Categories {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) == 0 {
		return
	}

	// Sort by first seen time
	type sessionInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessionInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessionInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range sessions {
		duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Second)
		fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(s.id), s.stats.Events, duration)
		fmt.Fprintf(w, "           Commands: %d (%d ignored)\n", s.stats.Commands, s.stats.IgnoredCommands)
		fmt.Fprintf(w, "           Runs: %d (%d over time)\n", s.stats.Runs, s.stats.OverTime)
		fmt.Fprintf(w, "           Beeps: %d alerts, %d whistles\n", s.stats.Alerts, s.stats.Whistles)
		if s.stats.Interruptions > 0 {
			fmt.Fprintf(w, "           Interruptions: %d (longest %ds)\n", s.stats.Interruptions, s.stats.LongestInterruption)
		}
	}
}
