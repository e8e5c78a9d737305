package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/skatewatch/skatewatch-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "category", "mode", "phase", "main_seconds", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
			event.SessionID,
			event.Category.String(),
			event.Mode,
			event.Phase,
			strconv.Itoa(event.MainSeconds),
			eventDetail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// eventDetail summarizes the payload of an event in one field.
func eventDetail(event log.Event) string {
	switch {
	case event.Command != nil:
		if !event.Command.Applied {
			return event.Command.Token + " (ignored)"
		}
		return event.Command.Token
	case event.Transition != nil:
		return event.Transition.OldState + " -> " + event.Transition.NewState
	case event.Tier != nil:
		if event.Tier.Message != "" {
			return event.Tier.Color + " " + event.Tier.Message
		}
		return event.Tier.Color
	case event.Beep != nil:
		return fmt.Sprintf("%s %d", event.Beep.Reason, event.Beep.Loops)
	case event.Interruption != nil:
		if event.Interruption.Ended {
			return fmt.Sprintf("#%d ended %ds", event.Interruption.Count, event.Interruption.Duration)
		}
		return fmt.Sprintf("#%d at %ds", event.Interruption.Count, event.Interruption.StartedAt)
	default:
		return ""
	}
}
