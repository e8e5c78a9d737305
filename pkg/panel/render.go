package panel

import (
	"fmt"

	"github.com/skatewatch/skatewatch-go/pkg/classify"
	"github.com/skatewatch/skatewatch-go/pkg/engine"
	"github.com/skatewatch/skatewatch-go/pkg/interruption"
	"github.com/skatewatch/skatewatch-go/pkg/mode"
)

// Panel text.
const (
	SecondHalfText = "2nd Half"
	DurationLabel  = "DUR"
	NoInterrupts   = "No Interruptions"
	NotYet         = "--"

	NoisyHint1  = "(makes beeps on button-press)"
	NoisyHint2  = "Click SILENT to eliminate"
	SilentHint1 = "(no beeps on button-press)"
	SilentHint2 = "Click NOISY to restore"
)

// CallOverdue is how long a called skater may take to start before the
// call note turns red.
const CallOverdue = 30

// NoteColor is the color of a notes line.
type NoteColor uint8

const (
	White NoteColor = iota
	Orange
	Red
)

// String returns the color name.
func (c NoteColor) String() string {
	switch c {
	case White:
		return "WHITE"
	case Orange:
		return "ORANGE"
	case Red:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// Note is one line of the notes box.
type Note struct {
	Text  string
	Color NoteColor
}

// Frame is the rendered panel.
type Frame struct {
	Time       string
	Color      classify.Color
	Message    string
	SecondHalf string
	Mode       string

	// Duration holds the three lines of the duration box.
	Duration [3]string

	Notes [3]Note
}

// Render builds the panel for s.
func Render(s engine.Snapshot) Frame {
	f := Frame{
		Time:     FormatSeconds(s.Main),
		Color:    s.Tier.Color,
		Message:  s.Tier.Message,
		Mode:     s.Label,
		Duration: [3]string{DurationLabel, FormatSeconds(s.Target), s.Kind.Label()},
	}
	if s.SecondHalf {
		f.SecondHalf = SecondHalfText
	}

	if s.Mode == mode.Warmup {
		f.Duration[2] = ""
		if s.Noisy {
			f.Notes[0].Text, f.Notes[1].Text = NoisyHint1, NoisyHint2
		} else {
			f.Notes[0].Text, f.Notes[1].Text = SilentHint1, SilentHint2
		}
		return f
	}

	f.Notes[0] = callNote(s)
	f.Notes[1] = Note{Text: "Since Last Skater End: " + reading(s.Separation)}
	f.Notes[2] = interruptNote(s)
	return f
}

func callNote(s engine.Snapshot) Note {
	n := Note{Text: "Since Skater Called: " + reading(s.Call)}
	if s.CallRunning && s.Call >= CallOverdue {
		n.Color = Red
	}
	return n
}

func interruptNote(s engine.Snapshot) Note {
	if s.Interruptions == 0 {
		return Note{Text: NoInterrupts}
	}
	n := Note{
		Text: fmt.Sprintf("Interrupt @ %s   Dur: %ds", FormatSeconds(s.InterruptAt), s.InterruptSeconds),
	}
	switch interruption.Classify(s.InterruptSeconds) {
	case interruption.Urgent:
		n.Color = Red
	case interruption.Warning:
		n.Color = Orange
	}
	return n
}

func reading(secs int) string {
	if secs == engine.NotStarted {
		return NotYet
	}
	return FormatSeconds(secs)
}
