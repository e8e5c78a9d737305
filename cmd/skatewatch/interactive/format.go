package interactive

import (
	"fmt"
	"strings"

	"github.com/skatewatch/skatewatch-go/pkg/classify"
	"github.com/skatewatch/skatewatch-go/pkg/panel"
)

// ANSI escape sequences.
const (
	ansiReset  = "\x1b[0m"
	ansiBlue   = "\x1b[34m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiOrange = "\x1b[38;5;208m"
	ansiRed    = "\x1b[31m"
)

// StatusLine renders the frame as one line.
func StatusLine(f panel.Frame, color bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%7s", f.Time)
	if f.Message != "" {
		fmt.Fprintf(&b, "  %s", f.Message)
	}
	if f.SecondHalf != "" {
		fmt.Fprintf(&b, "  [%s]", f.SecondHalf)
	}
	fmt.Fprintf(&b, "  | %s | %s", f.Mode, durationText(f))
	return paint(b.String(), tierColor(f.Color), color)
}

// FormatFrame renders the full panel over several lines.
func FormatFrame(f panel.Frame, color bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Mode)

	big := fmt.Sprintf("  %s  %s", f.Time, tierName(f.Color))
	if f.Message != "" {
		big += "  " + f.Message
	}
	if f.SecondHalf != "" {
		big += "  " + f.SecondHalf
	}
	fmt.Fprintf(&b, "%s\n", paint(big, tierColor(f.Color), color))

	fmt.Fprintf(&b, "  %s\n", durationText(f))
	for _, n := range f.Notes {
		if n.Text == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", paint(n.Text, noteColor(n.Color), color))
	}
	return b.String()
}

func durationText(f panel.Frame) string {
	return strings.TrimSpace(strings.Join(f.Duration[:], " "))
}

func tierName(c classify.Color) string {
	if c == classify.Idle {
		return "STOPPED"
	}
	return c.String()
}

func tierColor(c classify.Color) string {
	switch c {
	case classify.Green:
		return ansiGreen
	case classify.Yellow:
		return ansiYellow
	case classify.Orange:
		return ansiOrange
	case classify.Red:
		return ansiRed
	default:
		return ansiBlue
	}
}

func noteColor(c panel.NoteColor) string {
	switch c {
	case panel.Orange:
		return ansiOrange
	case panel.Red:
		return ansiRed
	default:
		return ""
	}
}

func paint(s, code string, enabled bool) string {
	if !enabled || code == "" {
		return s
	}
	return code + s + ansiReset
}
