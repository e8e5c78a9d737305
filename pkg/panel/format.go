package panel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned when a time string cannot be parsed.
var ErrInvalidTime = errors.New("invalid time string")

// FormatSeconds formats n seconds as m:ss with a leading minus sign for
// negative values. Minutes are not padded: 0 is "0:00", 125 is "2:05",
// -5 is "-0:05".
func FormatSeconds(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d:%02d", sign, n/60, n%60)
}

// ParseSeconds parses a string produced by FormatSeconds.
func ParseSeconds(s string) (int, error) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	mm, ss, ok := strings.Cut(body, ":")
	if !ok || len(ss) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || strings.HasPrefix(mm, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	n, err := strconv.Atoi(ss)
	if err != nil || n < 0 || n > 59 || strings.HasPrefix(ss, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	total := m*60 + n
	if neg {
		total = -total
	}
	return total, nil
}
