// Package util holds small helpers shared across layers.
package util

import (
	"fmt"
	"strings"
	"time"
)

// SameName reports whether two display names are equal once surrounding
// blanks and case are ignored.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s", "300ms").
func FormatDuration(duration time.Duration) string {
	if duration > 0 && duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
