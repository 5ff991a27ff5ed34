// Package utils holds the small time and text helpers shared by the CLI and
// the panel.
package utils

import (
	"fmt"
	"strings"
	"time"

	"grasspit/internal/constants"
)

// DayKey returns the date string (YYYY-MM-DD) used for daily rollover.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatDurationMs renders a millisecond count for humans: "45s", "12m",
// "1.5h".
func FormatDurationMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// FormatClock renders seconds as m:ss for countdown display.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// SplitPatterns parses a comma-separated keyword list, trimming whitespace
// and dropping empty entries.
func SplitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
