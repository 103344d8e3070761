// Package report renders plans, progress, and run history for display.
package report

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration in the unit a human would pick:
// seconds under a minute, minutes under an hour, hours beyond.
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	default:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	}
}

func msDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// FormatRate renders a bit rate in kbps.
func FormatRate(bitsPerSecond float64) string {
	return fmt.Sprintf("%.2f kbps", bitsPerSecond/1000)
}

// RenderBar draws a proportional fill for current out of total, e.g.
// [██████░░░░░░░░░]  40.0%. Width is the number of fill cells.
func RenderBar(current, total, width int) string {
	if width < 1 {
		width = 1
	}
	if total < 1 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := width * current / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := float64(current) / float64(total) * 100
	return fmt.Sprintf("[%s] %5.1f%%", bar, pct)
}
