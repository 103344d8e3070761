// Package tui provides the Bubble Tea playback interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into display lines no wider than width, preferring
// word boundaries and keeping existing newlines. Widths are measured per
// rune so wide characters do not overflow the terminal.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	var out []string
	current := make([]rune, 0, len(line))
	currentWidth := 0
	lastSpaceIdx := -1

	runes := []rune(line)
	for i := 0; i < len(runes); {
		r := runes[i]
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width && len(current) > 0 {
			if lastSpaceIdx >= 0 {
				out = append(out, string(current[:lastSpaceIdx]))
				current = append([]rune{}, current[lastSpaceIdx+1:]...)
			} else {
				out = append(out, string(current))
				current = current[:0]
			}
			currentWidth = lineWidth(current)
			lastSpaceIdx = lastSpaceIndex(current)
			continue
		}
		current = append(current, r)
		currentWidth += rw
		if r == ' ' {
			lastSpaceIdx = len(current) - 1
		}
		i++
	}
	out = append(out, string(current))
	return out
}

func lineWidth(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += runewidth.RuneWidth(r)
	}
	return total
}

func lastSpaceIndex(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// tailLines keeps the last n lines.
func tailLines(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
