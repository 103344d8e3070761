package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextKeepsNewlines(t *testing.T) {
	lines := wrapText("one\ntwo\n", 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "one" || lines[1] != "two" || lines[2] != "" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWrapTextBreaksAtWordBoundary(t *testing.T) {
	lines := wrapText("alpha beta gamma", 11)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "alpha beta" {
		t.Fatalf("expected break after beta, got %q", lines[0])
	}
	if lines[1] != "gamma" {
		t.Fatalf("expected gamma on second line, got %q", lines[1])
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	lines := wrapText(strings.Repeat("x", 25), 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	for i, line := range lines[:2] {
		if len(line) != 10 {
			t.Fatalf("line %d has length %d, want 10", i, len(line))
		}
	}
}

func TestWrapTextRespectsRuneWidth(t *testing.T) {
	wide := strings.Repeat("世", 8)
	lines := wrapText(wide, 10)
	for i, line := range lines {
		total := 0
		for _, r := range line {
			total += runewidth.RuneWidth(r)
		}
		if total > 10 {
			t.Fatalf("line %d exceeds width: %q", i, line)
		}
	}
}

func TestTailLines(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	tail := tailLines(lines, 2)
	if len(tail) != 2 || tail[0] != "c" || tail[1] != "d" {
		t.Fatalf("unexpected tail: %q", tail)
	}
	if got := tailLines(lines, 10); len(got) != 4 {
		t.Fatalf("expected all lines back, got %q", got)
	}
}
