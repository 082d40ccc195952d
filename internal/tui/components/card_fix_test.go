package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/growthsim/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("slate-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	// After the short card ends, its padding must still carry background codes
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - will show as black squares", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("slate-dark")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("Line %d: width %d, want %d", i, w, want)
		}
	}

	tallLines := len(strings.Split(tallCard, "\n"))
	if len(lines) != tallLines {
		t.Errorf("Joined should have %d lines (tallest), got %d", tallLines, len(lines))
	}
}

func TestResultCardWidth(t *testing.T) {
	theme.SetActive("slate-light")
	defer theme.SetActive("slate-dark")

	card := ResultCard("Final Balance", "$115,549", "after 15 years", theme.Active.Indigo, 30)
	for i, line := range strings.Split(card, "\n") {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	if !strings.Contains(card, "$115,549") {
		t.Error("value missing from card")
	}
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 || widths[0] != 34 || widths[2] != 33 {
		t.Errorf("LayoutRow(100, 3) = %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}
