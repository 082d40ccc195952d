package components

import (
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and an optional message on the right.
func RenderStatusBar(width int, hints, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Background).
		MaxWidth(width)

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
