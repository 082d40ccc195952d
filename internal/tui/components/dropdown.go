package components

import (
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Dropdown renders a bordered option list with the cursor row highlighted
// and a check mark on the selected row.
func Dropdown(options []string, cursor, selected int) string {
	t := theme.Active

	width := 0
	for _, o := range options {
		if w := lipgloss.Width(o); w > width {
			width = w
		}
	}
	width += 4 // check mark column + padding

	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(width)
	hover := row.Background(t.SurfaceHover).Foreground(t.AccentBright).Bold(true)

	lines := make([]string, len(options))
	for i, o := range options {
		mark := "  "
		if i == selected {
			mark = "✓ "
		}
		st := row
		if i == cursor {
			st = hover
		}
		lines[i] = st.Render(" " + mark + o)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		BorderBackground(t.Background).
		Render(strings.Join(lines, "\n"))
}

// DropdownSize returns the rendered width and height of a Dropdown.
func DropdownSize(options []string) (int, int) {
	width := 0
	for _, o := range options {
		if w := lipgloss.Width(o); w > width {
			width = w
		}
	}
	return width + 4 + 2, len(options) + 2
}
