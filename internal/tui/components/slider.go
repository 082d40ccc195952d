package components

import (
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders one parameter row: label and value on the first line, a
// bar filled to frac (0-1) on the second. focused rows get an accent marker
// and fill color.
func Slider(label, value string, frac float64, width int, focused bool) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if width < 12 {
		width = 12
	}

	fill := t.TextMuted
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if focused {
		fill = t.Accent
		marker = "▸ "
		labelStyle = labelStyle.Foreground(t.TextPrimary).Bold(true)
	}
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	barW := width - 2
	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(t.Border)

	gap := width - 2 - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}

	top := markerStyle.Render(marker) +
		labelStyle.Render(label) +
		spaceStyle.Render(strings.Repeat(" ", gap)) +
		valueStyle.Render(value)
	return top + "\n" + spaceStyle.Render("  ") + bar.ViewAs(frac)
}

// SliderEditor renders the row of a field whose value is being typed.
func SliderEditor(label, input string, width int) string {
	t := theme.Active

	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	hint := "enter apply · esc cancel"
	gap := width - 2 - lipgloss.Width(label) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return markerStyle.Render("▸ ") + labelStyle.Render(label) +
		spaceStyle.Render(strings.Repeat(" ", gap)) + hintStyle.Render(hint) +
		"\n" + spaceStyle.Render("  ") + input
}
