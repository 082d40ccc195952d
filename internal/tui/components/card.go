// Package components provides reusable TUI widgets for the growthsim dashboard.
package components

import (
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// ResultCard renders one of the headline figures: a label, a large value and
// a short caption. accent colors the value.
// outerWidth is the total rendered width including border.
func ResultCard(label, value, caption string, accent lipgloss.Color, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	valueStyle := lipgloss.NewStyle().
		Foreground(accent).
		Background(t.Surface).
		Bold(true)

	captionStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	content := labelStyle.Render(label) + "\n" +
		valueStyle.Render(value)
	if caption != "" {
		content += "\n" + captionStyle.Render(caption)
	}

	return cardStyle.Render(content)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, false)
}

// FocusedCard is a ContentCard with an accent border.
func FocusedCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, true)
}

func contentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if focused {
		border = t.BorderAccent
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally. Shorter cards are
// padded with background-styled blank lines so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}

	height := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > height {
			height = h
		}
	}

	fill := lipgloss.NewStyle().Background(theme.Active.Background)
	padded := make([]string, len(cards))
	for i, c := range cards {
		h := lipgloss.Height(c)
		if h == height {
			padded[i] = c
			continue
		}
		blank := fill.Render(strings.Repeat(" ", lipgloss.Width(c)))
		padded[i] = c + strings.Repeat("\n"+blank, height-h)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
