package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// PieChart rasterizes segments into a disc of the given diameter in
// terminal columns. Each cell holds two vertically stacked pixels drawn
// with half blocks, so the disc is diameter columns wide and diameter/2
// rows tall. An empty segment list draws a placeholder disc.
func PieChart(segs []pie.Segment, c pie.Circle, diameter int) string {
	t := theme.Active
	if diameter < 4 {
		diameter = 4
	}
	if diameter%2 == 1 {
		diameter--
	}

	rows := diameter / 2
	r := float64(diameter) / 2

	// pixel returns the color at pixel (px, py), "" outside the disc.
	pixel := func(px, py int) lipgloss.Color {
		dx := (float64(px) + 0.5 - r) / r
		dy := (float64(py) + 0.5 - r) / r
		if dx*dx+dy*dy > 1 {
			return ""
		}
		if len(segs) == 0 {
			return t.PiePlaceholder
		}
		angle := math.Atan2(dy, dx)*180/math.Pi - c.Offset
		seg, _ := pie.At(segs, angle)
		return lipgloss.Color(seg.Color)
	}

	styles := make(map[[2]lipgloss.Color]lipgloss.Style)
	cell := func(top, bottom lipgloss.Color) string {
		key := [2]lipgloss.Color{top, bottom}
		st, ok := styles[key]
		if !ok {
			st = lipgloss.NewStyle().Background(t.Surface)
			switch {
			case top != "" && bottom != "":
				st = st.Foreground(top).Background(bottom)
			case top != "":
				st = st.Foreground(top)
			case bottom != "":
				st = st.Foreground(bottom)
			}
			styles[key] = st
		}
		switch {
		case top == "" && bottom == "":
			return st.Render(" ")
		case top == "":
			return st.Render("▄")
		default:
			return st.Render("▀")
		}
	}

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < diameter; col++ {
			b.WriteString(cell(pixel(col, row*2), pixel(col, row*2+1)))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// LegendRow renders a colored dot, a label and a right-aligned amount.
func LegendRow(color lipgloss.Color, label, amount string, width int) string {
	t := theme.Active

	dot := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render("●")
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	gap := width - 2 - lipgloss.Width(label) - lipgloss.Width(amount)
	if gap < 1 {
		gap = 1
	}
	return dot + spaceStyle.Render(" ") + labelStyle.Render(label) +
		spaceStyle.Render(strings.Repeat(" ", gap)) + amountStyle.Render(amount)
}
