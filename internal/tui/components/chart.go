package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// StackedBarChart renders one vertical bar per stack, each bar split bottom-up
// into colored layers (colors[i] paints stacks[*][i]). labels run along the
// x axis and may be nil.
func StackedBarChart(stacks [][]float64, colors []lipgloss.Color, labels []string, width, height int) string {
	if len(stacks) == 0 {
		return ""
	}

	totals := make([]float64, len(stacks))
	for i, s := range stacks {
		for _, v := range s {
			if v > 0 {
				totals[i] += v
			}
		}
	}

	top := theme.Active.Accent
	if len(colors) > 0 {
		top = colors[len(colors)-1]
	}
	if width < 15 || height < 3 {
		return Sparkline(totals, top)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range totals {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(stacks)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 2 && n > 1 {
		// Too many bars: sample evenly, always keeping the last one.
		maxN := (chartW + 1) / 3
		if maxN < 2 {
			maxN = 2
		}
		sampledStacks := make([][]float64, maxN)
		sampledTotals := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampledStacks {
			src := i * (n - 1) / (maxN - 1)
			sampledStacks[i] = stacks[src]
			sampledTotals[i] = totals[src]
			if sampledLabels != nil {
				sampledLabels[i] = labels[src]
			}
		}
		stacks, totals, labels = sampledStacks, sampledTotals, sampledLabels
		n = maxN
		barW = 2
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, total := range totals {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case total >= rowTop:
				c := layerColor(stacks[i], colors, (rowTop+rowBottom)/2, top)
				b.WriteString(lipgloss.NewStyle().Foreground(c).Background(t.Surface).
					Render(strings.Repeat("█", barW)))
			case total > rowBottom:
				frac := (total - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				c := layerColor(stacks[i], colors, rowBottom, top)
				b.WriteString(lipgloss.NewStyle().Foreground(c).Background(t.Surface).
					Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n && n > 0 {
		buf := []byte(strings.Repeat(" ", axisLen))
		labelStep := max(1, (n*6)/(axisLen+1))
		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// layerColor returns the color of the layer of stack that covers height y.
func layerColor(stack []float64, colors []lipgloss.Color, y float64, fallback lipgloss.Color) lipgloss.Color {
	cum := 0.0
	last := fallback
	for i, v := range stack {
		if v <= 0 || i >= len(colors) {
			continue
		}
		cum += v
		last = colors[i]
		if y < cum {
			return colors[i]
		}
	}
	return last
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		return trimUnit(v/1e9, "B")
	case v >= 1e6:
		return trimUnit(v/1e6, "M")
	case v >= 1e3:
		return trimUnit(v/1e3, "k")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimUnit(v float64, unit string) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f%s", v, unit)
	}
	return fmt.Sprintf("%.1f%s", v, unit)
}
