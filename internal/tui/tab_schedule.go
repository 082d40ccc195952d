package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/projection"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateScheduleKey(key string) (tea.Model, tea.Cmd) {
	last := len(a.schedule) - 1
	switch key {
	case "j", "down":
		if a.schedOffset < last {
			a.schedOffset++
		}
	case "k", "up":
		if a.schedOffset > 0 {
			a.schedOffset--
		}
	case "g":
		a.schedOffset = 0
	case "G":
		if last > 0 {
			a.schedOffset = last
		}
	case "left":
		a.activeTab = tabCalculator
	}
	return a, nil
}

func yearLabel(y float64) string {
	return strconv.FormatFloat(y, 'f', -1, 64)
}

func (a App) renderScheduleTab(cw, h int) string {
	t := theme.Active

	if len(a.schedule) == 0 {
		text := "Set Investment Years above 0 to see a yearly schedule."
		if a.inputs.Years > projection.MaxScheduleYears {
			text = fmt.Sprintf("Yearly schedules stop at %s years.",
				cli.FormatNumber(projection.MaxScheduleYears))
		}
		msg := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(text)
		return components.ContentCard("Schedule", msg, cw)
	}

	chartH := h/2 - 4
	if chartH < 4 {
		chartH = 4
	}
	if chartH > 14 {
		chartH = 14
	}

	stacks := make([][]float64, len(a.schedule))
	labels := make([]string, len(a.schedule))
	for i, y := range a.schedule {
		stacks[i] = []float64{y.Principal, y.Contributions, y.Interest}
		labels[i] = yearLabel(y.Year)
	}
	colors := []lipgloss.Color{
		lipgloss.Color(projection.ColorPrincipal),
		lipgloss.Color(projection.ColorContributions),
		lipgloss.Color(projection.ColorInterest),
	}

	inner := components.CardInnerWidth(cw)
	chart := components.StackedBarChart(stacks, colors, labels, inner, chartH)
	chartCard := components.ContentCard("Balance by Year ("+a.currency.Code+")", chart, cw)

	// Remaining height for the table card: border(2) + title + header
	rowsAvail := h - lipgloss.Height(chartCard) - 4
	if rowsAvail < 1 {
		rowsAvail = 1
	}

	return lipgloss.JoinVertical(lipgloss.Left, chartCard, a.renderScheduleTable(cw, rowsAvail))
}

func (a App) renderScheduleTable(cw, rows int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	cols := []string{"Year", "Balance", "Principal", "Contributions", "Interest"}
	yearW := 6
	numW := (inner - yearW) / (len(cols) - 1)

	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%-*s", yearW, cells[0]))
		for _, c := range cells[1:] {
			b.WriteString(fmt.Sprintf("%*s", numW, c))
		}
		return b.String()
	}

	out := []string{headStyle.Render(line(cols))}

	end := a.schedOffset + rows
	if end > len(a.schedule) {
		end = len(a.schedule)
	}
	for _, y := range a.schedule[a.schedOffset:end] {
		out = append(out, rowStyle.Render(line([]string{
			yearLabel(y.Year),
			a.currency.Format(y.Balance),
			a.currency.Format(y.Principal),
			a.currency.Format(y.Contributions),
			a.currency.Format(y.Interest),
		})))
	}

	title := "Schedule"
	if len(a.schedule) > rows {
		title += dimStyle.Render(fmt.Sprintf("  %d-%d of %d", a.schedOffset+1, end, len(a.schedule)))
	}
	return components.ContentCard(title, strings.Join(out, "\n"), cw)
}
