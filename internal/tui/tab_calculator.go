package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/projection"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows inside the Parameters card, counted from its top border.
const (
	paramFirstRow = 2 // border + title
	paramRowPitch = 3 // label row, bar row, blank
	paramBarLeft  = 4 // border + padding + slider indent
)

func (a App) focusedField() projection.Field {
	if a.focus < 0 || a.focus >= len(projection.Fields) {
		return projection.Fields[0]
	}
	return projection.Fields[a.focus]
}

func (a App) updateCalculatorKey(key string) (tea.Model, tea.Cmd) {
	f := a.focusedField()
	v := a.inputs.Value(f.Key)

	switch key {
	case "j", "down":
		if a.focus < len(projection.Fields)-1 {
			a.focus++
		}
	case "k", "up":
		if a.focus > 0 {
			a.focus--
		}
	case "l", "right", "+", "=":
		a.setInput(f.Key, f.StepUp(v))
	case "h", "left", "-":
		a.setInput(f.Key, f.StepDown(v))
	case "enter":
		return a.startEdit()
	}
	return a, nil
}

func newValueInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 24
	return ti
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	f := a.focusedField()

	ti := newValueInput()
	ti.Placeholder = strconv.FormatFloat(f.Default, 'f', -1, 64)
	ti.SetValue(strconv.FormatFloat(a.inputs.Value(f.Key), 'f', -1, 64))
	ti.CursorEnd()
	ti.Focus()

	a.editing = true
	a.input = ti
	return a, textinput.Blink
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.setInput(a.focusedField().Key, parseTyped(a.input.Value()))
		a.editing = false
		return a, nil
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// parseTyped reads a typed value. Anything unparseable counts as 0; the
// result is never negative. Typed values may exceed the slider maximum.
func parseTyped(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return projection.Sanitize(v)
}

// paramCardWidth is the outer width of the Parameters card.
func (a App) paramCardWidth(cw int) int {
	if a.isCompactLayout() {
		return cw
	}
	return cw * 2 / 5
}

// clickParameters handles a click at (x, y) relative to the content origin.
// Clicking a label focuses its field; clicking a bar also sets the value.
func (a *App) clickParameters(x, y int) {
	cardW := a.paramCardWidth(a.contentWidth())
	if x < 0 || x >= cardW {
		return
	}
	row := y - paramFirstRow
	if row < 0 {
		return
	}
	idx, line := row/paramRowPitch, row%paramRowPitch
	if idx >= len(projection.Fields) || line == 2 {
		return
	}
	a.focus = idx
	if line == 0 {
		return
	}

	barW := components.CardInnerWidth(cardW) - 2
	pos := x - paramBarLeft
	if pos < 0 || pos >= barW {
		return
	}
	f := projection.Fields[idx]
	frac := 0.0
	if barW > 1 {
		frac = float64(pos) / float64(barW-1)
	}
	a.setInput(f.Key, f.FromFraction(frac))
}

func (a App) renderCalculatorTab(cw int) string {
	paramW := a.paramCardWidth(cw)
	params := a.renderParameters(paramW)

	if a.isCompactLayout() {
		return lipgloss.JoinVertical(lipgloss.Left,
			params,
			a.renderResultCards(cw),
			a.renderVisual(cw, false),
		)
	}

	rightW := cw - paramW
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderResultCards(rightW),
		a.renderVisual(rightW, true),
	)
	return components.CardRow([]string{params, right})
}

func (a App) renderParameters(outerW int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerW)
	blank := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", inner))

	rows := make([]string, 0, len(projection.Fields)*paramRowPitch)
	for i, f := range projection.Fields {
		v := a.inputs.Value(f.Key)
		if a.editing && i == a.focus {
			rows = append(rows, components.SliderEditor(f.Label, a.input.View(), inner))
		} else {
			rows = append(rows, components.Slider(
				f.Label, cli.FormatField(f, v, a.currency), f.Fraction(v), inner, i == a.focus))
		}
		if i < len(projection.Fields)-1 {
			rows = append(rows, blank)
		}
	}

	body := strings.Join(rows, "\n")
	if a.editing {
		return components.FocusedCard("Parameters", body, outerW)
	}
	return components.ContentCard("Parameters", body, outerW)
}

func (a App) renderResultCards(totalW int) string {
	t := theme.Active
	r := a.result
	widths := components.LayoutRow(totalW, 3)

	share := ""
	if r.TotalValue > 0 {
		share = cli.FormatPercent(r.InterestEarned/r.TotalValue) + " of balance"
	}

	return components.CardRow([]string{
		components.ResultCard("Final Balance", a.currency.Format(r.TotalValue),
			"after "+cli.FormatYears(a.inputs.Years), t.Accent, widths[0]),
		components.ResultCard("Invested Amount", a.currency.Format(r.Invested()),
			"principal + contributions", t.TextPrimary, widths[1]),
		components.ResultCard("Total Interest", a.currency.Format(r.InterestEarned),
			share, t.Green, widths[2]),
	})
}

// renderVisual draws the pie chart with its legend, side by side when wide.
func (a App) renderVisual(outerW int, wide bool) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerW)

	diameter := 24
	legendW := inner
	if wide {
		legendW = inner - diameter - 3
		if legendW < 24 {
			wide = false
			legendW = inner
		}
	}
	if diameter > inner {
		diameter = inner
	}

	chart := components.PieChart(a.segments, pie.DefaultCircle, diameter)
	legend := a.renderLegend(legendW)

	bg := lipgloss.NewStyle().Background(t.Surface)
	var body string
	if wide {
		body = lipgloss.JoinHorizontal(lipgloss.Center,
			chart, bg.Render("   "), legend)
	} else {
		chart = lipgloss.PlaceHorizontal(inner, lipgloss.Center, chart,
			lipgloss.WithWhitespaceBackground(t.Surface))
		body = chart + "\n" + bg.Render(strings.Repeat(" ", inner)) + "\n" + legend
	}

	return components.ContentCard("Breakdown", body, outerW)
}

func (a App) renderLegend(w int) string {
	t := theme.Active

	rows := make([]string, 0, len(a.legend)+2)
	for _, s := range a.legend {
		rows = append(rows, components.LegendRow(lipgloss.Color(s.Color), s.Label, a.currency.Format(s.Value), w))
	}

	rule := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render(strings.Repeat("─", w))
	rows = append(rows, rule)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	label := "Future Value"
	total := a.currency.Format(a.result.TotalValue)
	gap := w - lipgloss.Width(label) - lipgloss.Width(total)
	if gap < 1 {
		gap = 1
	}
	rows = append(rows, labelStyle.Render(label)+
		lipgloss.NewStyle().Background(t.Surface).Render(fmt.Sprintf("%*s", gap, ""))+
		totalStyle.Render(total))

	return strings.Join(rows, "\n")
}
