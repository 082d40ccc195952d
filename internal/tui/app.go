// Package tui provides the interactive Bubble Tea dashboard for growthsim.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/projection"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"
)

const (
	tabCalculator = iota
	tabSchedule
)

// App is the root Bubble Tea model.
type App struct {
	// Inputs and everything derived from them
	inputs   projection.Inputs
	result   projection.Result
	legend   []pie.Slice
	segments []pie.Segment
	schedule []projection.YearRow
	currency currency.Currency

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Calculator tab
	focus   int // index into projection.Fields
	editing bool
	input   textinput.Model

	// Schedule tab
	schedOffset int

	// Currency dropdown
	menuOpen   bool
	menuCursor int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160

	headerHeight     = 2 // brand row + tab bar
	minContentHeight = 5
)

// NewApp creates a new TUI app model starting from in.
func NewApp(in projection.Inputs, cur currency.Currency) App {
	a := App{
		inputs:    in.Normalize(),
		currency:  cur,
		needSetup: !config.Exists(),
	}
	a.recompute()

	if a.needSetup {
		a.setupVals = &setupValues{currency: cur.Code, theme: theme.Active.Name}
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute derives every output from the current inputs. Nothing is cached
// between calls.
func (a *App) recompute() {
	a.result = a.inputs.Project()
	a.legend = projection.Legend(a.result)
	a.segments = pie.Layout(projection.Breakdown(a.result), pie.DefaultCircle)
	a.schedule = projection.Schedule(a.inputs)

	if last := len(a.schedule) - 1; a.schedOffset > last {
		a.schedOffset = last
	}
	if a.schedOffset < 0 {
		a.schedOffset = 0
	}
}

func (a *App) setInput(key string, v float64) {
	a.inputs = a.inputs.With(key, v)
	a.recompute()
	log.Debug().Str("field", key).Float64("value", v).Float64("total", a.result.TotalValue).Msg("input changed")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.editing {
		return a.updateEditor(msg)
	}
	if a.menuOpen {
		return a.updateMenu(key)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "c":
		a.openMenu()
		return a, nil
	case "t":
		th := theme.Toggle()
		a.status = "theme: " + th.Name
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	if a.activeTab == tabCalculator {
		return a.updateCalculatorKey(key)
	}
	return a.updateScheduleKey(key)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.status = "could not save config"
			log.Error().Err(err).Msg("saving setup config")
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// ─── Currency menu ──────────────────────────────────────────────

func (a *App) openMenu() {
	a.menuOpen = true
	a.menuCursor = currency.Index(a.currency.Code)
	if a.menuCursor < 0 {
		a.menuCursor = 0
	}
}

func (a App) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.menuCursor < len(currency.All)-1 {
			a.menuCursor++
		}
	case "k", "up":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "enter", " ":
		a.selectCurrency(a.menuCursor)
	case "esc", "c", "q":
		a.menuOpen = false
	}
	return a, nil
}

func (a *App) selectCurrency(idx int) {
	if idx >= 0 && idx < len(currency.All) {
		a.currency = currency.All[idx]
		a.status = "currency: " + a.currency.Code
	}
	a.menuOpen = false
}

func currencyOptions() []string {
	opts := make([]string, len(currency.All))
	for i, c := range currency.All {
		opts[i] = c.Label()
	}
	return opts
}

// ─── Layout ─────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// contentLeft is the column where centered content starts.
func (a App) contentLeft() int {
	return (a.width - a.contentWidth()) / 2
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) currencyButton() string {
	return " " + a.currency.Symbol + " " + a.currency.Code + " ▾ "
}

func (a App) themeButton() string {
	if theme.Active.Dark {
		return " ☾ dark "
	}
	return " ☀ light "
}

// headerButtons returns the start column and width of the currency button
// and the theme toggle on the brand row.
func (a App) headerButtons() (curX, curW, themeX, themeW int) {
	curW = lipgloss.Width(a.currencyButton())
	themeW = lipgloss.Width(a.themeButton())
	themeX = a.width - 1 - themeW
	curX = themeX - 1 - curW
	return curX, curW, themeX, themeW
}

// menuOrigin returns the top-left corner of the open currency dropdown.
func (a App) menuOrigin() (int, int) {
	w, _ := components.DropdownSize(currencyOptions())
	curX, curW, _, _ := a.headerButtons()
	x := curX + curW - w
	if x < 0 {
		x = 0
	}
	return x, 1
}

// ─── View ───────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  growthsim needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) renderHeader() string {
	t := theme.Active
	w := a.width

	bg := lipgloss.NewStyle().Background(t.Background)
	brandStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Background).
		Bold(true)
	buttonStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceBright)
	if a.menuOpen {
		buttonStyle = buttonStyle.Foreground(t.AccentBright).Bold(true)
	}
	toggleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	brand := bg.Render(" ") + brandStyle.Render("◈ GrowthSim")
	curX, _, _, _ := a.headerButtons()
	gap := curX - lipgloss.Width(brand)
	if gap < 1 {
		gap = 1
	}

	row := brand + bg.Render(strings.Repeat(" ", gap)) +
		buttonStyle.Render(a.currencyButton()) + bg.Render(" ") +
		toggleStyle.Render(a.themeButton()) + bg.Render(" ")

	return row + "\n" + components.RenderTabBar(a.activeTab, w)
}

func (a App) statusHints() string {
	switch {
	case a.editing:
		return "[enter]apply  [esc]cancel"
	case a.menuOpen:
		return "[j/k]move  [enter]select  [esc]close"
	case a.activeTab == tabCalculator:
		return "[j/k]field  [h/l]adjust  [enter]type  [c]urrency  [t]heme  [?]help  [q]uit"
	default:
		return "[j/k]scroll  [c]urrency  [t]heme  [?]help  [q]uit"
	}
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader()
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.status)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabCalculator:
		content = a.renderCalculatorTab(cw)
	case tabSchedule:
		content = a.renderScheduleTab(cw, contentH)
	}

	// Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	if a.menuOpen {
		x, y := a.menuOrigin()
		menu := components.Dropdown(currencyOptions(), a.menuCursor, currency.Index(a.currency.Code))
		output = overlay(output, menu, x, y)
	}

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Indigo).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	section := func(b *strings.Builder, name string, binds [][2]string) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	section(&b, "Navigation", [][2]string{
		{"1 2", "Calculator / Schedule"},
		{"tab", "Next tab"},
		{"j k", "Select field / scroll"},
	})
	b.WriteString("\n")
	section(&b, "Parameters", [][2]string{
		{"h l  ← →", "Move slider one step"},
		{"- +", "Move slider one step"},
		{"Enter", "Type an exact value"},
		{"Esc", "Cancel typing"},
	})
	b.WriteString("\n")
	section(&b, "Display", [][2]string{
		{"c", "Currency menu"},
		{"t", "Toggle light / dark"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Mouse Support ──────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if a.menuOpen || a.editing {
			return a, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		if a.activeTab == tabSchedule {
			if up {
				return a.updateScheduleKey("k")
			}
			return a.updateScheduleKey("j")
		}
		if up {
			return a.updateCalculatorKey("k")
		}
		return a.updateCalculatorKey("j")

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		return a.handleClick(msg.X, msg.Y)
	}
	return a, nil
}

func (a App) handleClick(x, y int) (tea.Model, tea.Cmd) {
	// Any click outside an open menu closes it.
	if a.menuOpen {
		mx, my := a.menuOrigin()
		w, h := components.DropdownSize(currencyOptions())
		row := y - my - 1 // top border
		if x > mx && x < mx+w-1 && row >= 0 && row < h-2 {
			a.selectCurrency(row)
		} else {
			a.menuOpen = false
		}
		return a, nil
	}

	if y == 0 {
		curX, curW, themeX, themeW := a.headerButtons()
		switch {
		case x >= curX && x < curX+curW:
			a.openMenu()
		case x >= themeX && x < themeX+themeW:
			a.status = "theme: " + theme.Toggle().Name
		}
		return a, nil
	}

	if y == 1 {
		if tab := a.tabAtX(x); tab >= 0 {
			a.activeTab = tab
			a.editing = false
		}
		return a, nil
	}

	if a.activeTab == tabCalculator && !a.editing {
		a.clickParameters(x-a.contentLeft(), y-headerHeight)
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(x)
}

// ─── Helpers ────────────────────────────────────────────────────

// overlay draws box over base with its top-left corner at (x, y).
func overlay(base, box string, x, y int) string {
	lines := strings.Split(base, "\n")
	for i, boxLine := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		line := lines[row]
		w := ansi.StringWidth(boxLine)
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+w, "")
		lines[row] = left + boxLine + right
	}
	return strings.Join(lines, "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
