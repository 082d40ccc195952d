package tui

import (
	"testing"

	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func click(a App, x, y int) App {
	m, _ := a.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	return m.(App)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	a := newTestApp()
	pos := 1 // leading space

	for i, tab := range components.Tabs {
		w := len("[1] ") + len(tab.Name)
		x := pos + w/2 // midpoint inside this tab
		if got := a.tabAtX(x); got != i {
			t.Fatalf("x=%d -> tab=%d, want %d", x, got, i)
		}
		pos += w + 2 // gap between tabs
	}
}

func TestClickTabBar(t *testing.T) {
	a := newTestApp()
	a = click(a, 1+len("[1] Calculator")+2+1, 1)
	if a.activeTab != tabSchedule {
		t.Fatalf("activeTab = %d, want schedule", a.activeTab)
	}
}

func TestClickCurrencyButtonOpensMenu(t *testing.T) {
	a := newTestApp()
	curX, _, _, _ := a.headerButtons()
	a = click(a, curX+1, 0)
	if !a.menuOpen {
		t.Fatal("currency menu should open")
	}

	// Second row of the dropdown (below its top border) is EUR.
	mx, my := a.menuOrigin()
	a = click(a, mx+2, my+2)
	if a.menuOpen {
		t.Error("selecting should close the menu")
	}
	if a.currency.Code != "EUR" {
		t.Errorf("currency = %s, want EUR", a.currency.Code)
	}
}

func TestClickOutsideClosesMenu(t *testing.T) {
	a := newTestApp()
	a.openMenu()
	a = click(a, 0, 20)
	if a.menuOpen {
		t.Error("click outside should close the menu")
	}
	if a.currency.Code != currency.Default.Code {
		t.Errorf("currency changed to %s", a.currency.Code)
	}
}

func TestClickThemeToggle(t *testing.T) {
	prev := theme.Active
	defer func() { theme.Active = prev }()
	theme.SetActive("slate-dark")

	a := newTestApp()
	_, _, themeX, _ := a.headerButtons()
	click(a, themeX+1, 0)
	if theme.Active.Name != "slate-light" {
		t.Errorf("theme = %s, want slate-light", theme.Active.Name)
	}
}

func TestClickSliderSetsValue(t *testing.T) {
	a := newTestApp()
	left := a.contentLeft()

	// Bar row of the Interest Rate field, at the very start of the bar.
	rateBarY := headerHeight + paramFirstRow + 1*paramRowPitch + 1
	a = click(a, left+paramBarLeft, rateBarY)
	if a.focus != 1 {
		t.Fatalf("focus = %d, want 1", a.focus)
	}
	if a.inputs.AnnualRatePercent != 0 {
		t.Errorf("rate = %v, want 0", a.inputs.AnnualRatePercent)
	}

	// Label row only focuses.
	yearsLabelY := headerHeight + paramFirstRow + 2*paramRowPitch
	a = click(a, left+paramBarLeft, yearsLabelY)
	if a.focus != 2 || a.inputs.Years != 15 {
		t.Errorf("focus=%d years=%v after label click", a.focus, a.inputs.Years)
	}
	if a.result != a.inputs.Project() {
		t.Error("result not recomputed after click")
	}
}

func TestMouseIgnoredWhileSetup(t *testing.T) {
	a := newTestApp()
	a.needSetup = true
	a.setupVals = &setupValues{}
	a.setupForm = newSetupForm(a.setupVals)
	a = click(a, 1+len("[1] Calculator")+3, 1)
	if a.activeTab != tabCalculator {
		t.Error("clicks should be ignored during setup")
	}
}
