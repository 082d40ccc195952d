package components

import (
	"strings"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Calculator", Key: '1'},
	{Name: "Schedule", Key: '2'},
}

const tabGap = 2

// TabVisualWidth returns the rendered width of a tab label, "[1] Calculator".
func TabVisualWidth(tab Tab) int {
	return lipgloss.Width(tabLabel(tab))
}

func tabLabel(tab Tab) string {
	return "[" + string(tab.Key) + "] " + tab.Name
}

// TabAtX returns the index of the tab under column x of a tab bar rendered by
// RenderTabBar, or -1.
func TabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range Tabs {
		w := TabVisualWidth(tab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + tabGap
	}
	return -1
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Background).
		Bold(true).
		Underline(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Background)

	fill := lipgloss.NewStyle().Background(t.Background)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tabLabel(tab))
		} else {
			parts[i] = inactiveStyle.Render(tabLabel(tab))
		}
	}

	bar := fill.Render(" ") + strings.Join(parts, fill.Render(strings.Repeat(" ", tabGap)))
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += fill.Render(strings.Repeat(" ", pad))
	}
	return bar
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
