// Package theme defines color themes for the growthsim TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name           string
	Dark           bool
	Counterpart    string         // Theme that `t` toggles to
	Background     lipgloss.Color // Main app background
	Surface        lipgloss.Color // Card/panel backgrounds
	SurfaceHover   lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright  lipgloss.Color // Extra bright surface for emphasis
	Border         lipgloss.Color // Subtle borders
	BorderBright   lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent   lipgloss.Color // Accent-colored borders for focus states
	TextDim        lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted      lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary    lipgloss.Color // Primary content text
	Accent         lipgloss.Color // Primary accent (links, active states)
	AccentBright   lipgloss.Color // Brighter accent for emphasis
	AccentDim      lipgloss.Color // Dimmed accent for backgrounds
	Green          lipgloss.Color
	Red            lipgloss.Color
	Indigo         lipgloss.Color
	PieStroke      string // Separator between pie slices in SVG output
	PiePlaceholder lipgloss.Color
}

// Active is the currently selected theme.
var Active = SlateDark

// SlateDark is the default theme.
var SlateDark = Theme{
	Name:           "slate-dark",
	Dark:           true,
	Counterpart:    "slate-light",
	Background:     lipgloss.Color("#0f172a"),
	Surface:        lipgloss.Color("#1e293b"),
	SurfaceHover:   lipgloss.Color("#273449"),
	SurfaceBright:  lipgloss.Color("#334155"),
	Border:         lipgloss.Color("#334155"),
	BorderBright:   lipgloss.Color("#475569"),
	BorderAccent:   lipgloss.Color("#818cf8"),
	TextDim:        lipgloss.Color("#64748b"),
	TextMuted:      lipgloss.Color("#94a3b8"),
	TextPrimary:    lipgloss.Color("#f1f5f9"),
	Accent:         lipgloss.Color("#818cf8"),
	AccentBright:   lipgloss.Color("#a5b4fc"),
	AccentDim:      lipgloss.Color("#312e81"),
	Green:          lipgloss.Color("#34d399"),
	Red:            lipgloss.Color("#fb7185"),
	Indigo:         lipgloss.Color("#818cf8"),
	PieStroke:      "#1e293b",
	PiePlaceholder: lipgloss.Color("#334155"),
}

// SlateLight is the light counterpart of SlateDark.
var SlateLight = Theme{
	Name:           "slate-light",
	Dark:           false,
	Counterpart:    "slate-dark",
	Background:     lipgloss.Color("#f8fafc"),
	Surface:        lipgloss.Color("#ffffff"),
	SurfaceHover:   lipgloss.Color("#f1f5f9"),
	SurfaceBright:  lipgloss.Color("#e2e8f0"),
	Border:         lipgloss.Color("#e2e8f0"),
	BorderBright:   lipgloss.Color("#cbd5e1"),
	BorderAccent:   lipgloss.Color("#6366f1"),
	TextDim:        lipgloss.Color("#94a3b8"),
	TextMuted:      lipgloss.Color("#64748b"),
	TextPrimary:    lipgloss.Color("#1e293b"),
	Accent:         lipgloss.Color("#6366f1"),
	AccentBright:   lipgloss.Color("#4f46e5"),
	AccentDim:      lipgloss.Color("#e0e7ff"),
	Green:          lipgloss.Color("#059669"),
	Red:            lipgloss.Color("#e11d48"),
	Indigo:         lipgloss.Color("#6366f1"),
	PieStroke:      "#ffffff",
	PiePlaceholder: lipgloss.Color("#e2e8f0"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:           "flexoki-dark",
	Dark:           true,
	Counterpart:    "flexoki-light",
	Background:     lipgloss.Color("#100F0F"),
	Surface:        lipgloss.Color("#1C1B1A"),
	SurfaceHover:   lipgloss.Color("#282726"),
	SurfaceBright:  lipgloss.Color("#343331"),
	Border:         lipgloss.Color("#403E3C"),
	BorderBright:   lipgloss.Color("#575653"),
	BorderAccent:   lipgloss.Color("#3AA99F"),
	TextDim:        lipgloss.Color("#575653"),
	TextMuted:      lipgloss.Color("#878580"),
	TextPrimary:    lipgloss.Color("#FFFCF0"),
	Accent:         lipgloss.Color("#3AA99F"),
	AccentBright:   lipgloss.Color("#5BC8BE"),
	AccentDim:      lipgloss.Color("#1A3533"),
	Green:          lipgloss.Color("#879A39"),
	Red:            lipgloss.Color("#D14D41"),
	Indigo:         lipgloss.Color("#8B7EC8"),
	PieStroke:      "#1C1B1A",
	PiePlaceholder: lipgloss.Color("#403E3C"),
}

// FlexokiLight is the paper side of Flexoki.
var FlexokiLight = Theme{
	Name:           "flexoki-light",
	Dark:           false,
	Counterpart:    "flexoki-dark",
	Background:     lipgloss.Color("#FFFCF0"),
	Surface:        lipgloss.Color("#F2F0E5"),
	SurfaceHover:   lipgloss.Color("#E6E4D9"),
	SurfaceBright:  lipgloss.Color("#DAD8CE"),
	Border:         lipgloss.Color("#CECDC3"),
	BorderBright:   lipgloss.Color("#B7B5AC"),
	BorderAccent:   lipgloss.Color("#24837B"),
	TextDim:        lipgloss.Color("#B7B5AC"),
	TextMuted:      lipgloss.Color("#6F6E69"),
	TextPrimary:    lipgloss.Color("#100F0F"),
	Accent:         lipgloss.Color("#24837B"),
	AccentBright:   lipgloss.Color("#1C6C66"),
	AccentDim:      lipgloss.Color("#DDF1E4"),
	Green:          lipgloss.Color("#66800B"),
	Red:            lipgloss.Color("#AF3029"),
	Indigo:         lipgloss.Color("#5E409D"),
	PieStroke:      "#F2F0E5",
	PiePlaceholder: lipgloss.Color("#CECDC3"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:           "terminal",
	Dark:           true,
	Counterpart:    "terminal",
	Background:     lipgloss.Color("0"),
	Surface:        lipgloss.Color("0"),
	SurfaceHover:   lipgloss.Color("8"),
	SurfaceBright:  lipgloss.Color("8"),
	Border:         lipgloss.Color("8"),
	BorderBright:   lipgloss.Color("7"),
	BorderAccent:   lipgloss.Color("6"),
	TextDim:        lipgloss.Color("8"),
	TextMuted:      lipgloss.Color("7"),
	TextPrimary:    lipgloss.Color("15"),
	Accent:         lipgloss.Color("6"),
	AccentBright:   lipgloss.Color("14"),
	AccentDim:      lipgloss.Color("0"),
	Green:          lipgloss.Color("2"),
	Red:            lipgloss.Color("1"),
	Indigo:         lipgloss.Color("4"),
	PieStroke:      "#000000",
	PiePlaceholder: lipgloss.Color("8"),
}

// All available themes.
var All = []Theme{SlateDark, SlateLight, FlexokiDark, FlexokiLight, Terminal}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to SlateDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return SlateDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Toggle switches Active to its light/dark counterpart and returns it.
func Toggle() Theme {
	Active = ByName(Active.Counterpart)
	return Active
}
