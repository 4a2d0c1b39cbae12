package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logsift/internal/severity"
)

// Theme defines the palette used for terminal output and the pager.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	FocusBg    string
	Border     string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Semantic colors, also used for log levels
	Success string
	Warning string
	Danger  string
	Info    string
	Magenta string
}

// levelStyle describes how one severity level is drawn.
type levelStyle struct {
	color func(Theme) string
	bold  bool
}

// levelStyles maps each level to its display style.
var levelStyles = map[severity.Level]levelStyle{
	severity.Error: {color: func(t Theme) string { return t.Danger }, bold: true},
	severity.Warn:  {color: func(t Theme) string { return t.Warning }, bold: true},
	severity.Info:  {color: func(t Theme) string { return t.Success }},
	severity.Debug: {color: func(t Theme) string { return t.Accent }},
	severity.Trace: {color: func(t Theme) string { return t.Magenta }},
}

// LevelColor returns the foreground color for a level.
func (t Theme) LevelColor(l severity.Level) string {
	if ls, ok := levelStyles[l]; ok {
		return ls.color(t)
	}
	return t.Text
}

// Styles returns Lipgloss styles for this theme bound to r. A nil renderer
// uses the lipgloss default renderer.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	s := Styles{
		Banner: base.
			Foreground(lipgloss.Color(t.Info)).
			Bold(true),

		Heading: base.
			Foreground(lipgloss.Color(t.Info)).
			Bold(true),

		Bold: base.Bold(true),

		Text: base.
			Foreground(lipgloss.Color(t.Text)),

		MutedText: base.
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: base.
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: base.
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: base.
			Foreground(lipgloss.Color(t.Warning)),

		Match: base.
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.Background)),

		Footer: base.
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		levels: make(map[severity.Level]lipgloss.Style, len(levelStyles)),
		plain:  base,
	}
	for level, ls := range levelStyles {
		s.levels[level] = base.Foreground(lipgloss.Color(ls.color(t))).Bold(ls.bold)
	}
	return s
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Banner  lipgloss.Style
	Heading lipgloss.Style
	Bold    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	Match       lipgloss.Style

	Footer lipgloss.Style

	levels map[severity.Level]lipgloss.Style
	plain  lipgloss.Style
}

// Level returns the style for a severity level.
func (s Styles) Level(l severity.Level) lipgloss.Style {
	if style, ok := s.levels[l]; ok {
		return style
	}
	return s.plain
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// DefaultThemeName is used when neither flags, config nor prefs name a theme.
const DefaultThemeName = "Nightfox"

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		FocusBg:    "#29394f", // bg3
		Border:     "#39506d", // bg4

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#71839b", // fg3
		Accent: "#719cd6", // blue

		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
		Magenta: "#9d79d6", // magenta
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		FocusBg:    "#2A2A37", // sumiInk4
		Border:     "#54546D", // sumiInk6

		Text:   "#DCD7BA", // fujiWhite
		Muted:  "#C8C093", // oldWhite
		Faint:  "#727169", // fujiGray
		Accent: "#7E9CD8", // crystalBlue

		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue
		Magenta: "#957FB8", // oniViolet
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		FocusBg:    "#283548", // between slate-800 and slate-700
		Border:     "#334155", // slate-700

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400

		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
		Magenta: "#a78bfa", // violet-400
	}
}
