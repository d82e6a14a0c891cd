package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ptable/internal/catalog"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and overlays
	SurfaceAlt string // Hidden cell placeholders
	FocusBg    string // Focus on a hidden cell

	// Selection
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Category colors, one per element category
	CategoryColors map[catalog.Category]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Hidden: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Faint)),

		HiddenFocused: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),

		categoryColors: t.CategoryColors,
		background:     t.Background,
		muted:          t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header        lipgloss.Style
	Logo          lipgloss.Style
	Selected      lipgloss.Style
	Hidden        lipgloss.Style
	HiddenFocused lipgloss.Style

	categoryColors map[catalog.Category]string
	background     string
	muted          string
}

// CategoryStyle returns the cell style for an element category.
func (s Styles) CategoryStyle(c catalog.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(s.CategoryColor(c)))
}

// CategoryColor returns the color for c, falling back to the muted color.
func (s Styles) CategoryColor(c catalog.Category) string {
	if color := s.categoryColors[c]; color != "" {
		return color
	}
	return s.muted
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
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
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		CategoryColors: map[catalog.Category]string{
			catalog.AlkaliMetal:         "#c94f6d", // red
			catalog.AlkalineEarthMetal:  "#f4a261", // orange
			catalog.TransitionMetal:     "#719cd6", // blue
			catalog.PostTransitionMetal: "#63cdcf", // cyan
			catalog.Metalloid:           "#81b29a", // green
			catalog.Nonmetal:            "#dbc074", // yellow
			catalog.Halogen:             "#d67ad2", // pink
			catalog.NobleGas:            "#9d79d6", // magenta
			catalog.Lanthanide:          "#86abdc", // blue bright
			catalog.Actinide:            "#e26886", // red bright
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#363646", // sumiInk5

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		CategoryColors: map[catalog.Category]string{
			catalog.AlkaliMetal:         "#E46876", // waveRed
			catalog.AlkalineEarthMetal:  "#FFA066", // surimiOrange
			catalog.TransitionMetal:     "#7E9CD8", // crystalBlue
			catalog.PostTransitionMetal: "#7FB4CA", // springBlue
			catalog.Metalloid:           "#98BB6C", // springGreen
			catalog.Nonmetal:            "#E6C384", // carpYellow
			catalog.Halogen:             "#D27E99", // sakuraPink
			catalog.NobleGas:            "#957FB8", // oniViolet
			catalog.Lanthanide:          "#6A9589", // waveAqua1
			catalog.Actinide:            "#FF5D62", // peachRed
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548", // between slate-800 and slate-700

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		CategoryColors: map[catalog.Category]string{
			catalog.AlkaliMetal:         "#ef4444", // red-500
			catalog.AlkalineEarthMetal:  "#f97316", // orange-500
			catalog.TransitionMetal:     "#0ea5e9", // sky-500
			catalog.PostTransitionMetal: "#06b6d4", // cyan-500
			catalog.Metalloid:           "#22c55e", // green-500
			catalog.Nonmetal:            "#eab308", // yellow-500
			catalog.Halogen:             "#ec4899", // pink-500
			catalog.NobleGas:            "#a855f7", // purple-500
			catalog.Lanthanide:          "#14b8a6", // teal-500
			catalog.Actinide:            "#f43f5e", // rose-500
		},
	}
}
