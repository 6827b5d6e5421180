// Package ui provides the visual styling for the KITEK terminal.
// Three phosphor themes imitate classic CRT monitors; everything the
// shell renders goes through a Styles value built from one of them.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is one CRT phosphor color scheme.
type Theme struct {
	Name string

	// Bright is the main phosphor color.
	Bright lipgloss.Color

	// Light is the emphasis color (titles, the user's own lines).
	Light lipgloss.Color

	// Dim is the low-intensity color for chrome and hints.
	Dim lipgloss.Color
}

// The phosphor palette, matching the THEME command.
var (
	// ThemeGreen is the classic P1 phosphor, the default.
	ThemeGreen = Theme{
		Name:   "green",
		Bright: lipgloss.Color("#4af626"),
		Light:  lipgloss.Color("#baffb0"),
		Dim:    lipgloss.Color("#1f6b12"),
	}

	// ThemeAmber is the warm P3 phosphor.
	ThemeAmber = Theme{
		Name:   "amber",
		Bright: lipgloss.Color("#ffb000"),
		Light:  lipgloss.Color("#ffe0a0"),
		Dim:    lipgloss.Color("#8a5d00"),
	}

	// ThemeWhite is the P4 white phosphor.
	ThemeWhite = Theme{
		Name:   "white",
		Bright: lipgloss.Color("#e0e0e0"),
		Light:  lipgloss.Color("#ffffff"),
		Dim:    lipgloss.Color("#707070"),
	}
)

// Semantic colors shared by all themes.
var (
	ErrorColor   = lipgloss.Color("#ff4444")
	WarningColor = lipgloss.Color("#ffb000")
	FoodColor    = lipgloss.Color("#ff4444")
)

// ThemeByName returns the theme for a THEME command argument.
// Unknown names fall back to green.
func ThemeByName(name string) Theme {
	switch name {
	case "amber":
		return ThemeAmber
	case "white":
		return ThemeWhite
	default:
		return ThemeGreen
	}
}

// Styles holds the lipgloss styles for every shell element.
type Styles struct {
	Theme Theme

	Screen     lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	Emphasis   lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Prompt     lipgloss.Style
	UserLine   lipgloss.Style
	AILine     lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
	StatusBar  lipgloss.Style
	ConfirmBox lipgloss.Style
	Panel      lipgloss.Style
	SnakeBody  lipgloss.Style
	SnakeHead  lipgloss.Style
	SnakeFood  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme:    theme,
		Screen:   lipgloss.NewStyle().Foreground(theme.Bright),
		Title:    lipgloss.NewStyle().Foreground(theme.Light).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(theme.Bright),
		Emphasis: lipgloss.NewStyle().Foreground(theme.Light),
		Hint:     lipgloss.NewStyle().Foreground(theme.Dim),
		Error:    lipgloss.NewStyle().Foreground(ErrorColor),
		Warning:  lipgloss.NewStyle().Foreground(WarningColor),
		Prompt:   lipgloss.NewStyle().Foreground(theme.Light).Bold(true),
		UserLine: lipgloss.NewStyle().Foreground(theme.Light),
		AILine:   lipgloss.NewStyle().Foreground(theme.Bright),
		MenuItem: lipgloss.NewStyle().Foreground(theme.Dim).Padding(0, 1),
		MenuActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(theme.Bright).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(theme.Dim),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Dim).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Dim).
			Padding(0, 1),
		SnakeBody: lipgloss.NewStyle().Foreground(theme.Dim),
		SnakeHead: lipgloss.NewStyle().Foreground(theme.Bright),
		SnakeFood: lipgloss.NewStyle().Foreground(FoodColor),
	}
}
