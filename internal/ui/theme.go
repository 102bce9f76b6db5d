package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rb-plan/TermClock/internal/config"
)

// palette is the closed set of color names the config accepts. The first
// sixteen map onto the terminal's ANSI palette so the clock follows the
// user's terminal theme; orange is the one truecolor exception.
var palette = map[string]lipgloss.Color{
	"black":        lipgloss.Color("0"),
	"red":          lipgloss.Color("1"),
	"green":        lipgloss.Color("2"),
	"yellow":       lipgloss.Color("3"),
	"blue":         lipgloss.Color("4"),
	"magenta":      lipgloss.Color("5"),
	"cyan":         lipgloss.Color("6"),
	"white":        lipgloss.Color("7"),
	"gray":         lipgloss.Color("8"),
	"grey":         lipgloss.Color("8"),
	"lightred":     lipgloss.Color("9"),
	"lightgreen":   lipgloss.Color("10"),
	"lightyellow":  lipgloss.Color("11"),
	"lightblue":    lipgloss.Color("12"),
	"lightmagenta": lipgloss.Color("13"),
	"lightcyan":    lipgloss.Color("14"),
	"orange":       lipgloss.Color("#FFA500"),
}

// namedColor resolves a configured color name. Unknown names degrade to the
// field's default rather than failing: a typoed color is not worth refusing
// to show the time over.
func namedColor(name, fallback string) lipgloss.Color {
	if c, ok := palette[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return palette[fallback]
}

// Styles contains the pre-built lipgloss styles for one run. They are derived
// from Settings once at startup; rendering only reads them.
type Styles struct {
	// Clock block
	Time lipgloss.Style
	Date lipgloss.Style

	// Thermometer
	Axis lipgloss.Style
	Bar  lipgloss.Style

	// Todo panel
	Todos  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// newStyles builds the styles for the configured colors, falling back per
// field to the stock palette.
func newStyles(cfg *config.Settings) Styles {
	def := config.Default()
	temp := namedColor(cfg.TempColor, def.TempColor)
	return Styles{
		Time: lipgloss.NewStyle().
			Foreground(namedColor(cfg.TimeColor, def.TimeColor)).
			Bold(true),

		Date: lipgloss.NewStyle().
			Foreground(namedColor(cfg.DateColor, def.DateColor)),

		Axis: lipgloss.NewStyle().
			Foreground(temp),

		Bar: lipgloss.NewStyle().
			Foreground(temp).
			Bold(true),

		Todos: lipgloss.NewStyle().
			Foreground(namedColor(cfg.TodosColor, def.TodosColor)),

		Muted: lipgloss.NewStyle().
			Foreground(palette["gray"]),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette["gray"]),
	}
}
