package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa palette (light, dark) ---
const (
	kanagawaLightGreen     = "#4E7C5A"
	kanagawaDarkGreen      = "#98BB6C"
	kanagawaLightRed       = "#C34043"
	kanagawaDarkRed        = "#FF5D62"
	kanagawaLightOrange    = "#CC6B4E"
	kanagawaDarkOrange     = "#FFA066"
	kanagawaLightCyan      = "#5B8BBE"
	kanagawaDarkCyan       = "#7E9CD8"
	kanagawaLightBlue      = "#4F7CAC"
	kanagawaDarkBlue       = "#7FB4CA"
	kanagawaLightViolet    = "#674D7A"
	kanagawaDarkViolet     = "#957FB8"
	kanagawaLightMutedText = "#6C7086"
	kanagawaDarkMutedText  = "#727169"
)

// --- Terminal palette (ANSI indexes, follows the user's terminal scheme) ---
const (
	terminalGreen     = "2"
	terminalRed       = "1"
	terminalOrange    = "3"
	terminalCyan      = "6"
	terminalBlue      = "4"
	terminalViolet    = "5"
	terminalMutedText = "8"
)

// Colors is the palette a Theme is built from.
type Colors struct {
	Green     lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
}

// Theme holds the styles used by CLI help, command output and the log formatter.
type Theme struct {
	Name   string
	Colors Colors

	Title   lipgloss.Style
	Section lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Italic  lipgloss.Style
	Accent  lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the active theme. It honours SELFPATH_THEME at startup and
// can be replaced with Use.
var DefaultTheme = NewThemeWithName(os.Getenv("SELFPATH_THEME"))

// NewThemeWithName builds a theme from a registered palette name, falling back
// to the default palette for unknown or empty names.
func NewThemeWithName(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(builder(), key)
}

// Use replaces DefaultTheme. SELFPATH_THEME still wins over name.
func Use(name string) {
	if env := os.Getenv("SELFPATH_THEME"); env != "" {
		name = env
	}
	DefaultTheme = NewThemeWithName(name)
}

// Names returns the registered palette names.
func Names() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	return names
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:    name,
		Colors:  colors,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colors.Orange),
		Section: lipgloss.NewStyle().Italic(true).Foreground(colors.Orange),
		Success: lipgloss.NewStyle().Foreground(colors.Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colors.Red),
		Muted:   lipgloss.NewStyle().Foreground(colors.MutedText),
		Italic:  lipgloss.NewStyle().Italic(true),
		Accent:  lipgloss.NewStyle().Foreground(colors.Violet),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newKanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Red:       lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:    lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:      lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Blue:      lipgloss.AdaptiveColor{Light: kanagawaLightBlue, Dark: kanagawaDarkBlue},
		Violet:    lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		MutedText: lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color(terminalGreen),
		Red:       lipgloss.Color(terminalRed),
		Orange:    lipgloss.Color(terminalOrange),
		Cyan:      lipgloss.Color(terminalCyan),
		Blue:      lipgloss.Color(terminalBlue),
		Violet:    lipgloss.Color(terminalViolet),
		MutedText: lipgloss.Color(terminalMutedText),
	}
}
