package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for terminal output and placards.
// Colors are hex strings so they can feed both lipgloss and SVG.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#6c63ff"),
		Secondary:  lipgloss.Color("#00d4ff"),
		Accent:     lipgloss.Color("#ff6b9d"),
		Background: lipgloss.Color("#0a0e27"),
		Surface:    lipgloss.Color("#151937"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#8b92b8"),
		Success:    lipgloss.Color("#00e676"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#4f46e5"),
		Secondary:  lipgloss.Color("#0891b2"),
		Accent:     lipgloss.Color("#db2777"),
		Background: lipgloss.Color("#f8f9ff"),
		Surface:    lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#1a1d3a"),
		Muted:      lipgloss.Color("#6b7280"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#d97706"),
		Error:      lipgloss.Color("#dc2626"),
	}

	// ThemeContrast is the high-contrast scheme used for printed signs.
	ThemeContrast = Theme{
		Name:       "contrast",
		Primary:    lipgloss.Color("#ffff00"),
		Secondary:  lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffff00"),
		Muted:      lipgloss.Color("#ffffff"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDark,
		ThemeLight,
		ThemeContrast,
	}
)

// GetTheme returns a theme by name and whether it exists. Unknown names
// yield ThemeDark.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeDark, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next cycles to the theme after t.
func Next(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
