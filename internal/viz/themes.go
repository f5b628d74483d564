package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for bars and panels
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Compared  lipgloss.Color
	Swapping  lipgloss.Color
	Settled   lipgloss.Color
	Confirmed lipgloss.Color
	Tracker   lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Bar:       lipgloss.Color("#5f87ff"), // Steel blue
		Compared:  lipgloss.Color("#ffd75f"),
		Swapping:  lipgloss.Color("#ff5f5f"),
		Settled:   lipgloss.Color("#87d787"),
		Confirmed: lipgloss.Color("#00d700"),
		Tracker:   lipgloss.Color("#ff87ff"),
		Title:     lipgloss.Color("#00cccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Bar:       lipgloss.Color("#ff00ff"), // Magenta
		Compared:  lipgloss.Color("#ffff00"),
		Swapping:  lipgloss.Color("#ff0000"),
		Settled:   lipgloss.Color("#00ffff"),
		Confirmed: lipgloss.Color("#00ff00"),
		Tracker:   lipgloss.Color("#ff8800"),
		Title:     lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Bar:       lipgloss.Color("#00cc00"), // Green phosphor
		Compared:  lipgloss.Color("#ffff00"),
		Swapping:  lipgloss.Color("#ff0000"),
		Settled:   lipgloss.Color("#88ff88"),
		Confirmed: lipgloss.Color("#00ff00"),
		Tracker:   lipgloss.Color("#88ff88"),
		Title:     lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Bar:       lipgloss.Color("#0077be"), // Ocean blue
		Compared:  lipgloss.Color("#ffd700"),
		Swapping:  lipgloss.Color("#ff4444"),
		Settled:   lipgloss.Color("#00a8cc"),
		Confirmed: lipgloss.Color("#00ff88"),
		Tracker:   lipgloss.Color("#ffcc00"),
		Title:     lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Bar:       lipgloss.Color("#ff6b6b"), // Coral
		Compared:  lipgloss.Color("#feca57"),
		Swapping:  lipgloss.Color("#ff4757"),
		Settled:   lipgloss.Color("#ff9ff3"),
		Confirmed: lipgloss.Color("#5fd068"),
		Tracker:   lipgloss.Color("#feca57"),
		Title:     lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme cycles through Themes in order
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color picks the bar color for a mark.
func (t Theme) Color(m Mark) lipgloss.Color {
	switch m {
	case Compared:
		return t.Compared
	case Swapping:
		return t.Swapping
	case Settled:
		return t.Settled
	case Confirmed:
		return t.Confirmed
	default:
		return t.Bar
	}
}
