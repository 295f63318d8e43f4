package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
)

// Theme defines the color scheme for the bars and the stats panel.
type Theme struct {
	Name      string
	Primary   lipgloss.Color // primary touched index
	Secondary lipgloss.Color // secondary touched index
	Accent    lipgloss.Color
	Neutral   [3]lipgloss.Color // untouched bars, rotated by index
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// RoleColor returns the color for a touched index.
func (t Theme) RoleColor(r algo.Role) lipgloss.Color {
	if r == algo.Primary {
		return t.Primary
	}
	return t.Secondary
}

// Bar returns the neutral color for an untouched bar at index i.
func (t Theme) Bar(i int) lipgloss.Color {
	return t.Neutral[i%len(t.Neutral)]
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#ff0000"),
		Accent:    lipgloss.Color("#ffff00"),
		Neutral:   [3]lipgloss.Color{"#808080", "#a0a0a0", "#c0c0c0"},
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#ccffcc"),
		Secondary: lipgloss.Color("#ffff00"),
		Accent:    lipgloss.Color("#88ff88"),
		Neutral:   [3]lipgloss.Color{"#005500", "#008800", "#00bb00"},
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#0088ff"),
		Secondary: lipgloss.Color("#ffaa00"),
		Accent:    lipgloss.Color("#0088ff"),
		Neutral:   [3]lipgloss.Color{"#888888", "#aaaaaa", "#cccccc"},
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#ffd700"),
		Secondary: lipgloss.Color("#ff6f61"),
		Accent:    lipgloss.Color("#ffd700"),
		Neutral:   [3]lipgloss.Color{"#0077be", "#00a8cc", "#4488aa"},
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#5fd068"),
		Secondary: lipgloss.Color("#ff4757"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Neutral:   [3]lipgloss.Color{"#ff6b6b", "#feca57", "#ff9ff3"},
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
