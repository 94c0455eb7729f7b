package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the frame around the canvas and the side panel. The box
// itself is always drawn in its own color.
type Theme struct {
	Name   string
	Border lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Trail  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Border: lipgloss.Color("#ff00ff"),
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Trail:  lipgloss.Color("#444444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Border: lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Trail:  lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Border: lipgloss.Color("#cccccc"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Trail:  lipgloss.Color("#333333"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Border: lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Trail:  lipgloss.Color("#113355"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Border: lipgloss.Color("#ff6b6b"),
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Trail:  lipgloss.Color("#4d2e4e"),
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

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
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
