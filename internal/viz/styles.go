package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bouncebox/internal/world"
)

const panelWidth = 34

type styles struct {
	frame  lipgloss.Style
	panel  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
	graph  lipgloss.Style
	hidden lipgloss.Style
}

func stylesFor(t Theme) styles {
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(panelWidth),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		graph:  lipgloss.NewStyle().Foreground(t.Accent),
		hidden: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// HeatBar renders a bar filled to heat in [0,1], colored like the box
// would be at that heat.
func HeatBar(heat float64, width int) string {
	filled := int(heat*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(world.ColorFor(heat * world.SaturationFreq).Hex())).Render(bar)
}

// Swatch renders a small block filled with c.
func Swatch(c world.RGB) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}
