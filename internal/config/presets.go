package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Window:       WindowConfig{Width: 400, Height: 200, Title: "bouncebox"},
		TickInterval: 16 * time.Millisecond, Frontend: "tui", Theme: "cyberpunk", Ticks: 600,
	},
	"wide": {
		Window:       WindowConfig{Width: 1200, Height: 200, Title: "bouncebox (wide)"},
		TickInterval: 16 * time.Millisecond, Frontend: "tui", Theme: "ocean", Ticks: 1200,
	},
	"narrow": {
		Window:       WindowConfig{Width: 30, Height: 200, Title: "bouncebox (hidden)"},
		TickInterval: 16 * time.Millisecond, Frontend: "tui", Theme: "minimal", Ticks: 300,
	},
	"speedup": {
		Window:       WindowConfig{Width: 400, Height: 200, Title: "bouncebox (speedup)"},
		TickInterval: 16 * time.Millisecond, Frontend: "tui", Theme: "retro", Ticks: 900,
		Script:       []string{"100:w", "110:w", "120:w", "130:w", "140:w", "600:s", "610:s", "620:s"},
	},
	"squeeze": {
		Window:       WindowConfig{Width: 400, Height: 200, Title: "bouncebox (squeeze)"},
		TickInterval: 16 * time.Millisecond, Frontend: "tui", Theme: "cyberpunk", Ticks: 600,
		Script:       []string{"150:resize=200x120", "300:resize=30x120", "450:resize=600x300"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Script = append([]string(nil), p.Script...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
