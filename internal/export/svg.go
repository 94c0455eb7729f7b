package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bouncebox/internal/world"
)

// Background matches the window clear color of the desktop frontend.
const Background = "#4d1a1a"

// BoxSVG renders the viewport and, when visible, the box described by in.
// trail holds earlier box centers and is drawn as a polyline under the box.
// World coordinates have a bottom-left origin, so y is flipped.
func BoxSVG(in world.Intent, visible bool, trail []world.Vec2) string {
	w, h := in.Bounds.Width(), in.Bounds.Height()
	flip := func(y float64) float64 { return h - y }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, Background))

	if len(trail) > 1 {
		sb.WriteString(`<path fill="none" stroke="#888888" stroke-width="1" stroke-dasharray="3 3" d="M`)
		for i, p := range trail {
			if i > 0 {
				sb.WriteString(" L")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, flip(p.Y)))
		}
		sb.WriteString("\"/>\n")
	}

	if visible {
		r := in.Rect
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, r.MinX, flip(r.MaxY), r.Width(), r.Height(), in.Color.Hex()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
