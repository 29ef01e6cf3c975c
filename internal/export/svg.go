// Package export renders stored trajectories to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/nwatters01/spriteworld-physics/internal/body"
)

// Per-body stroke colors, cycled when a scene has more bodies.
var strokeColors = []string{
	"#00ff00", "#ff5050", "#50a0ff", "#ffd700", "#ff50ff", "#00e0e0",
}

// TrajectoriesToSVG draws one path per body across the recorded
// states, auto-scaled to the bounding box of all positions with 10%
// padding. Returns "" when there is not enough data to draw.
func TrajectoriesToSVG(states [][]body.Body, width, height int) string {
	if len(states) < 2 || len(states[0]) == 0 {
		return ""
	}
	numBodies := len(states[0])

	minX, maxX := states[0][0].Position.X, states[0][0].Position.X
	minY, maxY := states[0][0].Position.Y, states[0][0].Position.Y
	for _, frame := range states {
		for _, b := range frame {
			if b.Position.X < minX {
				minX = b.Position.X
			}
			if b.Position.X > maxX {
				maxX = b.Position.X
			}
			if b.Position.Y < minY {
				minY = b.Position.Y
			}
			if b.Position.Y > maxY {
				maxY = b.Position.Y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i := 0; i < numBodies; i++ {
		color := strokeColors[i%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

		for k, frame := range states {
			p := frame[i].Position
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if k == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
