// Package live renders body states to the terminal as the run
// progresses, using plain ANSI positioning.
package live

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

const (
	width       = 70
	height      = 24
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// View draws each observed frame into a fixed-size rune canvas mapped
// onto the arena. It implements sim.Observer.
type View struct {
	arena     engine.Arena
	frameRate int
	realTime  bool
	lastFrame time.Time
	canvas    [][]rune
}

// NewView renders the given arena region at the given frame rate.
// When realTime is set, frames are also paced (slept) to the frame
// rate rather than just being dropped.
func NewView(arena engine.Arena, frameRate int, realTime bool) *View {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &View{
		arena:     arena,
		frameRate: frameRate,
		realTime:  realTime,
		canvas:    canvas,
	}
}

func (v *View) Start() { fmt.Print(hideCursor) }
func (v *View) Stop()  { fmt.Print(showCursor) }

func (v *View) OnStep(bodies []body.Body, t float64) {
	interval := time.Second / time.Duration(v.frameRate)
	elapsed := time.Since(v.lastFrame)
	if v.realTime {
		if elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	} else if elapsed < interval {
		return
	}
	v.lastFrame = time.Now()

	v.clear()
	for i := range bodies {
		v.drawBody(&bodies[i])
	}
	v.render(bodies, t)
}

func (v *View) clear() {
	for y := range v.canvas {
		for x := range v.canvas[y] {
			v.canvas[y][x] = ' '
		}
	}
}

func (v *View) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		v.canvas[y][x] = c
	}
}

// project maps an arena position to canvas coordinates, with y flipped
// so up is up.
func (v *View) project(p geom.Vec2) (int, int) {
	spanX := v.arena.Max.X - v.arena.Min.X
	spanY := v.arena.Max.Y - v.arena.Min.Y
	x := int((p.X - v.arena.Min.X) / spanX * float64(width-1))
	y := int((1 - (p.Y-v.arena.Min.Y)/spanY) * float64(height-1))
	return x, y
}

func (v *View) drawBody(b *body.Body) {
	cx, cy := v.project(b.Position)

	glyph := 'o'
	switch {
	case b.Fixed:
		glyph = '#'
	case b.Radius >= 0.1:
		glyph = 'O'
	}
	v.set(cx, cy, glyph)

	// Rough disc outline for larger bodies; the canvas is coarse so
	// anything beyond a few cells just looks like noise.
	spanX := v.arena.Max.X - v.arena.Min.X
	cells := int(b.Radius / spanX * float64(width-1))
	if cells > 1 {
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 8 {
			v.set(cx+int(float64(cells)*math.Cos(a)), cy+int(float64(cells)*math.Sin(a)/2), '.')
		}
	}
}

func (v *View) render(bodies []body.Body, t float64) {
	var sb strings.Builder
	sb.WriteString(clearScreen)

	sb.WriteString("+" + strings.Repeat("-", width) + "+\n")
	for _, row := range v.canvas {
		sb.WriteString("|")
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", width) + "+\n")
	sb.WriteString(fmt.Sprintf("t=%.2f  bodies=%d\n", t, len(bodies)))

	fmt.Print(sb.String())
}
