package scene

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/vmath"
)

// minRandom returns the low end of every range, angle zero for directions and a fixed roll
type minRandom struct {
	roll float64
}

func (r minRandom) Float64() float64             { return r.roll }
func (r minRandom) Range(lo, hi float64) float64 { return lo }
func (r minRandom) UnitVector() vmath.Vec2F      { return vmath.Vec2F{X: 1, Y: 0} }

type pointCall struct {
	X, Y, Alpha, Width float64
	Color              core.RGB
}

type polylineCall struct {
	Points       []vmath.Vec2F
	Alpha, Width float64
	Color        core.RGB
}

type fadeCall struct {
	Color core.RGB
	Alpha float64
}

// recordingSurface captures draw calls in order
type recordingSurface struct {
	ops       []string
	fades     []fadeCall
	points    []pointCall
	polylines []polylineCall
}

func (s *recordingSurface) Fade(bg core.RGB, alpha float64) {
	s.ops = append(s.ops, "fade")
	s.fades = append(s.fades, fadeCall{bg, alpha})
}

func (s *recordingSurface) Point(x, y float64, c core.RGB, alpha, width float64) {
	s.ops = append(s.ops, "point")
	s.points = append(s.points, pointCall{x, y, alpha, width, c})
}

func (s *recordingSurface) Polyline(pts []vmath.Vec2F, c core.RGB, alpha, width float64) {
	s.ops = append(s.ops, "polyline")
	cp := make([]vmath.Vec2F, len(pts))
	copy(cp, pts)
	s.polylines = append(s.polylines, polylineCall{cp, alpha, width, c})
}

func (s *recordingSurface) reset() {
	s.ops = s.ops[:0]
	s.fades = s.fades[:0]
	s.points = s.points[:0]
	s.polylines = s.polylines[:0]
}

// nopSurface discards everything, for long runs
type nopSurface struct{}

func (nopSurface) Fade(core.RGB, float64)                             {}
func (nopSurface) Point(float64, float64, core.RGB, float64, float64) {}
func (nopSurface) Polyline([]vmath.Vec2F, core.RGB, float64, float64) {}

// countingCue counts Play calls
type countingCue struct {
	plays int
}

func (c *countingCue) Play() { c.plays++ }
