// Package scene implements the fireworks display: rockets, sparks, trails and the
// per-frame orchestration that spawns, updates, renders and retires them.
// Drawing, randomness and audio are injected so the package stays free of any
// terminal or speaker dependency.
package scene

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/vmath"
)

// Surface is the drawing collaborator, alpha values are on the 0-255 scale
type Surface interface {
	// Fade washes the whole frame toward bg, leaving a fraction of the previous frame visible
	Fade(bg core.RGB, alpha float64)
	// Point draws a single dot at world coordinates
	Point(x, y float64, c core.RGB, alpha, width float64)
	// Polyline draws an open line through pts in order
	Polyline(pts []vmath.Vec2F, c core.RGB, alpha, width float64)
}

// Random is the uniform random source collaborator
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Range returns a value in [lo, hi)
	Range(lo, hi float64) float64
	// UnitVector returns a unit vector with uniformly distributed direction
	UnitVector() vmath.Vec2F
}

// Cue is the explosion sound collaborator
// Play must not block and must silently skip when the asset is not ready
type Cue interface {
	Play()
}

// silentCue is used when the host provides no audio
type silentCue struct{}

func (silentCue) Play() {}
