package scene

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Trail is a fading polyline left at a firework's launch point
// The anchor is captured once; the trail does not follow the rocket
type Trail struct {
	anchor   vmath.Vec2F
	path     []vmath.Vec2F
	Lifespan float64
}

// NewTrail anchors a trail at (x, y)
func NewTrail(x, y float64) *Trail {
	return &Trail{
		anchor:   vmath.Vec2F{X: x, Y: y},
		path:     make([]vmath.Vec2F, 0, parameter.TrailPathMax+1),
		Lifespan: parameter.LifespanInitial,
	}
}

// Update records the anchor, evicts the oldest point beyond the bound and fades
func (t *Trail) Update() {
	t.path = append(t.path, t.anchor)
	if len(t.path) > parameter.TrailPathMax {
		copy(t.path, t.path[1:])
		t.path = t.path[:parameter.TrailPathMax]
	}
	t.Lifespan -= parameter.TrailFadeRate
}

// Render draws one open polyline through the path
func (t *Trail) Render(s Surface) {
	s.Polyline(t.path, core.RGBWhite, t.Lifespan, parameter.TrailWidth)
}

// Done reports whether the trail has faded out
func (t *Trail) Done() bool {
	return t.Lifespan < 0
}

// Anchor returns the fixed launch point
func (t *Trail) Anchor() vmath.Vec2F {
	return t.anchor
}

// Path returns a copy of the recorded points, oldest first
func (t *Trail) Path() []vmath.Vec2F {
	out := make([]vmath.Vec2F, len(t.path))
	copy(out, t.path)
	return out
}
