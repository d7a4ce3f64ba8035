package scene

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Particle is a point mass in one of two roles: an ascending rocket or a post-explosion spark
// Rocket is fixed at construction; only sparks fade and feel drag
type Particle struct {
	Pos vmath.Vec2F
	Vel vmath.Vec2F
	Acc vmath.Vec2F

	Rocket   bool
	Lifespan float64
	Color    core.RGB
}

// NewRocket creates a rocket at (x, y) with a random upward launch speed
func NewRocket(x, y float64, rnd Random) *Particle {
	return &Particle{
		Pos:      vmath.Vec2F{X: x, Y: y},
		Vel:      vmath.Vec2F{X: 0, Y: -rnd.Range(parameter.RocketSpeedMin, parameter.RocketSpeedMax)},
		Rocket:   true,
		Lifespan: parameter.LifespanInitial,
		Color:    randomColor(rnd),
	}
}

// NewSpark creates a spark at (x, y) moving in a random direction
func NewSpark(x, y float64, rnd Random) *Particle {
	dir := rnd.UnitVector()
	speed := rnd.Range(parameter.SparkSpeedMin, parameter.SparkSpeedMax)
	return &Particle{
		Pos:      vmath.Vec2F{X: x, Y: y},
		Vel:      vmath.V2FScale(dir, speed),
		Lifespan: parameter.LifespanInitial,
		Color:    randomColor(rnd),
	}
}

// randomColor draws each channel uniformly from [0, 255]
func randomColor(rnd Random) core.RGB {
	channel := func() uint8 {
		v := rnd.Range(0, 256)
		if v >= 255 {
			return 255
		}
		if v <= 0 {
			return 0
		}
		return uint8(v)
	}
	return core.RGB{R: channel(), G: channel(), B: channel()}
}

// ApplyForce accumulates f into acceleration until the next Update
func (p *Particle) ApplyForce(f vmath.Vec2F) {
	p.Acc = vmath.V2FAdd(p.Acc, f)
}

// Update advances one tick with semi-implicit Euler and clears the accumulator
func (p *Particle) Update() {
	if !p.Rocket {
		p.Vel = vmath.V2FScale(p.Vel, parameter.SparkDrag)
		p.Lifespan -= parameter.SparkFadeRate
	}
	p.Vel = vmath.V2FAdd(p.Vel, p.Acc)
	p.Pos = vmath.V2FAdd(p.Pos, p.Vel)
	p.Acc = vmath.V2FZero
}

// Done reports whether the particle has faded out, rockets never fade
func (p *Particle) Done() bool {
	return p.Lifespan < 0
}

// Render draws the particle as a point; sparks fade with lifespan, rockets are opaque and wider
func (p *Particle) Render(s Surface) {
	if p.Rocket {
		s.Point(p.Pos.X, p.Pos.Y, p.Color, core.MaxAlpha, parameter.RocketWidth)
		return
	}
	s.Point(p.Pos.X, p.Pos.Y, p.Color, p.Lifespan, parameter.SparkWidth)
}
