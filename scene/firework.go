package scene

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// FireworkState is derived from the exploded flag and the spark count
type FireworkState uint8

const (
	StateAscending FireworkState = iota
	StateExploded
	StateExtinct
)

func (s FireworkState) String() string {
	switch s {
	case StateAscending:
		return "ascending"
	case StateExploded:
		return "exploded"
	case StateExtinct:
		return "extinct"
	default:
		return "unknown"
	}
}

// apexTolerance only absorbs the rounding left by summing +0.2 gravity onto the launch speed
// (-10 + 50*0.2 lands near -2e-15, not 0); apex is Vel.Y >= 0, do not widen this into a physics margin
const apexTolerance = 1e-9

// Firework owns one rocket and, after it bursts, the sparks it produced
type Firework struct {
	rocket     *Particle
	sparks     []*Particle
	exploded   bool
	sparkCount int

	rnd Random
	cue Cue
}

// NewFirework launches a rocket from (x, y); sparkCount sparks are created at apex
func NewFirework(x, y float64, sparkCount int, rnd Random, cue Cue) *Firework {
	if cue == nil {
		cue = silentCue{}
	}
	return &Firework{
		rocket:     NewRocket(x, y, rnd),
		sparkCount: sparkCount,
		rnd:        rnd,
		cue:        cue,
	}
}

// Update advances the rocket while ascending, bursts it at apex, then advances and prunes sparks
func (f *Firework) Update(gravity vmath.Vec2F) {
	if !f.exploded {
		f.rocket.ApplyForce(gravity)
		f.rocket.Update()
		if f.rocket.Vel.Y >= -apexTolerance {
			f.exploded = true
			f.explode()
		}
	}

	// Filter in place; sparks are independent so order is irrelevant
	live := f.sparks[:0]
	for _, p := range f.sparks {
		p.ApplyForce(gravity)
		p.Update()
		if !p.Done() {
			live = append(live, p)
		}
	}
	clear(f.sparks[len(live):])
	f.sparks = live
}

// explode plays the cue and spawns the burst at the rocket's current position
func (f *Firework) explode() {
	f.cue.Play()

	pos := f.rocket.Pos
	f.sparks = make([]*Particle, 0, f.sparkCount)
	for i := 0; i < f.sparkCount; i++ {
		f.sparks = append(f.sparks, NewSpark(pos.X, pos.Y, f.rnd))
	}
}

// Render draws the rocket until it bursts, then the live sparks
func (f *Firework) Render(s Surface) {
	if !f.exploded {
		f.rocket.Render(s)
	}
	for _, p := range f.sparks {
		p.Render(s)
	}
}

// Done reports the firework has burst and every spark has faded
func (f *Firework) Done() bool {
	return f.exploded && len(f.sparks) == 0
}

// Exploded reports whether the rocket has reached apex
func (f *Firework) Exploded() bool {
	return f.exploded
}

// State returns the lifecycle phase
func (f *Firework) State() FireworkState {
	switch {
	case !f.exploded:
		return StateAscending
	case len(f.sparks) > 0:
		return StateExploded
	default:
		return StateExtinct
	}
}

// Rocket returns the owned rocket particle
func (f *Firework) Rocket() *Particle {
	return f.rocket
}

// SparkCount returns the number of live sparks
func (f *Firework) SparkCount() int {
	return len(f.sparks)
}

// Sparks returns the live sparks, the slice is only valid until the next Update
func (f *Firework) Sparks() []*Particle {
	return f.sparks
}
