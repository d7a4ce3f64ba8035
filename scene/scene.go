package scene

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Config holds the tunables of a Scene
type Config struct {
	Width, Height float64 // Viewport in world units, rockets launch from y = Height

	Gravity     vmath.Vec2F
	SpawnChance float64 // Per-tick launch probability
	SparkCount  int     // Sparks per explosion

	Background core.RGB
	FadeAlpha  float64 // 0-255, per-frame background wash
}

// DefaultConfig returns the standard display tuning for a viewport
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:       width,
		Height:      height,
		Gravity:     vmath.Vec2F{X: 0, Y: parameter.GravityY},
		SpawnChance: parameter.SpawnChance,
		SparkCount:  parameter.SparkCount,
		Background:  core.RGB{R: parameter.BackgroundR, G: parameter.BackgroundG, B: parameter.BackgroundB},
		FadeAlpha:   parameter.BackgroundFadeAlpha,
	}
}

// Stats is a snapshot of scene counters
type Stats struct {
	Frames     uint64
	Launched   uint64
	Exploded   uint64
	Fireworks  int
	Trails     int
	LiveSparks int
}

// Scene owns every active firework and trail and drives them one frame per Tick
// Not safe for concurrent use; the host must treat Tick as one atomic step
type Scene struct {
	cfg     Config
	surface Surface
	rnd     Random
	cue     Cue

	fireworks []*Firework
	trails    []*Trail

	frames   uint64
	launched uint64
	exploded uint64
}

// New creates an empty scene, a nil cue plays nothing
func New(cfg Config, surface Surface, rnd Random, cue Cue) *Scene {
	if cue == nil {
		cue = silentCue{}
	}
	return &Scene{
		cfg:     cfg,
		surface: surface,
		rnd:     rnd,
		cue:     cue,
	}
}

// Tick advances and renders one frame: fade, maybe launch, then update/render/prune fireworks and trails
func (s *Scene) Tick() {
	s.frames++
	s.surface.Fade(s.cfg.Background, s.cfg.FadeAlpha)

	if s.rnd.Float64() < s.cfg.SpawnChance {
		s.Launch(s.rnd.Range(0, s.cfg.Width))
	}

	s.tickFireworks()
	s.tickTrails()
}

// Launch starts a firework at horizontal position x on the bottom edge with its trail
func (s *Scene) Launch(x float64) *Firework {
	fw := NewFirework(x, s.cfg.Height, s.cfg.SparkCount, s.rnd, s.cue)
	pos := fw.Rocket().Pos
	s.fireworks = append(s.fireworks, fw)
	s.trails = append(s.trails, NewTrail(pos.X, pos.Y))
	s.launched++
	return fw
}

func (s *Scene) tickFireworks() {
	live := s.fireworks[:0]
	for _, fw := range s.fireworks {
		wasExploded := fw.Exploded()
		fw.Update(s.cfg.Gravity)
		if !wasExploded && fw.Exploded() {
			s.exploded++
		}
		fw.Render(s.surface)
		if !fw.Done() {
			live = append(live, fw)
		}
	}
	clear(s.fireworks[len(live):])
	s.fireworks = live
}

func (s *Scene) tickTrails() {
	live := s.trails[:0]
	for _, t := range s.trails {
		t.Update()
		t.Render(s.surface)
		if !t.Done() {
			live = append(live, t)
		}
	}
	clear(s.trails[len(live):])
	s.trails = live
}

// Resize changes the viewport used for future launches
func (s *Scene) Resize(width, height float64) {
	s.cfg.Width = width
	s.cfg.Height = height
}

// Config returns the active configuration
func (s *Scene) Config() Config {
	return s.cfg
}

// Fireworks returns the active fireworks, valid until the next Tick
func (s *Scene) Fireworks() []*Firework {
	return s.fireworks
}

// Trails returns the active trails, valid until the next Tick
func (s *Scene) Trails() []*Trail {
	return s.trails
}

// Stats returns the current counters
func (s *Scene) Stats() Stats {
	sparks := 0
	for _, fw := range s.fireworks {
		sparks += fw.SparkCount()
	}
	return Stats{
		Frames:     s.frames,
		Launched:   s.launched,
		Exploded:   s.exploded,
		Fireworks:  len(s.fireworks),
		Trails:     len(s.trails),
		LiveSparks: sparks,
	}
}
