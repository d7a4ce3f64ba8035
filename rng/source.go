// Package rng provides the uniform random source consumed by the scene
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/fireworks/vmath"
)

// Source draws floats, ranges and directions from a PCG generator
// Not safe for concurrent use
type Source struct {
	rng *rand.Rand
}

// New creates a source; seed 0 picks a random seed
func New(seed uint64) *Source {
	var r *rand.Rand
	if seed == 0 {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		r = rand.New(rand.NewPCG(seed, seed))
	}
	return &Source{rng: r}
}

// Float64 returns a value in [0, 1)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a value in [lo, hi), hi <= lo yields lo
func (s *Source) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// UnitVector returns a unit vector at a uniformly distributed angle in [0, 2π)
func (s *Source) UnitVector() vmath.Vec2F {
	return vmath.V2FFromAngle(s.rng.Float64() * 2 * math.Pi)
}
