package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// crackle generates white noise with an exponential tail, the body of a burst
type crackle struct {
	rate     beep.SampleRate
	position int
	duration int
	decay    float64
}

func newCrackle(rate beep.SampleRate, duration time.Duration, decay float64) beep.Streamer {
	return &crackle{
		rate:     rate,
		duration: rate.N(duration),
		decay:    decay,
	}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}
		t := float64(c.position) / float64(c.rate)
		val := (rand.Float64()*2 - 1) * math.Exp(-t*c.decay)
		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// envelope applies a linear attack then a linear release to the end of the stream
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
}

// NewEnvelope shapes s over duration with the given attack
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else {
			remaining := e.totalSamples - e.position
			span := e.totalSamples - e.attackSamples
			if span > 0 {
				vol = float64(remaining) / float64(span)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewExplosion synthesizes a firework burst: a low sine thump under a decaying crackle
func NewExplosion(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, ThumpFrequencyHz)
	if err != nil {
		return nil, err
	}
	thump := NewEnvelope(beep.Take(rate.N(ThumpDuration), tone), ThumpDuration, ExplosionAttack, rate)
	noise := NewEnvelope(newCrackle(rate, ExplosionDuration, CrackleDecayRate), ExplosionDuration, ExplosionAttack, rate)

	return beep.Mix(
		newVolume(thump, 0.5),
		newVolume(noise, 0.45),
	), nil
}
