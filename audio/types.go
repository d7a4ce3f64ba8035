package audio

import (
	"errors"
	"time"
)

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported audio asset format")
	ErrAlreadyLoading    = errors.New("audio asset already loading")
)

// Explosion synthesis timing
const (
	ExplosionDuration = 900 * time.Millisecond
	ExplosionAttack   = 4 * time.Millisecond
	ThumpDuration     = 250 * time.Millisecond
	ThumpFrequencyHz  = 55.0
	CrackleDecayRate  = 5.0 // Exponential decay per second of the noise tail

	speakerBufferDuration = 100 * time.Millisecond
)

// CueConfig configures the explosion cue
type CueConfig struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
	AssetPath  string // Optional .wav or .mp3; empty synthesizes the explosion
}

// DefaultCueConfig returns enabled synthesized audio at 44.1kHz
func DefaultCueConfig() CueConfig {
	return CueConfig{
		Enabled:    true,
		Volume:     0.8,
		SampleRate: 44100,
	}
}
