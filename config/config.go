// Package config loads display, physics and audio settings from TOML, environment and flags
package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/scene"
	"github.com/lixenwraith/fireworks/vmath"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides
const (
	EnvAudioEnabled = "FIREWORKS_AUDIO_ENABLED"
	EnvMasterVolume = "FIREWORKS_MASTER_VOLUME" // 0-100
	EnvFPS          = "FIREWORKS_FPS"
	EnvSeed         = "FIREWORKS_SEED"
	EnvAudioAsset   = "FIREWORKS_AUDIO_ASSET"
)

// Config is the full runtime configuration
type Config struct {
	Debug   bool          `toml:"debug"`
	Seed    uint64        `toml:"seed"` // 0 picks a random seed, TOML integers cap it at MaxInt64
	Display DisplayConfig `toml:"display"`
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`
}

// DisplayConfig controls the terminal surface
type DisplayConfig struct {
	FPS       int     `toml:"fps"`
	ScaleX    float64 `toml:"scale_x"` // World units per terminal column
	ScaleY    float64 `toml:"scale_y"` // World units per terminal row
	ColorMode string  `toml:"color_mode"`
	FadeAlpha float64 `toml:"fade_alpha"`
}

// PhysicsConfig controls the simulation
type PhysicsConfig struct {
	Gravity     float64 `toml:"gravity"`
	SpawnChance float64 `toml:"spawn_chance"`
	SparkCount  int     `toml:"spark_count"`
}

// AudioConfig controls the explosion cue
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
	Asset      string  `toml:"asset"`
}

// Default returns the built-in configuration
func Default() *Config {
	cue := audio.DefaultCueConfig()
	return &Config{
		Display: DisplayConfig{
			FPS:       60,
			ScaleX:    5,
			ScaleY:    10,
			ColorMode: "auto",
			FadeAlpha: parameter.BackgroundFadeAlpha,
		},
		Physics: PhysicsConfig{
			Gravity:     parameter.GravityY,
			SpawnChance: parameter.SpawnChance,
			SparkCount:  parameter.SparkCount,
		},
		Audio: AudioConfig{
			Enabled:    cue.Enabled,
			Volume:     cue.Volume,
			SampleRate: cue.SampleRate,
		},
	}
}

// Load decodes path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, pkgerrors.Wrapf(err, "load config %q", path)
	}
	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pkgerrors.Wrap(err, "create config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "create config file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return pkgerrors.Wrap(err, "encode config")
	}
	return nil
}

// ApplyEnv overrides fields from FIREWORKS_* variables, unparsable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if fps := getenv(EnvFPS); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil && val > 0 {
			c.Display.FPS = val
		}
	}

	if seed := getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}

	if asset := getenv(EnvAudioAsset); asset != "" {
		c.Audio.Asset = asset
	}
}

// Validate rejects settings the display cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Seed > math.MaxInt64:
		return pkgerrors.Wrapf(ErrInvalidConfig, "seed must not exceed %d, got %d", int64(math.MaxInt64), c.Seed)
	case c.Display.FPS <= 0:
		return pkgerrors.Wrapf(ErrInvalidConfig, "fps must be positive, got %d", c.Display.FPS)
	case c.Display.ScaleX <= 0 || c.Display.ScaleY <= 0:
		return pkgerrors.Wrapf(ErrInvalidConfig, "scale must be positive, got %gx%g", c.Display.ScaleX, c.Display.ScaleY)
	case c.Display.FadeAlpha < 0 || c.Display.FadeAlpha > 255:
		return pkgerrors.Wrapf(ErrInvalidConfig, "fade_alpha must be in [0, 255], got %g", c.Display.FadeAlpha)
	case c.Physics.SpawnChance < 0 || c.Physics.SpawnChance > 1:
		return pkgerrors.Wrapf(ErrInvalidConfig, "spawn_chance must be in [0, 1], got %g", c.Physics.SpawnChance)
	case c.Physics.SparkCount < 0:
		return pkgerrors.Wrapf(ErrInvalidConfig, "spark_count must not be negative, got %d", c.Physics.SparkCount)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return pkgerrors.Wrapf(ErrInvalidConfig, "volume must be in [0, 1], got %g", c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return pkgerrors.Wrapf(ErrInvalidConfig, "sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	switch c.Display.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return pkgerrors.Wrapf(ErrInvalidConfig, "color_mode must be auto, truecolor or 256, got %q", c.Display.ColorMode)
	}
	return nil
}

// SceneConfig builds the simulation configuration for a viewport in world units
func (c *Config) SceneConfig(width, height float64) scene.Config {
	sc := scene.DefaultConfig(width, height)
	sc.Gravity = vmath.Vec2F{X: 0, Y: c.Physics.Gravity}
	sc.SpawnChance = c.Physics.SpawnChance
	sc.SparkCount = c.Physics.SparkCount
	sc.FadeAlpha = c.Display.FadeAlpha
	return sc
}

// CueConfig builds the audio cue configuration
func (c *Config) CueConfig() audio.CueConfig {
	return audio.CueConfig{
		Enabled:    c.Audio.Enabled,
		Volume:     c.Audio.Volume,
		SampleRate: c.Audio.SampleRate,
		AssetPath:  c.Audio.Asset,
	}
}
