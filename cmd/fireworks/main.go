package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/scene"
)

var (
	configFlag = flag.String("config", "fireworks.toml", "Path to TOML config (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/fireworks.log")
	fpsFlag    = flag.Int("fps", 0, "Frames per second (overrides config)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for random (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Disable explosion sound")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	dumpFlag   = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag != "" {
		if err := cfg.Save(*dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.Display.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: registered before Fini so the terminal is restored by the time this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIREWORKS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	var cue scene.Cue
	if player := startAudio(cfg); player != nil {
		defer player.Cleanup()
		cue = player
	}

	newDisplay(screen, cfg, cue).run()
}

// loadConfig layers defaults, the TOML file, environment and flags, in that order
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "fps":
			cfg.Display.FPS = *fpsFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "color":
			cfg.Display.ColorMode = *colorFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	var key, value string
	switch mode {
	case "256":
		key, value = "TCELL_TRUECOLOR", "disable"
	case "truecolor":
		key, value = "COLORTERM", "truecolor"
	default:
		return
	}
	if err := os.Setenv(key, value); err != nil {
		log.Printf("Color mode %q not applied: %v", mode, err)
	}
}

// startAudio opens the speaker and loads the cue in the background
// Failure is non-fatal; the display runs silent
func startAudio(cfg *config.Config) *audio.CuePlayer {
	if !cfg.Audio.Enabled {
		return nil
	}

	player := audio.NewCuePlayer(cfg.CueConfig())
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return nil
	}

	loaded := player.LoadAsync()
	go func() {
		if err := <-loaded; err != nil {
			log.Printf("Explosion sound unavailable: %v", err)
			return
		}
		log.Printf("Explosion sound loaded")
	}()
	return player
}
