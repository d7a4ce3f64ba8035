package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/rng"
	"github.com/lixenwraith/fireworks/scene"
)

// statsIntervalFrames is how often scene counters are logged in debug mode
const statsIntervalFrames = 600

// display hosts the scene: it owns the terminal, the canvas and the frame cadence
type display struct {
	screen tcell.Screen
	canvas *render.Canvas
	scene  *scene.Scene
	cfg    *config.Config
}

// newDisplay sizes the canvas to the screen and builds the scene, cue may be nil
func newDisplay(screen tcell.Screen, cfg *config.Config, cue scene.Cue) *display {
	w, h := screen.Size()
	canvas := render.NewCanvas(w, h, cfg.Display.ScaleX, cfg.Display.ScaleY)

	sceneCfg := cfg.SceneConfig(canvas.WorldSize())
	canvas.Clear(sceneCfg.Background)

	return &display{
		screen: screen,
		canvas: canvas,
		scene:  scene.New(sceneCfg, canvas, rng.New(cfg.Seed), cue),
		cfg:    cfg,
	}
}

// frame runs one simulation tick and presents it
func (d *display) frame() {
	d.scene.Tick()
	d.canvas.Flush(d.screen)

	if d.cfg.Debug {
		if st := d.scene.Stats(); st.Frames%statsIntervalFrames == 0 {
			log.Printf("frame=%d launched=%d exploded=%d fireworks=%d trails=%d sparks=%d",
				st.Frames, st.Launched, st.Exploded, st.Fireworks, st.Trails, st.LiveSparks)
		}
	}
}

// handleResize rebuilds the canvas for the new terminal size and moves the launch line
func (d *display) handleResize() {
	w, h := d.screen.Size()
	d.canvas.Resize(w, h)
	d.canvas.Clear(d.scene.Config().Background)
	d.scene.Resize(d.canvas.WorldSize())
	d.screen.Sync()
	log.Printf("resized to %dx%d cells", w, h)
}

// handleEvent returns false when the display should exit
func (d *display) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		d.handleResize()
	}
	return true
}

// run drives frames at the configured cadence until quit
// Events are read on their own goroutine; the scene is only touched here
func (d *display) run() {
	ticker := time.NewTicker(time.Second / time.Duration(d.cfg.Display.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			d.frame()
		}
	}
}
