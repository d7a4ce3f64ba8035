package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// CuePlayer plays the explosion sound through the speaker
// Play is a no-op until both the output is initialized and the asset has loaded
type CuePlayer struct {
	mu          sync.Mutex
	cfg         CueConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	buffer      *beep.Buffer
	initialized bool

	ready   atomic.Bool
	loading atomic.Bool
	plays   atomic.Uint64

	// sink receives each cue; replaced in tests
	sink func(beep.Streamer)
}

// NewCuePlayer creates a player, nothing is opened until Initialize
func NewCuePlayer(cfg CueConfig) *CuePlayer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultCueConfig().SampleRate
	}
	p := &CuePlayer{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.sink = p.enqueue
	return p
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(speakerBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Load decodes or synthesizes the cue and marks the player ready
func (p *CuePlayer) Load() error {
	if !p.loading.CompareAndSwap(false, true) {
		return ErrAlreadyLoading
	}
	defer p.loading.Store(false)

	var (
		buf *beep.Buffer
		err error
	)
	if p.cfg.AssetPath != "" {
		buf, err = LoadAsset(p.cfg.AssetPath, p.rate)
	} else {
		buf, err = SynthesizeExplosion(p.rate)
	}
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.buffer = buf
	p.mu.Unlock()
	p.ready.Store(true)
	return nil
}

// LoadAsync runs Load on a goroutine; the channel yields its result once and closes
func (p *CuePlayer) LoadAsync() <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- p.Load()
		close(done)
	}()
	return done
}

// Ready reports whether the asset has finished loading
func (p *CuePlayer) Ready() bool {
	return p.ready.Load()
}

// Plays returns the number of cues actually started
func (p *CuePlayer) Plays() uint64 {
	return p.plays.Load()
}

// Play starts the cue without blocking, skipped silently while not ready
func (p *CuePlayer) Play() {
	if !p.ready.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.buffer == nil {
		return
	}

	s := newVolume(p.buffer.Streamer(0, p.buffer.Len()), p.cfg.Volume)
	p.sink(s)
	p.plays.Add(1)
}

// enqueue adds s to the mixer under the speaker lock
func (p *CuePlayer) enqueue(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all cues and closes the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
