package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/sim"
)

// DefaultVolume is the linear gain used when none is configured.
const DefaultVolume = 0.35

// Player mixes cues onto the system speaker. It implements sim.AudioSink.
// Until Init succeeds every Play is dropped, so a machine without an
// audio device still runs the game.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	logger *log.Logger
	ready  bool
	played int
}

// NewPlayer creates a player. logger may be nil.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker with a 100ms buffer and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "rate", int(sampleRate), "volume", p.volume)
	return nil
}

// Play queues cue and returns immediately.
func (p *Player) Play(cue sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s, err := Streamer(cue, p.volume)
	if err != nil {
		p.logger.Error("cannot build cue", "cue", cue.String(), "error", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Played returns how many cues reached the mixer.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences pending cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Mute is an AudioSink that drops every cue.
type Mute struct{}

// Play does nothing.
func (Mute) Play(sim.Cue) {}
