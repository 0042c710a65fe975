// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-runner/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// note is one segment of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes is indexed by sim.Cue; every cue has an entry.
var cueNotes = [sim.CueCount][]note{
	sim.CueJump: {
		{523.25, 40 * time.Millisecond},
		{783.99, 50 * time.Millisecond},
	},
	sim.CueCollect: {
		{987.77, 60 * time.Millisecond},
		{1318.51, 90 * time.Millisecond},
	},
	sim.CueHit: {
		{196.00, 120 * time.Millisecond},
		{146.83, 160 * time.Millisecond},
	},
	sim.CueStomp: {
		{329.63, 40 * time.Millisecond},
		{0, 20 * time.Millisecond},
		{440.00, 60 * time.Millisecond},
	},
	sim.CuePowerup: {
		{523.25, 50 * time.Millisecond},
		{659.25, 50 * time.Millisecond},
		{783.99, 50 * time.Millisecond},
		{1046.50, 90 * time.Millisecond},
	},
	sim.CueMilestone: {
		{783.99, 80 * time.Millisecond},
		{987.77, 80 * time.Millisecond},
		{1174.66, 80 * time.Millisecond},
		{1567.98, 160 * time.Millisecond},
	},
}

// CueLength returns the number of samples a cue plays for.
func CueLength(cue sim.Cue) int {
	if cue < 0 || cue >= sim.CueCount {
		return 0
	}
	n := 0
	for _, nt := range cueNotes[cue] {
		n += sampleRate.N(nt.dur)
	}
	return n
}

// Streamer builds a finite streamer for cue at the given linear volume (0..1).
func Streamer(cue sim.Cue, volume float64) (beep.Streamer, error) {
	if cue < 0 || cue >= sim.CueCount {
		return nil, fmt.Errorf("audio: unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(cueNotes[cue]))
	for _, nt := range cueNotes[cue] {
		n := sampleRate.N(nt.dur)
		if nt.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		tone, err := generators.SineTone(sampleRate, nt.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone %.2fHz: %w", cue, nt.freq, err)
		}
		parts = append(parts, beep.Take(n, tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume maps a linear gain onto beep's logarithmic volume effect.
// log2(0) is -Inf, so zero and below become silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
