package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/sim"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestEveryCueHasNotes(t *testing.T) {
	nyquist := float64(sampleRate) / 2
	for c := sim.Cue(0); c < sim.CueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			notes := cueNotes[c]
			if len(notes) == 0 {
				t.Fatal("cue has no notes")
			}
			for _, nt := range notes {
				if nt.freq < 0 || nt.freq >= nyquist {
					t.Errorf("frequency %v outside (0, %v)", nt.freq, nyquist)
				}
				if nt.dur <= 0 {
					t.Errorf("non-positive duration %v", nt.dur)
				}
			}
		})
	}
}

func TestStreamerLength(t *testing.T) {
	for c := sim.Cue(0); c < sim.CueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s, err := Streamer(c, DefaultVolume)
			if err != nil {
				t.Fatalf("Streamer: %v", err)
			}
			total, peak := drain(t, s)
			if total != CueLength(c) {
				t.Errorf("streamed %d samples, expected %d", total, CueLength(c))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v outside (0, 1]", peak)
			}
		})
	}
}

func TestStreamerMutedAtZeroVolume(t *testing.T) {
	s, err := Streamer(sim.CueMilestone, 0)
	if err != nil {
		t.Fatalf("Streamer: %v", err)
	}
	total, peak := drain(t, s)
	if total != CueLength(sim.CueMilestone) {
		t.Errorf("muted cue should keep its length, got %d", total)
	}
	if peak != 0 {
		t.Errorf("muted cue peak = %v, expected 0", peak)
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	if _, err := Streamer(sim.CueCount, 1); err == nil {
		t.Error("expected error for out-of-range cue")
	}
	if CueLength(-1) != 0 {
		t.Error("unknown cue should have zero length")
	}
}

func TestPlayerDropsCuesBeforeInit(t *testing.T) {
	p := NewPlayer(DefaultVolume, nil)
	p.Play(sim.CueJump)
	p.Play(sim.CueHit)

	if p.Played() != 0 {
		t.Errorf("played = %d, expected 0 without a speaker", p.Played())
	}
	p.Close()

	var _ sim.AudioSink = p
	var _ sim.AudioSink = Mute{}
}
