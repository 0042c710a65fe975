package tui

import "fmt"

// Phase is the screen the player is looking at.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// bannerFrames is how many drawn frames a milestone banner stays up.
const bannerFrames = 90

// screens tracks which screen to show. It implements sim.Notifier.
type screens struct {
	phase      Phase
	finalScore int
	factIndex  int
	banner     string
	bannerLeft int
	finished   bool // A game over is waiting to be recorded
}

func newScreens() *screens {
	return &screens{factIndex: -1}
}

// GameStarted switches to the play screen.
func (s *screens) GameStarted() {
	s.phase = PhasePlaying
	s.finalScore = 0
	s.factIndex = -1
	s.banner = ""
	s.bannerLeft = 0
	s.finished = false
}

// GameOver switches to the game-over screen with the chosen fact.
func (s *screens) GameOver(finalScore, factIndex int) {
	s.phase = PhaseGameOver
	s.finalScore = finalScore
	s.factIndex = factIndex
	s.finished = true
	// Ticks stop with the run, so a banner would never expire
	s.banner = ""
	s.bannerLeft = 0
}

// Reset returns to the title screen.
func (s *screens) Reset() {
	s.phase = PhaseTitle
	s.factIndex = -1
	s.banner = ""
	s.bannerLeft = 0
	s.finished = false
}

// Milestone shows a short banner.
func (s *screens) Milestone(threshold int) {
	s.banner = fmt.Sprintf("%d POINTS!", threshold)
	s.bannerLeft = bannerFrames
}

// takeFinished reports a pending game over once.
func (s *screens) takeFinished() bool {
	if !s.finished {
		return false
	}
	s.finished = false
	return true
}

// tickBanner ages the milestone banner by one frame.
func (s *screens) tickBanner() {
	if s.bannerLeft > 0 {
		s.bannerLeft--
		if s.bannerLeft == 0 {
			s.banner = ""
		}
	}
}
