package sim

// Cue names a sound the core asks the audio collaborator to play.
type Cue int

const (
	CueJump Cue = iota
	CueCollect
	CueHit
	CueStomp
	CuePowerup
	CueMilestone
	CueCount // Sentinel for counting cues
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	case CueHit:
		return "hit"
	case CueStomp:
		return "stomp"
	case CuePowerup:
		return "powerup"
	case CueMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// AudioSink plays cues. Calls must not block; the core never waits on audio.
type AudioSink interface {
	Play(cue Cue)
}

// Notifier receives run lifecycle notifications for the screen controller.
type Notifier interface {
	GameStarted()
	GameOver(finalScore, factIndex int)
	Reset()
	Milestone(threshold int)
}

// HighScoreStore persists the best score.
// HighScore is read at run start; SaveHighScore is called every time the
// current score beats the stored maximum.
type HighScoreStore interface {
	HighScore() int
	SaveHighScore(score int)
}

// Hooks bundles the collaborators the core calls into.
// Nil members are replaced with no-ops.
type Hooks struct {
	Audio    AudioSink
	Notifier Notifier
	Scores   HighScoreStore
}

func (h Hooks) withDefaults() Hooks {
	if h.Audio == nil {
		h.Audio = nopAudio{}
	}
	if h.Notifier == nil {
		h.Notifier = nopNotifier{}
	}
	if h.Scores == nil {
		h.Scores = &MemoryScores{}
	}
	return h
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopNotifier struct{}

func (nopNotifier) GameStarted()      {}
func (nopNotifier) GameOver(int, int) {}
func (nopNotifier) Reset()            {}
func (nopNotifier) Milestone(int)     {}

// MemoryScores is an in-process HighScoreStore.
type MemoryScores struct {
	Best  int
	Saves int // Number of SaveHighScore calls
}

// HighScore returns the stored best.
func (m *MemoryScores) HighScore() int {
	return m.Best
}

// SaveHighScore records a new best.
func (m *MemoryScores) SaveHighScore(score int) {
	m.Best = score
	m.Saves++
}
