package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Simulation owns the complete state of one session: the player, the three
// entity pools, transient effects and the run counters. Every update
// function takes it explicitly; there is no package-level state.
type Simulation struct {
	cfg      config.RunnerConfig
	profile  config.Profile
	selected config.Difficulty // Applied at the next Start
	active   config.Difficulty // Difficulty of the current run
	rng      *rand.Rand
	hooks    Hooks

	player       Player
	obstacles    []Entity
	collectibles []Entity
	powerups     []Entity
	effects      []Effect
	state        RunState
}

// New creates a simulation with the given config, RNG seed and collaborators.
// The simulation starts idle; call Start to begin a run.
func New(cfg config.RunnerConfig, seed int64, hooks Hooks) *Simulation {
	s := &Simulation{
		cfg:          cfg,
		selected:     config.ParseDifficulty(cfg.Difficulty.Default),
		rng:          rand.New(rand.NewSource(seed)),
		hooks:        hooks.withDefaults(),
		obstacles:    make([]Entity, 0, 8),
		collectibles: make([]Entity, 0, 8),
		powerups:     make([]Entity, 0, 4),
	}
	s.active = s.selected
	s.profile = cfg.Profile(s.active)
	s.resetState()
	s.state.HighScore = s.hooks.Scores.HighScore()
	return s
}

// SelectDifficulty records the difficulty for the next run.
// It never changes a run in progress. Unknown labels select the default.
func (s *Simulation) SelectDifficulty(label string) config.Difficulty {
	s.selected = config.ParseDifficulty(label)
	return s.selected
}

// SelectedDifficulty returns the difficulty the next run will use.
func (s *Simulation) SelectedDifficulty() config.Difficulty {
	return s.selected
}

// Start begins a fresh run with the selected difficulty.
func (s *Simulation) Start() {
	s.active = s.selected
	s.profile = s.cfg.Profile(s.active)
	s.resetState()
	s.state.HighScore = s.hooks.Scores.HighScore()
	s.state.Running = true
	s.hooks.Notifier.GameStarted()
}

// Reset stops any run and restores default state. The high score survives.
func (s *Simulation) Reset() {
	s.resetState()
	s.hooks.Notifier.Reset()
}

// resetState restores the player, pools and counters to run defaults.
func (s *Simulation) resetState() {
	high := s.state.HighScore

	s.player = Player{
		X:        s.cfg.Player.X,
		W:        s.cfg.Player.Width,
		H:        s.cfg.Player.Height,
		Grounded: true,
	}
	s.player.Y = s.groundY()
	s.player.PrevY = s.player.Y

	s.obstacles = s.obstacles[:0]
	s.collectibles = s.collectibles[:0]
	s.powerups = s.powerups[:0]
	s.effects = s.effects[:0]

	s.state = RunState{
		Lives:     s.profile.StartingLives,
		GameSpeed: s.profile.BaseSpeed,
		HighScore: high,
		FactIndex: -1,
	}
}

// Jump applies the jump impulse if the player is on the ground during a
// running, unpaused run. Other requests are ignored.
func (s *Simulation) Jump() bool {
	if !s.state.Running || s.state.Paused {
		return false
	}
	if !s.player.Grounded {
		return false
	}
	s.player.VY = s.cfg.Physics.JumpImpulse
	s.player.Grounded = false
	s.hooks.Audio.Play(CueJump)
	return true
}

// TogglePause flips the pause flag of a running run and returns the new value.
// It is a no-op when no run is active.
func (s *Simulation) TogglePause() bool {
	if !s.state.Running {
		return s.state.Paused
	}
	s.state.Paused = !s.state.Paused
	return s.state.Paused
}

// Update advances the run by dt seconds.
// Order: physics, pools, collisions, powerup timer, effects, scoring.
// A game over during collision resolution ends the tick immediately.
func (s *Simulation) Update(dt float64) {
	if !s.state.Running || s.state.Paused {
		return
	}
	dt = ClampDelta(dt, s.maxDelta())
	if dt == 0 {
		return
	}
	s.state.Elapsed += dt

	s.integrate(dt)

	s.spawn(dt)
	s.advance(dt)
	s.cull()

	if s.resolveCollisions() {
		return
	}

	s.tickPowerup(dt)
	s.tickEffects(dt)
	s.tickScoring(dt)
}

// maxDelta returns the delta clamp in seconds.
func (s *Simulation) maxDelta() float64 {
	return (time.Duration(s.cfg.Loop.MaxDeltaMS) * time.Millisecond).Seconds()
}

// ClampDelta coerces dt into [0, max]. Negative and NaN values become 0.
func ClampDelta(dt, max float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// gameOver freezes the run and notifies collaborators.
func (s *Simulation) gameOver() {
	s.state.Running = false
	s.state.GameOver = true
	s.player.Distressed = true

	s.state.FactIndex = -1
	if n := len(s.cfg.Facts); n > 0 {
		s.state.FactIndex = s.rng.Intn(n)
	}
	s.hooks.Notifier.GameOver(s.state.Score, s.state.FactIndex)
}

// Running reports whether a run is in progress (paused runs included).
func (s *Simulation) Running() bool {
	return s.state.Running
}

// Paused reports whether the run is paused.
func (s *Simulation) Paused() bool {
	return s.state.Paused
}

// State returns a copy of the run counters.
func (s *Simulation) State() RunState {
	st := s.state
	if st.Active != nil {
		a := *st.Active
		st.Active = &a
	}
	return st
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return s.player
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.RunnerConfig {
	return s.cfg
}

// Profile returns the profile of the current (or last) run.
func (s *Simulation) Profile() config.Profile {
	return s.profile
}

// Snapshot returns a read-only copy of the state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Player:       s.player,
		Obstacles:    append([]Entity(nil), s.obstacles...),
		Collectibles: append([]Entity(nil), s.collectibles...),
		Powerups:     append([]Entity(nil), s.powerups...),
		Effects:      append([]Effect(nil), s.effects...),
		Score:        s.state.Score,
		Lives:        s.state.Lives,
		HighScore:    s.state.HighScore,
		Speed:        s.state.GameSpeed,
		Elapsed:      s.state.Elapsed,
		Running:      s.state.Running,
		Paused:       s.state.Paused,
		GameOver:     s.state.GameOver,
		Difficulty:   s.active,
		FactIndex:    s.state.FactIndex,
	}
	if s.state.Active != nil {
		a := *s.state.Active
		snap.Powerup = &a
	}
	return snap
}
