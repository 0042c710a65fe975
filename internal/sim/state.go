package sim

import "github.com/vovakirdan/tui-runner/internal/config"

// ActivePowerup is the single running timed effect.
type ActivePowerup struct {
	Kind      PowerupKind
	Remaining float64 // Seconds left
	// RevertSpeed is the game speed captured when a speed boost started.
	// Unused for the filter, which only toggles a flag.
	RevertSpeed float64
}

// RunState holds the mutable counters of one run.
type RunState struct {
	Running  bool
	Paused   bool
	GameOver bool

	Score     int
	Lives     int
	HighScore int

	ElapsedSinceLastSecond float64
	ElapsedSinceLastSpawn  float64
	DifficultyRampTimer    float64
	Elapsed                float64 // Total simulated seconds this run

	GameSpeed float64
	Active    *ActivePowerup // nil when idle

	NextMilestone int // Index into the milestone list of the next threshold
	FactIndex     int // Fact chosen at game over, -1 before that
}

// Snapshot is a read-only copy of everything the renderer needs.
// Slices are copies; mutating them does not affect the simulation.
type Snapshot struct {
	Player       Player
	Obstacles    []Entity
	Collectibles []Entity
	Powerups     []Entity
	Effects      []Effect

	Powerup *ActivePowerup // Copy of the active effect, nil when idle

	Score     int
	Lives     int
	HighScore int
	Speed     float64
	Elapsed   float64

	Running    bool
	Paused     bool
	GameOver   bool
	Difficulty config.Difficulty
	FactIndex  int
}
