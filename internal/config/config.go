// Package config provides YAML-based game configuration loading and
// difficulty profile resolution for the runner.
package config

// RunnerConfig contains all tunable configuration for the runner.
// World units are abstract pixels; the renderer scales them to cells.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	World      WorldConfig      `yaml:"world"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Loop       LoopConfig       `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Facts      []string         `yaml:"facts"`
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`             // px/s^2, positive is down
	JumpImpulse       float64 `yaml:"jump_impulse"`        // px/s, negative is up
	StompBounceFactor float64 `yaml:"stomp_bounce_factor"` // fraction of JumpImpulse applied after a stomp
	StompTolerance    float64 `yaml:"stomp_tolerance"`     // px of slack above an obstacle top
}

// PlayerConfig defines the player's fixed lane and size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WorldConfig defines the playfield geometry.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundY       float64 `yaml:"ground_y"`       // Floor line; entities rest on it
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Spawn x = Width + SpawnMargin
	CullThreshold float64 `yaml:"cull_threshold"` // Entities whose right edge drops below this are removed
	LowBandY      float64 `yaml:"low_band_y"`     // Top of the lower floating band
	HighBandY     float64 `yaml:"high_band_y"`    // Top of the upper floating band
}

// ObstacleConfig defines size ranges for hazards and bonus cans.
type ObstacleConfig struct {
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	CanMinWidth  float64 `yaml:"can_min_width"`
	CanMaxWidth  float64 `yaml:"can_max_width"`
	CanMinHeight float64 `yaml:"can_min_height"`
	CanMaxHeight float64 `yaml:"can_max_height"`
}

// PickupConfig defines the size of floating collectibles and powerups.
type PickupConfig struct {
	CollectibleSize float64 `yaml:"collectible_size"`
	PowerupSize     float64 `yaml:"powerup_size"`
}

// ScoringConfig defines point values and progression triggers.
type ScoringConfig struct {
	CollectPoints     int     `yaml:"collect_points"`     // Multiplied by the profile's score multiplier
	StompPoints       int     `yaml:"stomp_points"`       // Multiplied by the profile's score multiplier
	BonusPoints       int     `yaml:"bonus_points"`       // Flat bonus-can reward
	CelebrationPoints int     `yaml:"celebration_points"` // Flat bonus-can reward with particles
	Milestones        []int   `yaml:"milestones"`         // Ascending score thresholds
	RampSeconds       float64 `yaml:"ramp_seconds"`       // Interval of the speed ramp
	CarryFraction     bool    `yaml:"carry_fraction"`     // Carry sub-second remainder into the next second
}

// PowerupConfig defines timed effect durations.
type PowerupConfig struct {
	FilterSeconds     float64 `yaml:"filter_seconds"`
	SpeedBoostSeconds float64 `yaml:"speed_boost_seconds"`
	SpeedBoostDelta   float64 `yaml:"speed_boost_delta"`
}

// LoopConfig defines frame clock limits.
type LoopConfig struct {
	MaxDeltaMS    int     `yaml:"max_delta_ms"`   // Delta clamp in milliseconds
	EffectSeconds float64 `yaml:"effect_seconds"` // Lifetime of transient particle effects
}

// DifficultyConfig holds the selectable difficulty profiles.
type DifficultyConfig struct {
	Default string  `yaml:"default"`
	Easy    Profile `yaml:"easy"`
	Normal  Profile `yaml:"normal"`
	Hard    Profile `yaml:"hard"`
}

// Profile is the immutable bundle of constants selected by difficulty.
type Profile struct {
	BaseSpeed            float64 `yaml:"base_speed"`
	StartingLives        int     `yaml:"starting_lives"`
	ObstacleSpawnProb    float64 `yaml:"obstacle_spawn_prob"`
	CollectibleSpawnProb float64 `yaml:"collectible_spawn_prob"`
	PowerupSpawnProb     float64 `yaml:"powerup_spawn_prob"`
	BonusCanSpawnProb    float64 `yaml:"bonus_can_spawn_prob"`
	ScoreMultiplier      float64 `yaml:"score_multiplier"`
	SpeedRampPer10s      float64 `yaml:"speed_ramp_per_10s"`
	SpawnIntervalSeconds float64 `yaml:"spawn_interval_seconds"`
}
