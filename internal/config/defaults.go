package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is the last fallback when the
// embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:           2200,
			JumpImpulse:       -760,
			StompBounceFactor: 0.6,
			StompTolerance:    12,
		},
		Player: PlayerConfig{
			X:      90,
			Width:  44,
			Height: 56,
		},
		World: WorldConfig{
			Width:         960,
			Height:        540,
			GroundY:       470,
			SpawnMargin:   40,
			CullThreshold: -10,
			LowBandY:      372,
			HighBandY:     296,
		},
		Obstacles: ObstacleConfig{
			MinWidth:     26,
			MaxWidth:     44,
			MinHeight:    34,
			MaxHeight:    64,
			CanMinWidth:  24,
			CanMaxWidth:  32,
			CanMinHeight: 30,
			CanMaxHeight: 42,
		},
		Pickups: PickupConfig{
			CollectibleSize: 26,
			PowerupSize:     30,
		},
		Scoring: ScoringConfig{
			CollectPoints:     10,
			StompPoints:       20,
			BonusPoints:       25,
			CelebrationPoints: 50,
			Milestones:        []int{100, 250, 500, 1000, 2500, 5000},
			RampSeconds:       10,
		},
		Powerups: PowerupConfig{
			FilterSeconds:     3.0,
			SpeedBoostSeconds: 2.5,
			SpeedBoostDelta:   120,
		},
		Loop: LoopConfig{
			MaxDeltaMS:    50,
			EffectSeconds: 0.8,
		},
		Difficulty: DifficultyConfig{
			Default: string(DifficultyNormal),
			Easy: Profile{
				BaseSpeed:            150,
				StartingLives:        5,
				ObstacleSpawnProb:    0.55,
				CollectibleSpawnProb: 0.6,
				PowerupSpawnProb:     0.15,
				BonusCanSpawnProb:    0.12,
				ScoreMultiplier:      0.8,
				SpeedRampPer10s:      10,
				SpawnIntervalSeconds: 1.6,
			},
			Normal: Profile{
				BaseSpeed:            180,
				StartingLives:        3,
				ObstacleSpawnProb:    0.7,
				CollectibleSpawnProb: 0.5,
				PowerupSpawnProb:     0.12,
				BonusCanSpawnProb:    0.1,
				ScoreMultiplier:      1.0,
				SpeedRampPer10s:      15,
				SpawnIntervalSeconds: 1.3,
			},
			Hard: Profile{
				BaseSpeed:            230,
				StartingLives:        2,
				ObstacleSpawnProb:    0.85,
				CollectibleSpawnProb: 0.4,
				PowerupSpawnProb:     0.1,
				BonusCanSpawnProb:    0.08,
				ScoreMultiplier:      1.5,
				SpeedRampPer10s:      25,
				SpawnIntervalSeconds: 1.0,
			},
		},
		Facts: []string{
			"A single dripping tap can waste over 5,000 litres of water a year.",
			"Aluminium cans can be recycled endlessly without losing quality.",
			"A recycled can is often back on the shelf within about 60 days.",
			"Only around 3% of the water on Earth is fresh water.",
			"Filtering tap water at home replaces hundreds of plastic bottles a year.",
			"Roughly 2 billion people lack access to safely managed drinking water.",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
