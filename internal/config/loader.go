package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name searched for in config directories.
const ConfigFileName = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is always normalized.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and normalizes it.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	Normalize(&cfg)
	return cfg, nil
}

// Normalize coerces out-of-range values back to their defaults.
// Bad tuning never fails a run; it is replaced.
func Normalize(cfg *RunnerConfig) {
	def := DefaultRunnerConfig()

	if cfg.Physics.Gravity <= 0 {
		cfg.Physics.Gravity = def.Physics.Gravity
	}
	if cfg.Physics.JumpImpulse >= 0 {
		cfg.Physics.JumpImpulse = def.Physics.JumpImpulse
	}
	if cfg.Physics.StompBounceFactor <= 0 {
		cfg.Physics.StompBounceFactor = def.Physics.StompBounceFactor
	}
	if cfg.Physics.StompTolerance < 0 {
		cfg.Physics.StompTolerance = def.Physics.StompTolerance
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		cfg.Player = def.Player
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 || cfg.World.GroundY <= 0 {
		cfg.World = def.World
	}
	if cfg.Obstacles.MaxWidth < cfg.Obstacles.MinWidth || cfg.Obstacles.MinWidth <= 0 ||
		cfg.Obstacles.MaxHeight < cfg.Obstacles.MinHeight || cfg.Obstacles.MinHeight <= 0 ||
		cfg.Obstacles.CanMaxWidth < cfg.Obstacles.CanMinWidth || cfg.Obstacles.CanMinWidth <= 0 ||
		cfg.Obstacles.CanMaxHeight < cfg.Obstacles.CanMinHeight || cfg.Obstacles.CanMinHeight <= 0 {
		cfg.Obstacles = def.Obstacles
	}
	if cfg.Pickups.CollectibleSize <= 0 {
		cfg.Pickups.CollectibleSize = def.Pickups.CollectibleSize
	}
	if cfg.Pickups.PowerupSize <= 0 {
		cfg.Pickups.PowerupSize = def.Pickups.PowerupSize
	}
	if cfg.Scoring.RampSeconds <= 0 {
		cfg.Scoring.RampSeconds = def.Scoring.RampSeconds
	}
	if !ascending(cfg.Scoring.Milestones) {
		cfg.Scoring.Milestones = def.Scoring.Milestones
	}
	if cfg.Powerups.FilterSeconds <= 0 {
		cfg.Powerups.FilterSeconds = def.Powerups.FilterSeconds
	}
	if cfg.Powerups.SpeedBoostSeconds <= 0 {
		cfg.Powerups.SpeedBoostSeconds = def.Powerups.SpeedBoostSeconds
	}
	if cfg.Loop.MaxDeltaMS <= 0 {
		cfg.Loop.MaxDeltaMS = def.Loop.MaxDeltaMS
	}
	if cfg.Loop.EffectSeconds <= 0 {
		cfg.Loop.EffectSeconds = def.Loop.EffectSeconds
	}

	normalizeProfile(&cfg.Difficulty.Easy, def.Difficulty.Easy)
	normalizeProfile(&cfg.Difficulty.Normal, def.Difficulty.Normal)
	normalizeProfile(&cfg.Difficulty.Hard, def.Difficulty.Hard)
	cfg.Difficulty.Default = string(ParseDifficulty(cfg.Difficulty.Default))
}

func normalizeProfile(p *Profile, def Profile) {
	if p.BaseSpeed <= 0 {
		p.BaseSpeed = def.BaseSpeed
	}
	if p.StartingLives <= 0 {
		p.StartingLives = def.StartingLives
	}
	if p.ScoreMultiplier <= 0 {
		p.ScoreMultiplier = def.ScoreMultiplier
	}
	if p.SpawnIntervalSeconds <= 0 {
		p.SpawnIntervalSeconds = def.SpawnIntervalSeconds
	}
	if p.SpeedRampPer10s < 0 {
		p.SpeedRampPer10s = def.SpeedRampPer10s
	}
	p.ObstacleSpawnProb = clampF(p.ObstacleSpawnProb, 0, 1)
	p.CollectibleSpawnProb = clampF(p.CollectibleSpawnProb, 0, 1)
	p.PowerupSpawnProb = clampF(p.PowerupSpawnProb, 0, 1)
	p.BonusCanSpawnProb = clampF(p.BonusCanSpawnProb, 0, 1)
}

func ascending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
