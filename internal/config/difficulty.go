package config

import "strings"

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used for empty or unrecognized labels.
const DefaultDifficulty = DifficultyNormal

// Difficulties lists the selectable levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty maps a label to a Difficulty.
// Unknown labels fall back to DefaultDifficulty; this never fails.
func ParseDifficulty(label string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(label))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyNormal:
		return DifficultyNormal
	case DifficultyHard:
		return DifficultyHard
	default:
		return DefaultDifficulty
	}
}

// Next returns the following difficulty, wrapping around after hard.
func (d Difficulty) Next() Difficulty {
	levels := Difficulties()
	for i, l := range levels {
		if l == d {
			return levels[(i+1)%len(levels)]
		}
	}
	return DefaultDifficulty
}

// Title returns a display name for the difficulty.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Profile returns the profile for a difficulty from this config.
func (c RunnerConfig) Profile(d Difficulty) Profile {
	switch ParseDifficulty(string(d)) {
	case DifficultyEasy:
		return c.Difficulty.Easy
	case DifficultyHard:
		return c.Difficulty.Hard
	default:
		return c.Difficulty.Normal
	}
}

// ResolveProfile returns the built-in profile for a label.
// Unknown labels resolve to the normal profile.
func ResolveProfile(label string) Profile {
	return DefaultRunnerConfig().Profile(ParseDifficulty(label))
}
