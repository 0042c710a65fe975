package core

// RuntimeConfig carries the per-session values that are not part of the game
// config: terminal size, frame rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame requests per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns an 80x24, 60 fps config with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
