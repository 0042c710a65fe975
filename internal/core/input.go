package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump, or start a run from the title screen
	ActionPause             // P, Escape - pause/unpause the run
	ActionRestart           // R, Enter - start a new run
	ActionBack              // B key - abandon the run and return to the title screen
	ActionDifficulty        // D, Tab - cycle difficulty for the next run
	ActionScoreboard        // S key - open the high score table
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionDifficulty:
		return "Difficulty"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
