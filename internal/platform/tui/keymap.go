package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to runner actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "up", "w", "k":
		return core.ActionJump
	case "p", "esc":
		return core.ActionPause
	case "r", "enter":
		return core.ActionRestart
	case "b":
		return core.ActionBack
	case "d", "tab":
		return core.ActionDifficulty
	case "s":
		return core.ActionScoreboard
	}
	return core.ActionNone
}
