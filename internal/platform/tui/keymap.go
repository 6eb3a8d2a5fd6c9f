package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vandriyan/autosnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to viewer actions.
// The agent steers itself, so the bindings only control the session
// lifecycle and the tick pacing. Centralized here to keep them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "+", "=":
		return core.ActionFaster, false
	case "-", "_":
		return core.ActionSlower, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
