package core

// Action represents a semantic control action, abstracted from physical key
// presses. The agent drives itself; actions only steer the session lifecycle
// and the pacing of the viewer.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause the tick driver
	ActionRestart        // R - restart after a terminal state
	ActionQuit           // Q, Ctrl+C - exit the viewer
	ActionFaster         // + - raise the tick rate
	ActionSlower         // - - lower the tick rate
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
