package core

// RuntimeConfig contains configuration passed to a session at creation.
// These are read-only constants for the session's lifetime; the core does
// not persist or reload configuration.
type RuntimeConfig struct {
	GridW    int    // Grid width in cells
	GridH    int    // Grid height in cells
	StartX   int    // Agent starting cell column
	StartY   int    // Agent starting cell row
	TickRate int    // Simulation ticks per second (pacing lives in the platform layer)
	Seed     int64  // RNG seed for deterministic target placement
	Planner  string // Planner ID ("astar" by default)
}

// DefaultConfig returns a RuntimeConfig matching the classic 640x480 board
// with 20px cells: a 32x24 grid with the agent starting at (5,5).
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    32,
		GridH:    24,
		StartX:   5,
		StartY:   5,
		TickRate: 10,
		Seed:     0, // 0 means the platform layer picks a time-based seed
		Planner:  "astar",
	}
}

// SessionState is the lifecycle state of a simulation session.
type SessionState int

const (
	// StateRunning means the session accepts further ticks.
	StateRunning SessionState = iota
	// StateDead means the agent left the grid or collided with itself.
	StateDead
	// StateWon means the agent filled the entire grid. There is no free
	// cell left for a target, so the session ends instead of looping in
	// the target generator.
	StateWon
)

// Terminal reports whether the state is absorbing: once reached, the
// session produces no further ticks.
func (s SessionState) Terminal() bool {
	return s != StateRunning
}

func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDead:
		return "dead"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// TickResult is returned by Session.Tick after each simulation tick.
type TickResult struct {
	Moved    bool // The agent advanced one cell this tick
	Grew     bool // The agent reached the target and grew
	Terminal bool // The session reached an absorbing state
}
