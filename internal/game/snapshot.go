package game

import (
	"github.com/vandriyan/autosnake/internal/core"
)

// Snapshot captures the session state for determinism testing and for the
// headless runner's summary output.
type Snapshot struct {
	Ticks   uint64
	Score   int
	Length  int
	HeadX   int
	HeadY   int
	TargetX int
	TargetY int
	Planner string
	State   core.SessionState
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.segments[0]
	return Snapshot{
		Ticks:   s.ticks,
		Score:   s.score,
		Length:  len(s.segments),
		HeadX:   head.X,
		HeadY:   head.Y,
		TargetX: s.target.X,
		TargetY: s.target.Y,
		Planner: s.planner.ID(),
		State:   s.state,
	}
}
