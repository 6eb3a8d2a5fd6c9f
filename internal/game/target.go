package game

import (
	"github.com/vandriyan/autosnake/internal/core"
)

// nextTarget samples uniformly random in-bounds cells until one is free of
// the agent's body. It loops forever on a full board, so Tick guards the
// call: when occupied == total cells the session is marked won instead.
func (s *Session) nextTarget() core.Cell {
	for {
		c := core.Cell{
			X: s.rng.Intn(s.bounds.W),
			Y: s.rng.Intn(s.bounds.H),
		}
		if !s.occupied.Contains(c) {
			return c
		}
	}
}
