// Package game implements the autonomous simulation session: the agent's
// body, the occupancy set, the per-tick movement policy, target generation,
// and the lifecycle/termination rules.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vandriyan/autosnake/internal/core"
	"github.com/vandriyan/autosnake/internal/planner"
)

// Session owns all mutable simulation state. It is single-threaded by
// design: Tick runs to completion before the next tick begins, and nothing
// is shared across sessions.
type Session struct {
	cfg     core.RuntimeConfig
	bounds  core.Bounds
	rng     *rand.Rand
	planner planner.Planner

	segments []core.Cell // Agent body, head at index 0
	occupied CellSet
	target   core.Cell
	dir      core.Cell // Unit step of the last move, for renderers only
	score    int
	ticks    uint64
	state    core.SessionState
}

// New creates a session with the agent as a single segment at the start
// cell and a freshly generated target. Malformed configuration is rejected
// here, never per-tick: all tick-time operations are total.
func New(cfg core.RuntimeConfig) (*Session, error) {
	if cfg.GridW <= 0 || cfg.GridH <= 0 {
		return nil, fmt.Errorf("game: invalid grid %dx%d", cfg.GridW, cfg.GridH)
	}
	b := core.Bounds{W: cfg.GridW, H: cfg.GridH}
	if b.Cells() < 2 {
		return nil, fmt.Errorf("game: grid %dx%d has no room for agent and target", cfg.GridW, cfg.GridH)
	}

	start := core.Cell{X: cfg.StartX, Y: cfg.StartY}
	if !b.Contains(start) {
		return nil, fmt.Errorf("game: start cell (%d,%d) outside %dx%d grid", start.X, start.Y, b.W, b.H)
	}

	plannerID := cfg.Planner
	if plannerID == "" {
		plannerID = "astar"
	}
	p, err := planner.Create(plannerID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		bounds:   b,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		planner:  p,
		segments: []core.Cell{start},
		occupied: NewCellSet(),
		dir:      core.Cell{X: 1, Y: 0},
		state:    core.StateRunning,
	}
	s.occupied.Rebuild(s.segments)
	s.target = s.nextTarget()

	return s, nil
}

// Tick advances the simulation by one step: plan a route from head to
// target over the current occupancy, advance the agent one cell along it,
// grow and re-target on arrival, then evaluate the termination rules.
// Terminal states are absorbing: ticking a finished session is a no-op.
func (s *Session) Tick() core.TickResult {
	if s.state.Terminal() {
		return core.TickResult{Terminal: true}
	}

	s.ticks++

	head := s.segments[0]
	path := s.planner.FindPath(head, s.target, s.bounds, s.occupied)
	if len(path) < 2 {
		// No route this tick. A defined no-op, not a failure: the body
		// may free a corridor on a later tick as the tail moves on.
		return core.TickResult{}
	}

	next := path[1]
	s.dir = core.Cell{X: next.X - head.X, Y: next.Y - head.Y}
	s.segments = append([]core.Cell{next}, s.segments...)

	grew := next == s.target
	if grew {
		s.score++
	} else {
		s.segments = s.segments[:len(s.segments)-1]
	}
	s.occupied.Rebuild(s.segments)

	if collided(s.segments, s.bounds) {
		s.state = core.StateDead
		return core.TickResult{Moved: true, Grew: grew, Terminal: true}
	}

	if grew {
		if s.occupied.Len() == s.bounds.Cells() {
			// Board full: no free cell for a new target. Calling the
			// generator here would never return, so the session ends as
			// a win instead.
			s.state = core.StateWon
			return core.TickResult{Moved: true, Grew: true, Terminal: true}
		}
		s.target = s.nextTarget()
	}

	return core.TickResult{Moved: true, Grew: grew}
}

// collided reports the termination condition: head out of bounds, or head
// on any other segment (indices 1..end).
func collided(segments []core.Cell, b core.Bounds) bool {
	head := segments[0]
	if !b.Contains(head) {
		return true
	}
	for _, seg := range segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Segments returns the agent's body, head first. Read-only for callers:
// all mutation goes through Tick.
func (s *Session) Segments() []core.Cell {
	return s.segments
}

// Head returns the agent's head cell.
func (s *Session) Head() core.Cell {
	return s.segments[0]
}

// Target returns the cell the agent is currently pathing toward.
func (s *Session) Target() core.Cell {
	return s.target
}

// Dir returns the unit step of the agent's last move.
func (s *Session) Dir() core.Cell {
	return s.dir
}

// Score returns the number of targets consumed.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// State returns the session lifecycle state.
func (s *Session) State() core.SessionState {
	return s.state
}

// Bounds returns the grid extent in cells.
func (s *Session) Bounds() core.Bounds {
	return s.bounds
}

// PlannerID returns the ID of the planner driving the agent.
func (s *Session) PlannerID() string {
	return s.planner.ID()
}
