// Package config provides YAML-based configuration loading for the
// autosnake simulation.
package config

import (
	"fmt"

	"github.com/vandriyan/autosnake/internal/core"
)

// Config contains all configuration for a simulation run.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Agent      AgentConfig      `yaml:"agent"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// BoardConfig describes the board in pixels, the way the classic window
// geometry did. Grid dimensions in cells are derived: width/cell_size by
// height/cell_size.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// AgentConfig defines the agent's fixed starting cell.
type AgentConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// SimulationConfig defines pacing and planning parameters.
type SimulationConfig struct {
	TickRate int    `yaml:"tick_rate"`
	Planner  string `yaml:"planner"`
}

// GridCells returns the grid dimensions in cells.
func (c Config) GridCells() (w, h int) {
	return c.Board.Width / c.Board.CellSize, c.Board.Height / c.Board.CellSize
}

// Validate rejects malformed configuration before a session is created.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board %dx%d must be positive", c.Board.Width, c.Board.Height)
	}
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: cell_size %d must be positive", c.Board.CellSize)
	}
	if c.Board.Width%c.Board.CellSize != 0 || c.Board.Height%c.Board.CellSize != 0 {
		return fmt.Errorf("config: cell_size %d must divide board %dx%d",
			c.Board.CellSize, c.Board.Width, c.Board.Height)
	}

	w, h := c.GridCells()
	if c.Agent.StartX < 0 || c.Agent.StartX >= w || c.Agent.StartY < 0 || c.Agent.StartY >= h {
		return fmt.Errorf("config: start cell (%d,%d) outside %dx%d grid",
			c.Agent.StartX, c.Agent.StartY, w, h)
	}

	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d must be positive", c.Simulation.TickRate)
	}

	return nil
}

// Runtime converts the configuration into the session's RuntimeConfig.
// The seed and planner override come from CLI flags, not the file.
func (c Config) Runtime(seed int64, plannerOverride string) core.RuntimeConfig {
	w, h := c.GridCells()

	plannerID := c.Simulation.Planner
	if plannerOverride != "" {
		plannerID = plannerOverride
	}

	return core.RuntimeConfig{
		GridW:    w,
		GridH:    h,
		StartX:   c.Agent.StartX,
		StartY:   c.Agent.StartY,
		TickRate: c.Simulation.TickRate,
		Seed:     seed,
		Planner:  plannerID,
	}
}
