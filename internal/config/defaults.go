package config

import (
	_ "embed"
)

//go:embed defaults/autosnake.yaml
var defaultYAML []byte

// Default returns the default configuration: the classic 640x480 board with
// 20px cells (a 32x24 grid), agent at (5,5), 10 ticks per second, A*.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		Agent: AgentConfig{
			StartX: 5,
			StartY: 5,
		},
		Simulation: SimulationConfig{
			TickRate: 10,
			Planner:  "astar",
		},
	}
}
