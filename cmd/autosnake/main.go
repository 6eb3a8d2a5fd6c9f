// autosnake is a self-driving snake simulation for the terminal.
//
// Usage:
//
//	autosnake watch           - Watch the agent play in a TUI
//	autosnake run             - Run a headless simulation to completion
//	autosnake planners        - List available path planners
//	autosnake scores          - Show recorded run history
//	autosnake serve           - Serve the viewer over SSH
//
// Global flags:
//
//	--fps <rate>    - Override tick rate (0 = use config)
//	--seed <value>  - Set RNG seed for reproducible runs (0 = random based on time)
//	--db <path>     - Set database path (default: ~/.autosnake/runs.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vandriyan/autosnake/internal/config"
	"github.com/vandriyan/autosnake/internal/core"
	"github.com/vandriyan/autosnake/internal/planner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autosnake",
	Short: "Autosnake - a self-driving snake in your terminal",
	Long: `Autosnake runs an autonomous snake agent on a grid: a path planner
routes the agent to each target, the body grows on arrival, and the run
ends when the agent collides or fills the board.

Available commands:
  watch     - Watch the agent play in an interactive TUI
  run       - Run a headless simulation and print the result
  planners  - List available path planners
  scores    - View recorded run history
  serve     - Serve the viewer over SSH

Examples:
  autosnake watch
  autosnake watch --planner greedy
  autosnake run --seed 42
  autosnake scores --interactive
  autosnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.autosnake/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(plannersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRuntime builds a session config from the YAML config and CLI flags.
func loadRuntime(configPath, plannerID string) (core.RuntimeConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	if plannerID != "" && !planner.Exists(plannerID) {
		return core.RuntimeConfig{}, fmt.Errorf("unknown planner %q, run 'autosnake planners' to see available ones", plannerID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := cfg.Runtime(seed, plannerID)
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt, nil
}
