package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vandriyan/autosnake/internal/game"
	"github.com/vandriyan/autosnake/internal/platform/tui"
	"github.com/vandriyan/autosnake/internal/storage"
)

var (
	flagWatchConfig  string
	flagWatchPlanner string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the agent play",
	Long: `Start an interactive viewer for the autonomous agent.

Controls:
  P/Esc      - Pause/resume
  +/-        - Speed up / slow down
  R          - Restart (after the run ends)
  Q/Ctrl+C   - Quit

Examples:
  autosnake watch
  autosnake watch --planner greedy
  autosnake watch --seed 42 --fps 30
  autosnake watch --config ./my-board.yaml`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom config YAML")
	watchCmd.Flags().StringVar(&flagWatchPlanner, "planner", "", "Path planner to use (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) {
	rt, err := loadRuntime(flagWatchConfig, flagWatchPlanner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := game.New(rt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	runErr := tui.Run(session, store, rt, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
