package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vandriyan/autosnake/internal/core"
	"github.com/vandriyan/autosnake/internal/game"
	"github.com/vandriyan/autosnake/internal/storage"
)

var (
	flagRunConfig   string
	flagRunPlanner  string
	flagRunMaxTicks uint64
	flagRunVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display, as fast as the machine allows,
and print the result. The run is recorded in the runs database.

Examples:
  autosnake run
  autosnake run --seed 42 --planner greedy
  autosnake run --max-ticks 100000
  autosnake run -v`,
	Run: runHeadless,
}

func init() {
	runCmd.Flags().StringVar(&flagRunConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().StringVar(&flagRunPlanner, "planner", "", "Path planner to use (default from config)")
	runCmd.Flags().Uint64Var(&flagRunMaxTicks, "max-ticks", 1_000_000, "Stop the run after this many ticks")
	runCmd.Flags().BoolVarP(&flagRunVerbose, "verbose", "v", false, "Log each target consumed")
}

func runHeadless(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autosnake",
	})
	if flagRunVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	rt, err := loadRuntime(flagRunConfig, flagRunPlanner)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	session, err := game.New(rt)
	if err != nil {
		logger.Fatal("cannot create session", "error", err)
	}

	logger.Info("starting run",
		"grid", fmt.Sprintf("%dx%d", rt.GridW, rt.GridH),
		"planner", session.PlannerID(),
		"seed", rt.Seed,
	)

	lastScore := 0
	stalled := uint64(0)
	for session.Ticks() < flagRunMaxTicks && !session.State().Terminal() {
		result := session.Tick()

		if session.Score() != lastScore {
			lastScore = session.Score()
			logger.Debug("target consumed",
				"score", session.Score(),
				"length", len(session.Segments()),
				"tick", session.Ticks(),
			)
		}

		// A boxed-in agent produces no-op ticks until its tail frees a
		// corridor. Bail out if it never does.
		if !result.Moved && !result.Terminal {
			stalled++
			if stalled > uint64(rt.GridW*rt.GridH) {
				logger.Warn("agent permanently stalled, aborting", "tick", session.Ticks())
				break
			}
		} else {
			stalled = 0
		}
	}

	snap := session.Snapshot()
	outcome := "aborted"
	switch session.State() {
	case core.StateDead:
		outcome = "dead"
	case core.StateWon:
		outcome = "won"
	}

	logger.Info("run finished",
		"outcome", outcome,
		"score", snap.Score,
		"length", snap.Length,
		"ticks", snap.Ticks,
	)

	// Record the run
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunEntry{
		Planner: session.PlannerID(),
		Score:   snap.Score,
		Length:  snap.Length,
		Ticks:   snap.Ticks,
		Outcome: outcome,
	}); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
