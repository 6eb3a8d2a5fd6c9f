package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vandriyan/autosnake/internal/planner"
	"github.com/vandriyan/autosnake/internal/platform/tui"
	"github.com/vandriyan/autosnake/internal/storage"
)

var (
	flagScoresPlanner     string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded run history",
	Long: `Display the top recorded runs, best score first.

Examples:
  autosnake scores
  autosnake scores --planner greedy
  autosnake scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlanner, "planner", "", "Only show runs for this planner")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresPlanner != "" && !planner.Exists(flagScoresPlanner) {
		fmt.Fprintf(os.Stderr, "Error: unknown planner %q\n", flagScoresPlanner)
		fmt.Fprintln(os.Stderr, "Run 'autosnake planners' to see available ones.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresPlanner, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagScoresPlanner != "" {
		fmt.Printf("Run History - %s\n", flagScoresPlanner)
	} else {
		fmt.Println("Run History")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'autosnake run' or 'autosnake watch' to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %-8s  %-9s  %s\n",
		"Rank", "Planner", "Score", "Length", "Ticks", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %-8s  %-9s  %s\n",
		"----", "-------", "-----", "------", "-----", "-------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-8d  %-10d  %-8d  %-9s  %s\n",
			i+1, entry.Planner, entry.Score, entry.Length, entry.Ticks, entry.Outcome, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(flagScoresPlanner); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
