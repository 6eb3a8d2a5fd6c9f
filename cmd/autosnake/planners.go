package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vandriyan/autosnake/internal/planner"
)

var plannersCmd = &cobra.Command{
	Use:   "planners",
	Short: "List available path planners",
	Long:  `Shows a list of all path planners the agent can be driven by.`,
	Run:   runPlanners,
}

func runPlanners(cmd *cobra.Command, args []string) {
	planners := planner.List()

	if len(planners) == 0 {
		fmt.Println("No planners available.")
		return
	}

	fmt.Println("Available planners:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range planners {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, p := range planners {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'autosnake watch --planner <id>' to watch one drive the agent.")
}
