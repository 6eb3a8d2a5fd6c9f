package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Planner: "astar", Score: 12, Length: 13, Ticks: 210, Outcome: "dead"},
		{Planner: "astar", Score: 40, Length: 41, Ticks: 900, Outcome: "dead"},
		{Planner: "greedy", Score: 3, Length: 4, Ticks: 55, Outcome: "dead"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns("astar", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d astar runs, expected 2", len(top))
	}
	if top[0].Score != 40 || top[1].Score != 12 {
		t.Errorf("runs not ordered by score desc: %d, %d", top[0].Score, top[1].Score)
	}
	if top[0].Length != 41 || top[0].Ticks != 900 {
		t.Errorf("run fields not round-tripped: length=%d ticks=%d", top[0].Length, top[0].Ticks)
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns all failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d total runs, expected 3", len(all))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("astar")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("empty store high score = %d, expected 0", score)
	}

	store.SaveRun(RunEntry{Planner: "astar", Score: 7, Length: 8, Ticks: 100, Outcome: "dead"})
	store.SaveRun(RunEntry{Planner: "astar", Score: 25, Length: 26, Ticks: 400, Outcome: "won"})

	score, err = store.HighScore("astar")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 25 {
		t.Errorf("high score = %d, expected 25", score)
	}
}

func TestGetRunStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Planner: "astar", Score: 10, Length: 11, Ticks: 150, Outcome: "dead"})
	store.SaveRun(RunEntry{Planner: "astar", Score: 30, Length: 31, Ticks: 600, Outcome: "dead"})

	stats, err := store.GetRunStats("astar")
	if err != nil {
		t.Fatalf("GetRunStats failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("runs count = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("high score = %d, expected 30", stats.HighScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("total score = %d, expected 40", stats.TotalScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("avg score = %v, expected 20", stats.AvgScore)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Planner: "astar", Score: 5, Length: 6, Ticks: 80, Outcome: "dead"})
	store.SaveRun(RunEntry{Planner: "greedy", Score: 2, Length: 3, Ticks: 30, Outcome: "dead"})

	if err := store.ClearRuns("astar"); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	remaining, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Planner != "greedy" {
		t.Errorf("expected only the greedy run to remain, got %+v", remaining)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns all failed: %v", err)
	}
	remaining, _ = store.TopRuns("", 10)
	if len(remaining) != 0 {
		t.Errorf("expected empty store after clearing all, got %d runs", len(remaining))
	}
}
