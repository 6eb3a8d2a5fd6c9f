// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single completed (or aborted) simulation run.
type RunEntry struct {
	ID        int64
	Planner   string
	Score     int
	Length    int
	Ticks     uint64
	Outcome   string // "dead", "won", "aborted"
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			planner TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_planner ON runs(planner);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(planner, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (planner, score, length, ticks, outcome) VALUES (?, ?, ?, ?, ?)",
		entry.Planner, entry.Score, entry.Length, entry.Ticks, entry.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given planner, ordered by score
// descending. An empty planner matches all planners.
func (s *Store) TopRuns(planner string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, planner, score, length, ticks, outcome, created_at
		 FROM runs`
	args := []any{}
	if planner != "" {
		query += " WHERE planner = ?"
		args = append(args, planner)
	}
	query += " ORDER BY score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Planner, &e.Score, &e.Length, &e.Ticks, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score recorded for the given planner.
// An empty planner matches all planners. Returns 0 if no runs exist.
func (s *Store) HighScore(planner string) (int, error) {
	query := "SELECT MAX(score) FROM runs"
	args := []any{}
	if planner != "" {
		query += " WHERE planner = ?"
		args = append(args, planner)
	}

	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunStats contains aggregated statistics for a planner.
type RunStats struct {
	Planner    string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastRun    time.Time
}

// GetRunStats retrieves aggregated statistics for a specific planner.
func (s *Store) GetRunStats(planner string) (*RunStats, error) {
	stats := &RunStats{Planner: planner}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE planner = ?`,
		planner,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE planner = ? ORDER BY created_at DESC LIMIT 1`,
		planner,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseCreatedAt(lastRun)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs for the given planner.
// An empty planner clears everything.
func (s *Store) ClearRuns(planner string) error {
	var err error
	if planner == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE planner = ?", planner)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or the
// SQLite text representation.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
