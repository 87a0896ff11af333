// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only outcomes are stored. Board state is never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round results.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID           int64
	RoundID      string // UUID assigned on save when empty
	DifficultyID string
	Width        int
	Height       int
	Mines        int
	Won          bool
	Duration     time.Duration
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			difficulty_id TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			won INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(difficulty_id, won, duration_ms);
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

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (round_id, difficulty_id, width, height, mines, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.DifficultyID, r.Width, r.Height, r.Mines, boolToInt(r.Won), r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, round_id, difficulty_id, width, height, mines, won, duration_ms, created_at`

// BestTimes retrieves the fastest wins for the given difficulty.
// Results are ordered by duration ascending.
func (s *Store) BestTimes(difficultyID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE difficulty_id = ? AND won = 1
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		difficultyID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent rounds across all difficulties.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// ResultByRound retrieves a result by its round ID.
// Returns nil if no such round was recorded.
func (s *Store) ResultByRound(roundID string) (*Result, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+` FROM results WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	results, err := scanResults(rows)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

// BestTime returns the fastest win for the given difficulty.
// The bool is false if the difficulty has never been won.
func (s *Store) BestTime(difficultyID string) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM results WHERE difficulty_id = ? AND won = 1",
		difficultyID,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearResults deletes all results for the given difficulty.
func (s *Store) ClearResults(difficultyID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty_id = ?", difficultyID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	DifficultyID string
	Played       int
	Won          int
	BestTime     time.Duration // Zero if never won
	AvgWinTime   time.Duration // Zero if never won
	LastPlayed   time.Time
}

// WinRate returns the fraction of rounds won, or 0 if none were played.
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// GetStats retrieves aggregated statistics for a specific difficulty.
func (s *Store) GetStats(difficultyID string) (*Stats, error) {
	rows, err := s.db.Query(statsQuery+` WHERE difficulty_id = ? GROUP BY difficulty_id`, difficultyID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	all, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if st, ok := all[difficultyID]; ok {
		return st, nil
	}
	return &Stats{DifficultyID: difficultyID}, nil
}

// GetAllStats retrieves statistics for every difficulty that has been played.
func (s *Store) GetAllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY difficulty_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	return scanStats(rows)
}

const statsQuery = `
	SELECT difficulty_id,
	       COUNT(*),
	       COALESCE(SUM(won), 0),
	       COALESCE(MIN(CASE WHEN won = 1 THEN duration_ms END), 0),
	       COALESCE(AVG(CASE WHEN won = 1 THEN duration_ms END), 0),
	       MAX(created_at)
	FROM results`

func scanStats(rows *sql.Rows) (map[string]*Stats, error) {
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var best int64
		var avg float64
		var lastPlayed any
		if err := rows.Scan(&st.DifficultyID, &st.Played, &st.Won, &best, &avg, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(best) * time.Millisecond
		st.AvgWinTime = time.Duration(avg * float64(time.Millisecond))
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.DifficultyID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var ms int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RoundID,
			&r.DifficultyID,
			&r.Width,
			&r.Height,
			&r.Mines,
			&r.Won,
			&ms,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
