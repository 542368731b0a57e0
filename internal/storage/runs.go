package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

const (
	selectRuns = `SELECT id, game_id, score, level, created_at FROM runs WHERE game_id = ?`
	bestFirst  = ` ORDER BY score DESC, level DESC, id ASC`
)

// RunEntry is one finished run: bounces scored and the level reached.
type RunEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its row ID.
// Levels below 1 are stored as 1.
func (s *Store) SaveRun(gameID string, score, level int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, level) VALUES (?, ?, ?)",
		gameID, score, max(level, 1),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns up to limit runs of gameID, best first.
// A non-positive limit means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(selectRuns+bestFirst+" LIMIT ?", gameID, limit)
}

// AllRuns returns every run of gameID, best first.
func (s *Store) AllRuns(gameID string) ([]RunEntry, error) {
	return s.queryRuns(selectRuns+bestFirst, gameID)
}

// ClearRuns deletes every run of gameID.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		var (
			r       RunEntry
			created any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(created)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTimestamp accepts the driver's time.Time or SQLite's text forms.
// Anything else is the zero time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timestampLayout, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// scanNullInt reads a single nullable integer, treating NULL as 0.
func scanNullInt(row *sql.Row) (int, error) {
	var v sql.NullInt64
	if err := row.Scan(&v); err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}
