package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GameStats aggregates every run of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// HighScore returns the best score of gameID, or 0 without runs.
func (s *Store) HighScore(gameID string) (int, error) {
	v, err := scanNullInt(s.db.QueryRow("SELECT MAX(score) FROM runs WHERE game_id = ?", gameID))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return v, nil
}

// BestLevel returns the highest level reached in gameID, or 0 without runs.
func (s *Store) BestLevel(gameID string) (int, error) {
	v, err := scanNullInt(s.db.QueryRow("SELECT MAX(level) FROM runs WHERE game_id = ?", gameID))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}
	return v, nil
}

// GetGameStats aggregates the runs of gameID. A game without runs yields
// zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.GamesCount, &st.HighScore, &st.BestLevel, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = parseTimestamp(last)
	}
	return st, nil
}

// GetAllGamesStats aggregates runs per game, for games with at least one run.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), MAX(level), AVG(score), SUM(score), MAX(created_at)
		 FROM runs GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.BestLevel,
			&st.AvgScore, &st.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(last)
		out[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
