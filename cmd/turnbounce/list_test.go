package main

import (
	"testing"

	"github.com/vovakirdan/turnbounce/internal/games/turnbounce"
	"github.com/vovakirdan/turnbounce/internal/registry"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

func TestVariantRows(t *testing.T) {
	games := []registry.GameInfo{
		{ID: turnbounce.GameID, Title: "Turn & Bounce"},
		{ID: turnbounce.ClassicGameID, Title: "Turn & Bounce (Classic)"},
		{ID: "missing", Title: "Gone"},
	}
	best := map[string]*storage.GameStats{
		turnbounce.GameID: {GamesCount: 4, HighScore: 12, BestLevel: 3},
	}

	rows := variantRows(games, best)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	tests := []struct {
		row               int
		id, about, record string
	}{
		{0, turnbounce.GameID, turnbounce.New().Description(), "12 bounces, level 3"},
		{1, turnbounce.ClassicGameID, turnbounce.NewClassic().Description(), "-"},
		{2, "missing", "", "-"},
	}
	for _, tt := range tests {
		r := rows[tt.row]
		if r[0] != tt.id || r[2] != tt.about || r[3] != tt.record {
			t.Errorf("row %d = %q, want id %q about %q best %q", tt.row, r, tt.id, tt.about, tt.record)
		}
	}
}
