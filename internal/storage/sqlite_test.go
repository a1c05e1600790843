package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	rec := ScoreRecord{
		RunID:  fmt.Sprintf("%s-%d-%s", gameID, score, t.Name()),
		GameID: gameID,
		Score:  score,
		Level:  1,
	}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := ScoreRecord{
		RunID:  "4f9c2b1e-run",
		GameID: "pacman_endless",
		Score:  1460,
		Level:  3,
		Ticks:  5400,
		Seed:   42,
	}
	id, err := store.SaveScore(rec)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected a non-zero row ID")
	}

	scores, err := store.TopScores("pacman_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	got := scores[0]
	if got.RunID != rec.RunID || got.Score != rec.Score || got.Level != rec.Level ||
		got.Ticks != rec.Ticks || got.Seed != rec.Seed {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, rec)
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "pacman", 100)
	save(t, store, "pacman", 50)
	save(t, store, "pacman", 200)
	save(t, store, "pacman_endless", 500)

	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	endless, err := store.TopScores("pacman_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "pacman", (i+1)*100)
	}

	scores, err := store.TopScores("pacman", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10
	all, err := store.TopScores("pacman", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreSaveScoreDuplicateRun(t *testing.T) {
	store := openTestStore(t)

	rec := ScoreRecord{RunID: "same-run", GameID: "pacman", Score: 300, Level: 1}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	rec.Score = 900
	id, err := store.SaveScore(rec)
	if err != nil {
		t.Fatalf("SaveScore() duplicate failed: %v", err)
	}
	if id != 0 {
		t.Errorf("Expected ID 0 for a duplicate run, got %d", id)
	}

	scores, _ := store.TopScores("pacman", 10)
	if len(scores) != 1 || scores[0].Score != 300 {
		t.Errorf("Duplicate run should keep the first row, got %v", scores)
	}
}

func TestStoreSaveScoreValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		rec  ScoreRecord
	}{
		{"missing run id", ScoreRecord{GameID: "pacman", Score: 10}},
		{"missing game id", ScoreRecord{RunID: "run", Score: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveScore(tt.rec); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "pacman", 100)
	save(t, store, "pacman", 300)
	save(t, store, "pacman", 200)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "pacman", 100)
	save(t, store, "pacman", 200)
	save(t, store, "pacman_endless", 300)

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("pacman", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	endless, _ := store.TopScores("pacman_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("pacman_endless")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	recs := []ScoreRecord{
		{RunID: "a", GameID: "pacman_endless", Score: 100, Level: 1},
		{RunID: "b", GameID: "pacman_endless", Score: 300, Level: 4},
		{RunID: "c", GameID: "pacman_endless", Score: 200, Level: 2},
	}
	for _, rec := range recs {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err = store.GetGameStats("pacman_endless")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, want 4", stats.BestLevel)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
