package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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
	store := openTemp(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", "s1", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pong", "s1", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].SessionID != "s1" {
		t.Errorf("Expected session s1, got %q", scores[0].SessionID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	pongScores, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pongScores) != 1 {
		t.Errorf("Expected 1 pong score, got %d", len(pongScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreFromHistory(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("invaders", "", 100)
	store.SaveScore("invaders", "", 300)
	store.SaveScore("invaders", "", 200)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreHighScoreRecord(t *testing.T) {
	store := openTemp(t)

	if got := store.LoadHighScore("snake"); got != 0 {
		t.Errorf("Expected 0 for missing record, got %d", got)
	}

	if err := store.SaveHighScore("snake", 40); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := store.LoadHighScore("snake"); got != 40 {
		t.Errorf("Expected 40, got %d", got)
	}

	// Upsert replaces the previous value
	if err := store.SaveHighScore("snake", 70); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := store.LoadHighScore("snake"); got != 70 {
		t.Errorf("Expected 70 after overwrite, got %d", got)
	}
	if got := store.LoadHighScore("pong"); got != 0 {
		t.Errorf("Other games should be unaffected, got %d", got)
	}
}

func TestStoreMalformedHighScore(t *testing.T) {
	store := openTemp(t)

	for _, raw := range []string{"abc", "", "-5", "12.5"} {
		_, err := store.db.Exec(
			`INSERT INTO high_scores (game_id, value) VALUES ('snake', ?)
			 ON CONFLICT(game_id) DO UPDATE SET value = excluded.value`, raw)
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if got := store.LoadHighScore("snake"); got != 0 {
			t.Errorf("value %q: expected 0, got %d", raw, got)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("snake", "", 100)
	store.SaveScore("snake", "", 200)
	store.SaveScore("pong", "", 3)
	store.SaveHighScore("snake", 200)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}
	if got := store.LoadHighScore("snake"); got != 0 {
		t.Errorf("Expected high score cleared, got %d", got)
	}

	pongScores, _ := store.TopScores("pong", 10)
	if len(pongScores) != 1 {
		t.Errorf("Pong scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSessionScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("snake", "a", 10)
	store.SaveScore("pong", "b", 2)
	store.SaveScore("rps", "a", 3)

	scores, err := store.SessionScores("a")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for session a, got %d", len(scores))
	}
	if scores[0].GameID != "snake" || scores[1].GameID != "rps" {
		t.Errorf("Expected insertion order, got %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTemp(t)

	for _, v := range []int{50, 10, 30, 20} {
		store.SaveScore("snake", "", v)
	}
	store.SaveScore("pong", "", 99)

	scores, err := store.RecentScores("snake", 3)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	want := []int{20, 30, 10}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("snake", "", 10)
	store.SaveScore("snake", "", 30)
	store.SaveScore("pong", "", 5)

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}

	empty, err := store.GetGameStats("tictactoe")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["pong"].HighScore != 5 {
		t.Errorf("Unexpected aggregate stats: %v", all)
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('snake', 12);`)
	if err != nil {
		t.Fatalf("legacy schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 12 || scores[0].SessionID != "" {
		t.Errorf("Legacy row not preserved: %v", scores)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
