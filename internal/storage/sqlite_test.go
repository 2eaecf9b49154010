package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreAppendAndLoad(t *testing.T) {
	store := openTestStore(t)

	records := []hyperdrop.ScoreRecord{
		{PlayerName: "ada", Score: 300, SessionID: "s1"},
		{PlayerName: "bob", Score: 100, SessionID: "s2"},
		{PlayerName: "ada", Score: 200, SessionID: "s3"},
	}
	for _, rec := range records {
		if err := store.AppendScore(rec); err != nil {
			t.Fatalf("AppendScore() failed: %v", err)
		}
	}

	loaded, err := store.LoadScores()
	if err != nil {
		t.Fatalf("LoadScores() failed: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("Expected %d scores, got %d", len(records), len(loaded))
	}

	// Insertion order, not score order
	for i, rec := range records {
		got := loaded[i]
		if got.PlayerName != rec.PlayerName || got.Score != rec.Score || got.SessionID != rec.SessionID {
			t.Errorf("record %d = %+v, want %+v", i, got, rec)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("record %d has no creation time", i)
		}
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.LoadScores()
	if err != nil {
		t.Fatalf("LoadScores() failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected no scores, got %d", len(loaded))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "p", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(3)
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

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"first", "second", "third"} {
		store.AppendScore(hyperdrop.ScoreRecord{PlayerName: name, Score: 100})
	}

	scores, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if scores[i].PlayerName != want {
			t.Errorf("position %d = %s, want %s", i, scores[i].PlayerName, want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "a", Score: 100})
	store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "b", Score: 400})
	store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "c", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 400 {
		t.Errorf("Expected high score 400, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "a", Score: 100})
	store.SetCurrentPlayer("a")

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	loaded, _ := store.LoadScores()
	if len(loaded) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(loaded))
	}
	if name, ok, _ := store.CurrentPlayer(); !ok || name != "a" {
		t.Errorf("ClearScores should keep the current player, got %q", name)
	}
}

func TestStoreCurrentPlayer(t *testing.T) {
	store := openTestStore(t)

	name, ok, err := store.CurrentPlayer()
	if err != nil {
		t.Fatalf("CurrentPlayer() failed: %v", err)
	}
	if ok || name != "" {
		t.Errorf("Expected no current player, got %q", name)
	}

	for _, want := range []string{"ada", "bob"} {
		if err := store.SetCurrentPlayer(want); err != nil {
			t.Fatalf("SetCurrentPlayer() failed: %v", err)
		}
		name, ok, err = store.CurrentPlayer()
		if err != nil {
			t.Fatalf("CurrentPlayer() failed: %v", err)
		}
		if !ok || name != want {
			t.Errorf("CurrentPlayer() = %q, %v, want %q", name, ok, want)
		}
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.AppendScore(hyperdrop.ScoreRecord{PlayerName: "ada", Score: 700})
	store.SetCurrentPlayer("ada")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	loaded, _ := store.LoadScores()
	if len(loaded) != 1 || loaded[0].Score != 700 {
		t.Errorf("Expected the saved score after reopen, got %v", loaded)
	}
	if name, _, _ := store.CurrentPlayer(); name != "ada" {
		t.Errorf("Expected current player ada after reopen, got %q", name)
	}
}

func TestSessionWritesToStore(t *testing.T) {
	store := openTestStore(t)

	s := hyperdrop.NewSession(hyperdrop.Options{Seed: 1, Scores: store, Players: store})
	if err := s.Start("ada"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	s.Abort()

	loaded, err := store.LoadScores()
	if err != nil {
		t.Fatalf("LoadScores() failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].PlayerName != "ada" || loaded[0].SessionID != s.ID() {
		t.Errorf("Expected one record for the session, got %v", loaded)
	}
	if name, _, _ := store.CurrentPlayer(); name != "ada" {
		t.Errorf("Expected current player ada, got %q", name)
	}
}
