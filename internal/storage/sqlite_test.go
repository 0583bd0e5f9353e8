package storage

import (
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"bob", 50},
		{"carol", 200},
		{"dave", 100},
	} {
		if _, err := store.SaveScore(run.player, run.score, 600); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	wantOrder := []string{"carol", "alice", "dave", "bob"}
	for i, want := range wantOrder {
		if scores[i].Player != want {
			t.Errorf("rank %d = %s, want %s", i+1, scores[i].Player, want)
		}
	}
	if scores[0].Frames != 600 {
		t.Errorf("Frames = %d, want 600", scores[0].Frames)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("p", i*100, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("default limit returned %d scores, want 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board, got %d", high)
	}

	store.SaveScore("a", 300, 0)
	store.SaveScore("b", 700, 0)
	store.SaveScore("c", 500, 0)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("a", -1, 0); err == nil {
		t.Error("expected error for negative score")
	}
}

func TestStoreBlankPlayer(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("   ", 10, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.TopScores(1)
	if len(scores) != 1 || scores[0].Player != "anonymous" {
		t.Errorf("scores = %+v, want anonymous entry", scores)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveScore("a", 100, 0)

	n, err := b.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second store sees %d runs, want 0", n)
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SaveScore("p", i, 0); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 8 {
		t.Errorf("RunCount = %d, want 8", n)
	}
}
