package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pico-peloton/internal/core"
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

	// Parent directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		player string
		stats  core.RunStats
	}{
		{"ana", core.RunStats{Score: 100, Ticks: 400, Seed: 1}},
		{"ana", core.RunStats{Score: 50, Ticks: 300, Seed: 2}},
		{"bo", core.RunStats{Score: 200, Ticks: 900, Seed: 3}},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.player, "headless", r.stats); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("Rank %d: expected score %d, got %d", i, want, top[i].Score)
		}
	}
	if top[0].Player != "bo" || top[0].Ticks != 900 || top[0].Seed != 3 {
		t.Errorf("Unexpected top run %+v", top[0])
	}
	if top[0].Frontend != "headless" {
		t.Errorf("Expected frontend headless, got %q", top[0].Frontend)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		store.SaveRun("ana", "terminal", core.RunStats{Score: i * 10, Ticks: 40})
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("Expected best score 140, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, _ = store.TopRuns(0)
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
}

func TestStoreTieBreaksOnTicks(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("slow", "terminal", core.RunStats{Score: 30, Ticks: 800})
	store.SaveRun("fast", "terminal", core.RunStats{Score: 30, Ticks: 200})

	top, _ := store.TopRuns(2)
	if top[0].Player != "fast" {
		t.Errorf("Expected shorter ride to rank first, got %q", top[0].Player)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("ana", "terminal", core.RunStats{Score: 10, Ticks: 40})
	store.SaveRun("bo", "terminal", core.RunStats{Score: 20, Ticks: 40})
	store.SaveRun("ana", "console", core.RunStats{Score: 30, Ticks: 40})

	runs, err := store.PlayerRuns("ana", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ana, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 30 {
		t.Errorf("Expected latest run first, got score %d", runs[0].Score)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveRun("ana", "terminal", core.RunStats{Score: 120, Ticks: 40})
	store.SaveRun("ana", "terminal", core.RunStats{Score: 240, Ticks: 40})

	best, _ = store.BestScore()
	if best != 240 {
		t.Errorf("Expected best score 240, got %d", best)
	}
}

func TestStoreRejectsEmptyRun(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("ana", "terminal", core.RunStats{}); err == nil {
		t.Error("Expected error for run without ticks")
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("Expected no runs stored, got %d", n)
	}
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("", "terminal", core.RunStats{Score: 10, Ticks: 1})
	runs, _ := store.TopRuns(1)
	if runs[0].Player != "anonymous" {
		t.Errorf("Expected anonymous player, got %q", runs[0].Player)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("ana", "terminal", core.RunStats{Score: 10, Ticks: 1})
	store.SaveRun("bo", "terminal", core.RunStats{Score: 20, Ticks: 1})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun("ana", "terminal", core.RunStats{Score: 999, Ticks: 4000, Seed: 5})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, _ := store2.BestScore()
	if best != 999 {
		t.Errorf("Expected persisted score 999, got %d", best)
	}
}
