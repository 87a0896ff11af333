package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func beginner(won bool, d time.Duration) Result {
	return Result{DifficultyID: "beginner", Width: 9, Height: 9, Mines: 10, Won: won, Duration: d}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(beginner(true, 30*time.Second)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, ok, _ := store.BestTime("beginner"); !ok {
		t.Error("result lost after reopening the database")
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		beginner(true, 42*time.Second),
		beginner(false, 5*time.Second),
		beginner(true, 17*time.Second),
		beginner(true, 90*time.Second),
		{DifficultyID: "expert", Width: 30, Height: 16, Mines: 99, Won: true, Duration: time.Second},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes("beginner", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(best))
	}

	want := []time.Duration{17 * time.Second, 42 * time.Second, 90 * time.Second}
	for i, d := range want {
		if best[i].Duration != d {
			t.Errorf("best[%d].Duration = %v, want %v", i, best[i].Duration, d)
		}
		if !best[i].Won || best[i].DifficultyID != "beginner" || best[i].Mines != 10 {
			t.Errorf("best[%d] = %+v", i, best[i])
		}
		if best[i].RoundID == "" {
			t.Errorf("best[%d] has no round ID", i)
		}
	}

	limited, err := store.BestTimes("beginner", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 results with limit, got %d", len(limited))
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestTime("beginner"); err != nil || ok {
		t.Fatalf("BestTime() on empty db = %v, %v", ok, err)
	}

	store.SaveResult(beginner(false, time.Second))
	if _, ok, _ := store.BestTime("beginner"); ok {
		t.Error("a loss should not count as a best time")
	}

	store.SaveResult(beginner(true, 1500*time.Millisecond))
	d, ok, err := store.BestTime("beginner")
	if err != nil || !ok || d != 1500*time.Millisecond {
		t.Errorf("BestTime() = %v, %v, %v; want 1.5s", d, ok, err)
	}
}

func TestStoreResultByRound(t *testing.T) {
	store := openTestStore(t)

	r := beginner(true, 12*time.Second)
	r.RoundID = "6f1c6c3e-2a5e-4bb0-9d0b-0d3a8f0f2f11"
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	got, err := store.ResultByRound(r.RoundID)
	if err != nil {
		t.Fatalf("ResultByRound() failed: %v", err)
	}
	if got == nil || got.Duration != r.Duration || !got.Won {
		t.Errorf("ResultByRound() = %+v", got)
	}

	if _, err := store.SaveResult(r); err == nil {
		t.Error("duplicate round ID should be rejected")
	}

	missing, err := store.ResultByRound("nope")
	if err != nil || missing != nil {
		t.Errorf("ResultByRound(nope) = %+v, %v; want nil, nil", missing, err)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 5; i++ {
		store.SaveResult(beginner(i%2 == 0, time.Duration(i)*time.Second))
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}
	if recent[0].Duration != 5*time.Second || recent[2].Duration != 3*time.Second {
		t.Errorf("results not newest first: %v, %v", recent[0].Duration, recent[2].Duration)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("beginner")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Played != 0 || empty.WinRate() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(beginner(true, 10*time.Second))
	store.SaveResult(beginner(true, 20*time.Second))
	store.SaveResult(beginner(false, 3*time.Second))
	store.SaveResult(beginner(false, 4*time.Second))
	store.SaveResult(Result{DifficultyID: "expert", Width: 30, Height: 16, Mines: 99, Duration: time.Second})

	st, err := store.GetStats("beginner")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if st.Played != 4 || st.Won != 2 {
		t.Errorf("Played=%d Won=%d, want 4 and 2", st.Played, st.Won)
	}
	if st.BestTime != 10*time.Second || st.AvgWinTime != 15*time.Second {
		t.Errorf("BestTime=%v AvgWinTime=%v", st.BestTime, st.AvgWinTime)
	}
	if st.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", st.WinRate())
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllStats()
	if err != nil {
		t.Fatalf("GetAllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllStats() returned %d difficulties, want 2", len(all))
	}
	if ex := all["expert"]; ex.Played != 1 || ex.Won != 0 || ex.BestTime != 0 {
		t.Errorf("expert stats = %+v", ex)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(beginner(true, time.Second))
	store.SaveResult(Result{DifficultyID: "expert", Won: true, Duration: time.Second})

	if err := store.ClearResults("beginner"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	if best, _ := store.BestTimes("beginner", 10); len(best) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(best))
	}
	if best, _ := store.BestTimes("expert", 10); len(best) != 1 {
		t.Error("ClearResults removed another difficulty's results")
	}
}
