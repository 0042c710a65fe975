package storage

import (
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Difficulty: "normal", Score: 100, Duration: 40},
		{Difficulty: "normal", Score: 50, Duration: 20},
		{Difficulty: "normal", Score: 200, Duration: 70},
		{Difficulty: "hard", Score: 500, Duration: 90},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name       string
		difficulty string
		limit      int
		expected   []int
	}{
		{"normal only", "normal", 10, []int{200, 100, 50}},
		{"limit", "normal", 2, []int{200, 100}},
		{"all difficulties", "", 10, []int{500, 200, 100, 50}},
		{"unknown difficulty", "easy", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.TopRuns(tc.difficulty, tc.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != len(tc.expected) {
				t.Fatalf("Expected %d runs, got %d", len(tc.expected), len(runs))
			}
			for i, r := range runs {
				if r.Score != tc.expected[i] {
					t.Errorf("run %d: expected score %d, got %d", i, tc.expected[i], r.Score)
				}
			}
		})
	}
}

func TestStoreRunFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Difficulty: "easy", Score: 42, Duration: 17})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("easy", 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("TopRuns() = %v, %v", runs, err)
	}
	r := runs[0]
	if r.ID != id || r.Difficulty != "easy" || r.Score != 42 || r.Duration != 17 {
		t.Errorf("unexpected run %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Difficulty: "normal", Score: 100})
	store.SaveRun(RunRecord{Difficulty: "hard", Score: 300})
	store.SaveHighScore(300)

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("normal", 10); len(runs) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("hard", 10); len(runs) != 1 {
		t.Error("Hard runs should not be affected by clearing normal")
	}
	if high, _ := store.HighScore(); high != 300 {
		t.Errorf("High score should survive clearing runs, got %d", high)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	if runs, _ := store.TopRuns("", 10); len(runs) != 0 {
		t.Errorf("Expected empty history, got %d runs", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, score := range []int{100, 300} {
		if err := store.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore() failed: %v", err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreHighScoreOnlyRises(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 100, 0} {
		if err := store.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
		}
	}
	if high, _ := store.HighScore(); high != 300 {
		t.Errorf("Lower scores must not replace the best, got %d", high)
	}

	store.SetSetting(KeyHighScore, "not-a-number")
	if err := store.SaveHighScore(40); err != nil {
		t.Fatalf("SaveHighScore() over garbage failed: %v", err)
	}
	if high, _ := store.HighScore(); high != 40 {
		t.Errorf("Expected 40 to replace a garbage value, got %d", high)
	}
}

func TestStoreHighScoreIgnoresGarbage(t *testing.T) {
	store := openTestStore(t)

	store.SetSetting(KeyHighScore, "not-a-number")
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Garbage high score should read as 0, got %d", high)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("missing"); err != nil || ok {
		t.Errorf("Setting(missing) = ok %v, err %v", ok, err)
	}

	if err := store.SetDifficulty("hard"); err != nil {
		t.Fatalf("SetDifficulty() failed: %v", err)
	}
	if err := store.SetDifficulty("easy"); err != nil {
		t.Fatalf("SetDifficulty() overwrite failed: %v", err)
	}

	label, err := store.Difficulty()
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}
	if label != "easy" {
		t.Errorf("Expected difficulty easy, got %q", label)
	}
}

func TestStoreSettingsPersistAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveHighScore(777)
	store.SetDifficulty("hard")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 777 {
		t.Errorf("Expected persisted high score 777, got %d", high)
	}
	if label, _ := store.Difficulty(); label != "hard" {
		t.Errorf("Expected persisted difficulty hard, got %q", label)
	}
}

func TestStoreStatsByDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Difficulty: "normal", Score: 100, Duration: 30})
	store.SaveRun(RunRecord{Difficulty: "normal", Score: 300, Duration: 50})
	store.SaveRun(RunRecord{Difficulty: "hard", Score: 40, Duration: 10})

	stats, err := store.StatsByDifficulty()
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(stats))
	}

	normal := stats["normal"]
	if normal == nil {
		t.Fatal("missing normal stats")
	}
	if normal.Runs != 2 || normal.Best != 300 || normal.AvgScore != 200 || normal.TotalTime != 80 {
		t.Errorf("unexpected normal stats %+v", normal)
	}
	if stats["hard"].Best != 40 {
		t.Errorf("Expected hard best 40, got %d", stats["hard"].Best)
	}
}
