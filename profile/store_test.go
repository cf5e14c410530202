package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/puzzlepath/system"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "profile.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "profile.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file was not created: %v", err)
	}
}

func TestSaveResultKeepsBest(t *testing.T) {
	store := openStore(t)

	cases := []struct {
		name     string
		res      system.Result
		wantBest bool
		best     int
		bestTime float64
	}{
		{"first", system.Result{LevelName: "l1", Score: 600, TimeSpent: 9, Completed: true}, true, 600, 9},
		{"lower", system.Result{LevelName: "l1", Score: 450, TimeSpent: 3, Completed: true}, false, 600, 9},
		{"equal", system.Result{LevelName: "l1", Score: 600, TimeSpent: 2, Completed: true}, false, 600, 9},
		{"failed", system.Result{LevelName: "l1", Score: 5000, TimeSpent: 1, Completed: false}, false, 600, 9},
		{"higher", system.Result{LevelName: "l1", Score: 1050, TimeSpent: 4, Completed: true, ParMet: true}, true, 1050, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, newBest, err := store.SaveResult(c.res)
			if err != nil {
				t.Fatalf("SaveResult() failed: %v", err)
			}
			if _, err := uuid.Parse(id); err != nil {
				t.Fatalf("run id %q is not a UUID: %v", id, err)
			}
			if newBest != c.wantBest {
				t.Fatalf("newBest = %v, want %v", newBest, c.wantBest)
			}
			p, err := store.Progress("l1")
			if err != nil {
				t.Fatalf("Progress() failed: %v", err)
			}
			if p == nil || p.BestScore != c.best || p.BestTime != c.bestTime {
				t.Fatalf("progress = %+v, want best %d in %v", p, c.best, c.bestTime)
			}
		})
	}

	p, err := store.Progress("l1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Runs != len(cases) {
		t.Fatalf("expected %d runs, got %d", len(cases), p.Runs)
	}
}

func TestProgressUnknownLevel(t *testing.T) {
	store := openStore(t)
	p, err := store.Progress("never")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no progress, got %+v", p)
	}
	if _, _, err := store.SaveResult(system.Result{LevelName: "never", Score: 10}); err != nil {
		t.Fatal(err)
	}
	if p, _ := store.Progress("never"); p != nil {
		t.Fatalf("an incomplete run must not create progress: %+v", p)
	}
}

func TestTopRunsOrder(t *testing.T) {
	store := openStore(t)
	for _, r := range []system.Result{
		{LevelName: "l", Score: 100, TimeSpent: 5},
		{LevelName: "l", Score: 300, TimeSpent: 7, Completed: true},
		{LevelName: "l", Score: 300, TimeSpent: 6, Completed: true},
		{LevelName: "other", Score: 900},
	} {
		if _, _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopRuns("l", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 300 || runs[0].TimeSpent != 6 || runs[2].Score != 100 {
		t.Fatalf("unexpected order: %+v", runs)
	}
	if !runs[0].Completed || runs[2].Completed {
		t.Fatalf("completed flag not round-tripped: %+v", runs)
	}

	if err := store.ClearLevel("l"); err != nil {
		t.Fatal(err)
	}
	runs, err = store.TopRuns("l", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs after clear, got %d", len(runs))
	}
}
