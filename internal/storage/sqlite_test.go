package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRecording(blockfall.DefaultConfig(), blockfall.Journal{blockfall.CommandTick}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	recs, err := store.Recordings(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Errorf("Expected 1 recording after reopen, got %d", len(recs))
	}
}

func TestSaveAndLoadRecording(t *testing.T) {
	store := openTestStore(t)

	cfg := blockfall.Config{Rows: 16, Cols: 8, PointsPerLine: 50, Seed: 987}
	journal := blockfall.Journal{blockfall.CommandTick, blockfall.CommandLeft, blockfall.CommandRotate, blockfall.CommandDrop}

	id, err := store.SaveRecording(cfg, journal)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	rec, err := store.Recording(id)
	if err != nil {
		t.Fatalf("Recording() failed: %v", err)
	}
	if rec.ID != id {
		t.Errorf("ID = %d, expected %d", rec.ID, id)
	}
	if rec.Config() != cfg {
		t.Errorf("Config() = %+v, expected %+v", rec.Config(), cfg)
	}
	if rec.Journal != "TLUD" {
		t.Errorf("Journal = %q, expected TLUD", rec.Journal)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRecordingsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 5; seed++ {
		cfg := blockfall.DefaultConfig()
		cfg.Seed = seed
		if _, err := store.SaveRecording(cfg, nil); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := store.Recordings(3)
	if err != nil {
		t.Fatalf("Recordings() failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recordings, got %d", len(recs))
	}
	for i, want := range []int64{5, 4, 3} {
		if recs[i].Seed != want {
			t.Errorf("recs[%d].Seed = %d, expected %d", i, recs[i].Seed, want)
		}
	}
}

func TestRecordingNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Recording(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Recording(42) error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteRecording(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRecording(42) error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteAndClear(t *testing.T) {
	store := openTestStore(t)

	id1, _ := store.SaveRecording(blockfall.DefaultConfig(), nil)
	_, _ = store.SaveRecording(blockfall.DefaultConfig(), nil)

	if err := store.DeleteRecording(id1); err != nil {
		t.Fatalf("DeleteRecording() failed: %v", err)
	}
	recs, _ := store.Recordings(10)
	if len(recs) != 1 {
		t.Errorf("Expected 1 recording after delete, got %d", len(recs))
	}

	if err := store.ClearRecordings(); err != nil {
		t.Fatalf("ClearRecordings() failed: %v", err)
	}
	recs, _ = store.Recordings(10)
	if len(recs) != 0 {
		t.Errorf("Expected 0 recordings after clear, got %d", len(recs))
	}
}

func TestReplayFromStore(t *testing.T) {
	store := openTestStore(t)

	cfg := blockfall.DefaultConfig()
	cfg.Seed = 31337
	g := blockfall.New(cfg)
	var journal blockfall.Journal
	for !g.Over() {
		cmd := blockfall.CommandTick
		if len(journal)%4 == 1 {
			cmd = blockfall.CommandRight
		}
		g.Apply(cmd)
		journal = append(journal, cmd)
	}

	id, err := store.SaveRecording(g.Config(), journal)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := store.Recording(id)
	if err != nil {
		t.Fatal(err)
	}

	replayed, err := rec.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Snapshot() != g.Snapshot() {
		t.Errorf("replay diverged:\n%+v\n%+v", replayed.Snapshot(), g.Snapshot())
	}
}

func TestReplayRejectsCorruptJournal(t *testing.T) {
	rec := Recording{ID: 7, Rows: 20, Cols: 10, PointsPerLine: 100, Journal: "TT!"}
	if _, err := rec.Replay(); !errors.Is(err, blockfall.ErrBadJournal) {
		t.Errorf("Replay() error = %v, expected ErrBadJournal", err)
	}
}
