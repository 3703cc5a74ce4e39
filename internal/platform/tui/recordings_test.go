package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func seedRecordings(t *testing.T, n int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for i := range n {
		cfg := blockfall.Config{Rows: 6, Cols: 10, PointsPerLine: 100, Seed: int64(i + 1)}
		g := blockfall.New(cfg)
		var j blockfall.Journal
		for !g.Over() {
			g.Apply(blockfall.CommandTick)
			j = append(j, blockfall.CommandTick)
		}
		if _, err := store.SaveRecording(cfg, j); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestRecordingsModelLoadsAndReplays(t *testing.T) {
	store := seedRecordings(t, 3)
	m := NewRecordingsModel(store, classicTheme(t), 100, 30)

	if len(m.items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(m.items))
	}
	for _, it := range m.items {
		if it.err != nil {
			t.Errorf("recording %d: %v", it.rec.ID, it.err)
		}
		if !it.frame.Over() {
			t.Errorf("recording %d should replay to game over", it.rec.ID)
		}
	}

	view := m.View()
	if !strings.Contains(view, "RECORDINGS") || !strings.Contains(view, "#3") {
		t.Errorf("unexpected view:\n%s", view)
	}
	if !strings.Contains(view, "GAME OVER") {
		t.Error("preview should show the final board")
	}
}

func TestRecordingsModelDelete(t *testing.T) {
	store := seedRecordings(t, 2)
	m := NewRecordingsModel(store, classicTheme(t), 100, 30)

	next, _ := m.Update(runeKey('x'))
	m = next.(RecordingsModel)
	if len(m.items) != 1 {
		t.Fatalf("expected 1 item after delete, got %d", len(m.items))
	}

	recs, err := store.Recordings(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != m.items[0].rec.ID {
		t.Errorf("store and model disagree: %+v", recs)
	}
}

func TestRecordingsModelEmpty(t *testing.T) {
	m := NewRecordingsModel(nil, classicTheme(t), 80, 24)
	if !strings.Contains(m.View(), "No recordings yet") {
		t.Error("expected empty message")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
}
