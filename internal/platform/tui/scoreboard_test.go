package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bastczuak/flippy/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsScores(t *testing.T) {
	store := newTestStore(t)
	store.SaveScore("mira", 12)
	store.SaveScore("otto", 7)

	m := NewScoreboardModel(store, "mira", 80, 24)

	if len(m.scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(m.scores))
	}
	if m.playerBest != 12 {
		t.Errorf("expected mira's best to be 12, got %d", m.playerBest)
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 table rows, got %d", len(rows))
	}
	if rows[0][1] != "mira" || rows[0][2] != "12" {
		t.Errorf("expected mira's 12 on top, got %v", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Error("expected the title in the view")
	}
	if !strings.Contains(view, "mira's best: 12") {
		t.Error("expected the personal best line in the view")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)

	if len(m.scores) != 0 {
		t.Errorf("expected no scores without a store, got %d", len(m.scores))
	}
	if !strings.Contains(m.View(), "No flights recorded yet") {
		t.Error("expected the empty-board message")
	}
}

func TestScoreboardQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewScoreboardModel(nil, "", 60, 20)
		updated, cmd := m.Update(msg)
		m = updated.(ScoreboardModel)

		if !m.IsQuitting() {
			t.Errorf("expected %q to close the scoreboard", msg.String())
		}
		if cmd == nil {
			t.Errorf("expected a quit command for %q", msg.String())
		}
		if m.View() != "" {
			t.Error("expected an empty view while quitting")
		}
	}
}

func TestScoreboardResizeRebuildsTable(t *testing.T) {
	store := newTestStore(t)
	store.SaveScore("mira", 3)

	m := NewScoreboardModel(store, "", 80, 24)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = updated.(ScoreboardModel)

	if m.width != 40 || m.height != 12 {
		t.Errorf("expected the board to track the new size, got %dx%d", m.width, m.height)
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("expected the rows to survive the resize, got %d", len(m.table.Rows()))
	}
}
