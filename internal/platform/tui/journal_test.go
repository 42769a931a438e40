package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/touch-breakout/internal/storage"
)

func updateJournal(t *testing.T, m JournalModel, msg tea.Msg) JournalModel {
	t.Helper()
	next, _ := m.Update(msg)
	jm, ok := next.(JournalModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected JournalModel", next)
	}
	return jm
}

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rec := storage.SessionRecord{
		ID:        "5f0c2a1e-0000-4000-8000-000000000001",
		Source:    "terminal",
		Rows:      9,
		Cols:      10,
		Lives:     3,
		StartedAt: time.Now(),
	}
	if err := store.BeginSession(rec); err != nil {
		t.Fatalf("BeginSession() error = %v", err)
	}
	events := []storage.EventRecord{
		{SessionID: rec.ID, Seq: 1, Tick: 119, Kind: storage.KindBrickDestroyed, Value: 0, Row: 8, Col: 8},
		{SessionID: rec.ID, Seq: 2, Tick: 119, Kind: storage.KindScoreChanged, Value: 1, Row: -1, Col: -1},
	}
	if err := store.AppendEvents(events); err != nil {
		t.Fatalf("AppendEvents() error = %v", err)
	}
	if err := store.EndSession(rec.ID, storage.OutcomeCleared, 1, 1); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	return store
}

func TestJournalWithoutStore(t *testing.T) {
	m := NewJournalModel(nil, 80, 24)

	if !strings.Contains(m.View(), "The journal is disabled.") {
		t.Error("View() should say the journal is disabled")
	}

	m = updateJournal(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.detail != "" {
		t.Error("enter without a store should stay in list mode")
	}
}

func TestJournalDrillDown(t *testing.T) {
	m := NewJournalModel(seededStore(t), 100, 30)

	if len(m.sessions) != 1 {
		t.Fatalf("sessions = %d, expected 1", len(m.sessions))
	}
	if m.stats == nil || m.stats.BoardsCleared != 1 {
		t.Errorf("stats = %+v, expected one cleared board", m.stats)
	}
	if !strings.Contains(m.View(), "cleared") {
		t.Error("View() should list the session outcome")
	}

	m = updateJournal(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.detail != m.sessions[0].ID {
		t.Fatalf("detail = %q, expected %q", m.detail, m.sessions[0].ID)
	}
	if len(m.events) != 2 {
		t.Fatalf("events = %d, expected 2", len(m.events))
	}
	view := m.View()
	if !strings.Contains(view, "JOURNAL - 5f0c2a1e") {
		t.Error("detail title should carry the short session id")
	}
	if !strings.Contains(view, "row 8 col 8") {
		t.Error("detail view should describe the destroyed brick")
	}

	m = updateJournal(t, m, runeKey('b'))
	if m.detail != "" || m.IsGoingBack() {
		t.Fatal("first back should return to the session list")
	}

	m = updateJournal(t, m, runeKey('b'))
	if !m.IsGoingBack() {
		t.Error("second back should leave the journal")
	}
}

func TestJournalQuit(t *testing.T) {
	m := updateJournal(t, NewJournalModel(nil, 80, 24), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestEventDetail(t *testing.T) {
	tests := []struct {
		ev   storage.EventRecord
		want string
	}{
		{storage.EventRecord{Kind: storage.KindBrickDestroyed, Row: 2, Col: 3}, "row 2 col 3"},
		{storage.EventRecord{Kind: storage.KindLifeLost, Value: 2}, "2 lives left"},
		{storage.EventRecord{Kind: storage.KindScoreChanged, Value: 7}, "score 7"},
	}

	for _, tc := range tests {
		if got := eventDetail(tc.ev); got != tc.want {
			t.Errorf("eventDetail(%s) = %q, expected %q", tc.ev.Kind, got, tc.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("5f0c2a1e-0000-4000"); got != "5f0c2a1e" {
		t.Errorf("shortID() = %q, expected %q", got, "5f0c2a1e")
	}
	if got := shortID("plain"); got != "plain" {
		t.Errorf("shortID() = %q, expected %q", got, "plain")
	}
}
