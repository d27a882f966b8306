package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestRunsModelListsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for _, seed := range []int64{1, 2} {
		if _, err := store.SaveRun(storage.RunEntry{GameID: "2048", Seed: seed}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewRunsModel(Env{Store: store}, 120, 40)

	selected := m.Selected()
	if selected == nil {
		t.Fatal("Selected() = nil, want newest run")
	}
	if selected.Seed != 2 {
		t.Errorf("selected seed = %d, want 2", selected.Seed)
	}

	view := m.View()
	if !strings.Contains(view, "Run "+shortID(selected.RunID)) {
		t.Errorf("wide view should preview the selected run:\n%s", view)
	}
}

func TestRunsModelDelete(t *testing.T) {
	store := openTestStore(t)
	for _, seed := range []int64{1, 2} {
		if _, err := store.SaveRun(storage.RunEntry{GameID: "2048", Seed: seed}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewRunsModel(Env{Store: store}, 120, 40)
	updated, _ := m.Update(runeKey('d'))
	m = updated.(RunsModel)

	if len(m.runs) != 1 {
		t.Fatalf("%d runs after delete, want 1", len(m.runs))
	}
	if m.runs[0].Seed != 1 {
		t.Errorf("remaining run seed = %d, want 1", m.runs[0].Seed)
	}
}

func TestRunsModelEmptyAndUnavailable(t *testing.T) {
	empty := NewRunsModel(Env{Store: openTestStore(t)}, 80, 24)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty journal message missing")
	}
	if empty.Selected() != nil {
		t.Error("Selected() should be nil without runs")
	}

	noStore := NewRunsModel(Env{}, 80, 24)
	if !strings.Contains(noStore.View(), "unavailable") {
		t.Error("missing store message missing")
	}
	// Deleting without a store is a no-op
	updated, _ := noStore.Update(runeKey('d'))
	if updated.(RunsModel).Selected() != nil {
		t.Error("unexpected selection")
	}
}

func TestRunsModelBackAndQuit(t *testing.T) {
	m := NewRunsModel(Env{}, 80, 24)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !updated.(RunsModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	updated, _ = m.Update(runeKey('q'))
	if !updated.(RunsModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"); got != "1b4e28ba" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("plain"); got != "plain" {
		t.Errorf("shortID = %q", got)
	}
}
