package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/domain"
)

// fakeStore is an in-memory StateStore for view tests.
type fakeStore struct {
	radar  domain.RadarState
	goal   domain.GoalState
	logs   []domain.LogEntry
	crisis domain.CrisisState
}

func (f *fakeStore) Open(string) error               { return nil }
func (f *fakeStore) Close() error                    { return nil }
func (f *fakeStore) LoadRadar() domain.RadarState    { return f.radar }
func (f *fakeStore) SaveRadar(r domain.RadarState)   { f.radar = r }
func (f *fakeStore) LoadGoal() domain.GoalState      { return f.goal }
func (f *fakeStore) SaveGoal(g domain.GoalState)     { f.goal = g }
func (f *fakeStore) LoadLogs() []domain.LogEntry     { return f.logs }
func (f *fakeStore) SaveLogs(e []domain.LogEntry)    { f.logs = e }
func (f *fakeStore) LoadCrisis() domain.CrisisState  { return f.crisis }
func (f *fakeStore) SaveCrisis(c domain.CrisisState) { f.crisis = c }

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRenderGaugeBounds(t *testing.T) {
	tests := []struct {
		value      int
		wantFilled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
	}

	for _, tt := range tests {
		gauge := RenderGauge(tt.value)
		if got := strings.Count(gauge, "█"); got != tt.wantFilled {
			t.Errorf("RenderGauge(%d) has %d filled cells, want %d", tt.value, got, tt.wantFilled)
		}
		if got := strings.Count(gauge, "█") + strings.Count(gauge, "░"); got != gaugeWidth {
			t.Errorf("RenderGauge(%d) has %d cells, want %d", tt.value, got, gaugeWidth)
		}
	}
}

func TestRadarAdjustPersists(t *testing.T) {
	store := &fakeStore{radar: domain.DefaultRadar()}
	m := NewRadarModel(store)

	// First metric selected; increase it once
	m.Update(keyRunes('l'))
	if store.radar.Inner != 51 {
		t.Errorf("inner = %d, want 51 persisted after adjust", store.radar.Inner)
	}

	// Clamp at the top
	store.radar.Inner = 100
	m.radar = store.radar
	m.Update(keyRunes('l'))
	if store.radar.Inner != 100 {
		t.Errorf("inner = %d, want clamped at 100", store.radar.Inner)
	}
}

func TestLogbookClearRequiresConfirmation(t *testing.T) {
	store := &fakeStore{logs: []domain.LogEntry{{ID: 1, Date: "Lun 1", Domain: "x"}}}
	m := NewLogbookModel(store)

	m.Update(keyRunes('x'))
	if m.mode != logbookConfirmClear {
		t.Fatalf("mode = %v, want confirm prompt", m.mode)
	}
	if len(store.logs) != 1 {
		t.Fatal("logs cleared before confirmation")
	}

	// n cancels
	m.Update(keyRunes('n'))
	if m.mode != logbookBrowse || len(store.logs) != 1 {
		t.Error("cancel did not keep the logs")
	}

	// y confirms
	m.Update(keyRunes('x'))
	m.Update(keyRunes('y'))
	if len(store.logs) != 0 {
		t.Errorf("logs = %d after confirmed clear, want 0", len(store.logs))
	}
}

func TestLogbookClearOnEmptyIsNoOp(t *testing.T) {
	store := &fakeStore{}
	m := NewLogbookModel(store)

	m.Update(keyRunes('x'))
	if m.mode != logbookBrowse {
		t.Error("clear prompt shown for an empty log")
	}
}

func TestLogbookAddEntry(t *testing.T) {
	store := &fakeStore{}
	m := NewLogbookModel(store)

	m.Update(keyRunes('a'))
	if !m.Editing() {
		t.Fatal("add mode should capture input")
	}

	m.input.SetValue("Ran 5k")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(store.logs) != 1 || store.logs[0].Domain != "Ran 5k" {
		t.Errorf("logs = %+v, want one entry with domain Ran 5k", store.logs)
	}
	if m.Editing() {
		t.Error("should leave add mode after a successful append")
	}
}

func TestLogbookEmptySubmitStaysInAddMode(t *testing.T) {
	store := &fakeStore{}
	m := NewLogbookModel(store)

	m.Update(keyRunes('a'))
	m.input.SetValue("   ")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(store.logs) != 0 {
		t.Errorf("whitespace submit stored %d entries", len(store.logs))
	}
	if !m.Editing() {
		t.Error("empty submit should stay in add mode")
	}
}

func TestGoalEditSaves(t *testing.T) {
	store := &fakeStore{}
	m := NewGoalModel(store)

	m.Update(keyRunes('e'))
	if !m.Editing() {
		t.Fatal("e should enter edit mode")
	}

	m.form.SetValue(goalFieldTitle, "Run a marathon")
	m.form.SetValue(goalFieldPhysical, "Morning run")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if store.goal.Title != "Run a marathon" {
		t.Errorf("title = %q", store.goal.Title)
	}
	if store.goal.CarbPhysical != "Morning run" {
		t.Errorf("physical anchor = %q", store.goal.CarbPhysical)
	}
	if m.Editing() {
		t.Error("should leave edit mode after save")
	}
}

func TestGoalEscDiscardsEdits(t *testing.T) {
	store := &fakeStore{goal: domain.GoalState{Title: "Original"}}
	m := NewGoalModel(store)

	m.Update(keyRunes('e'))
	m.form.SetValue(goalFieldTitle, "Changed")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if store.goal.Title != "Original" {
		t.Errorf("esc persisted edits: %q", store.goal.Title)
	}
	if m.form.Value(goalFieldTitle) != "Original" {
		t.Errorf("form kept discarded value: %q", m.form.Value(goalFieldTitle))
	}
}
