package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"compass/internal/domain"
)

// memStore is an in-memory StateStore for command tests.
type memStore struct {
	radar  domain.RadarState
	goal   domain.GoalState
	logs   []domain.LogEntry
	crisis domain.CrisisState
}

func newMemStore() *memStore {
	return &memStore{radar: domain.DefaultRadar()}
}

func (m *memStore) Open(string) error { return nil }
func (m *memStore) Close() error      { return nil }

func (m *memStore) LoadRadar() domain.RadarState   { return m.radar }
func (m *memStore) SaveRadar(r domain.RadarState)  { m.radar = r }
func (m *memStore) LoadGoal() domain.GoalState     { return m.goal }
func (m *memStore) SaveGoal(g domain.GoalState)    { m.goal = g }
func (m *memStore) LoadLogs() []domain.LogEntry    { return m.logs }
func (m *memStore) SaveLogs(e []domain.LogEntry)   { m.logs = e }
func (m *memStore) LoadCrisis() domain.CrisisState { return m.crisis }
func (m *memStore) SaveCrisis(c domain.CrisisState) {
	m.crisis = c
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestSetRadarFieldCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid field",
			field:   "inner",
			wantErr: false,
		},
		{
			name:    "valid fog field",
			field:   "fog",
			wantErr: false,
		},
		{
			name:    "empty field",
			field:   "",
			wantErr: true,
			errMsg:  "field name is required",
		},
		{
			name:    "unknown field",
			field:   "volume",
			wantErr: true,
			errMsg:  "unknown radar field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SetRadarFieldCommand{Field: tt.field, Value: 50}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSetRadarFieldCommand_ClampsValue(t *testing.T) {
	store := newMemStore()

	result, err := NewSetRadarFieldCommand(store, "fog", 140).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Radar.Fog != 100 {
		t.Errorf("fog = %d, want clamped 100", result.Radar.Fog)
	}
	if store.radar.Fog != 100 {
		t.Errorf("persisted fog = %d, want 100", store.radar.Fog)
	}
}

func TestSetRadarFieldCommand_UpdatesSingleField(t *testing.T) {
	store := newMemStore()

	_, err := NewSetRadarFieldCommand(store, "peers", 20).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.radar.Peers != 20 {
		t.Errorf("peers = %d, want 20", store.radar.Peers)
	}
	if store.radar.Inner != 50 {
		t.Errorf("inner changed to %d, other fields must stay put", store.radar.Inner)
	}
}

func TestAppendLogCommand(t *testing.T) {
	store := newMemStore()

	cmd := NewAppendLogCommand(store, "Ran 5k")
	cmd.Now = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Added {
		t.Fatal("append not recorded")
	}
	if result.Count != 1 || len(store.logs) != 1 {
		t.Errorf("count = %d, store logs = %d, want 1", result.Count, len(store.logs))
	}
	if result.Entry.Domain != "Ran 5k" || result.Entry.Date != "Lun 1" {
		t.Errorf("entry = %+v", result.Entry)
	}
}

func TestAppendLogCommand_WhitespaceNoOp(t *testing.T) {
	store := newMemStore()
	store.logs = []domain.LogEntry{{ID: 1, Date: "Lun 1", Domain: "Existing"}}

	result, err := NewAppendLogCommand(store, "   ").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Added {
		t.Error("whitespace append reported as added")
	}
	if len(store.logs) != 1 {
		t.Errorf("store logs = %d, want 1 (unchanged)", len(store.logs))
	}
}

func TestClearLogsCommand(t *testing.T) {
	store := newMemStore()
	store.logs = []domain.LogEntry{
		{ID: 1, Date: "Lun 1", Domain: "a"},
		{ID: 2, Date: "Mar 2", Domain: "b"},
	}

	result, err := NewClearLogsCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Removed != 2 {
		t.Errorf("removed = %d, want 2", result.Removed)
	}
	if len(store.logs) != 0 {
		t.Errorf("store logs = %d, want 0", len(store.logs))
	}

	// Clearing again is a no-op
	result, err = NewClearLogsCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Removed != 0 {
		t.Errorf("second clear removed = %d, want 0", result.Removed)
	}
}

func TestMissionReportCommand(t *testing.T) {
	store := newMemStore()
	store.radar = domain.RadarState{Inner: 100, Peers: 0, Family: 0, Media: 0, Professors: 0, Fog: 0}
	store.goal = domain.GoalState{
		Title:         "Run a marathon",
		CarbCognitive: "Read 20 pages",
		CarbPhysical:  "Morning run",
		CarbRecovery:  "Sleep by 23:00",
	}
	for i := 0; i < 10; i++ {
		store.logs = append(store.logs, domain.LogEntry{ID: int64(i), Date: "Lun 1", Domain: "x"})
	}

	report, err := NewMissionReportCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scores.Mastery != 10.0 {
		t.Errorf("mastery = %v, want 10.0", report.Scores.Mastery)
	}
	if report.Scores.Impact != 10.0 {
		t.Errorf("impact = %v, want 10.0", report.Scores.Impact)
	}
	if !report.Authorized {
		t.Error("authorization signal should be true at 10/10")
	}
	if report.Band != domain.FogOptimal {
		t.Errorf("band = %v, want OPTIMAL", report.Band)
	}
	if !contains(report.Summary(), "GRANTED") {
		t.Errorf("summary missing authorization line:\n%s", report.Summary())
	}
}

func TestMissionReportCommand_NotAuthorized(t *testing.T) {
	store := newMemStore()

	report, err := NewMissionReportCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Authorized {
		t.Error("defaults must not authorize")
	}
}
