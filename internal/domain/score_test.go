package domain

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMasteryScorePureSignal(t *testing.T) {
	r := RadarState{Inner: 100, Peers: 0, Family: 0, Media: 0, Professors: 0, Fog: 0}

	if noise := ExternalNoise(r); noise != 0 {
		t.Fatalf("ExternalNoise = %v, want 0", noise)
	}
	if got := MasteryScore(r); !almostEqual(got, 10.0) {
		t.Errorf("MasteryScore = %v, want 10.0", got)
	}
}

func TestMasteryScoreWeights(t *testing.T) {
	tests := []struct {
		name  string
		radar RadarState
		want  float64
	}{
		{
			name:  "all midpoint",
			radar: DefaultRadar(),
			want:  (50*0.5 + 50*0.3 + 50*0.2) / 10,
		},
		{
			name:  "all noise",
			radar: RadarState{Inner: 0, Peers: 100, Family: 100, Media: 100, Professors: 100, Fog: 100},
			want:  0,
		},
		{
			name:  "fog only",
			radar: RadarState{Inner: 0, Fog: 100},
			want:  (100 * 0.2) / 10, // noise complement still contributes
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasteryScore(tt.radar); !almostEqual(got, tt.want) {
				t.Errorf("MasteryScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImpactScoreComplete(t *testing.T) {
	g := GoalState{
		Title:         "Run a marathon",
		CarbCognitive: "Read 20 pages",
		CarbPhysical:  "Morning run",
		CarbRecovery:  "Sleep by 23:00",
	}

	if got := ImpactScore(g, 10); !almostEqual(got, 10.0) {
		t.Errorf("ImpactScore = %v, want 10.0", got)
	}
}

func TestImpactScoreLogSaturation(t *testing.T) {
	g := GoalState{}

	at10 := ImpactScore(g, 10)
	at1000 := ImpactScore(g, 1000)
	if !almostEqual(at10, at1000) {
		t.Errorf("log term did not saturate: ImpactScore at 10 = %v, at 1000 = %v", at10, at1000)
	}
	if !almostEqual(at10, 4.0) {
		t.Errorf("saturated log term = %v, want 4.0", at10)
	}
}

func TestImpactScoreComponents(t *testing.T) {
	tests := []struct {
		name     string
		goal     GoalState
		logCount int
		want     float64
	}{
		{
			name:     "nothing configured",
			goal:     GoalState{},
			logCount: 0,
			want:     0,
		},
		{
			name:     "title only",
			goal:     GoalState{Title: "Ship it"},
			logCount: 0,
			want:     2.0,
		},
		{
			name:     "short title does not count",
			goal:     GoalState{Title: "ok"},
			logCount: 0,
			want:     0,
		},
		{
			name:     "one anchor",
			goal:     GoalState{CarbPhysical: "Morning run"},
			logCount: 0,
			want:     10.0 / 3 * 0.4,
		},
		{
			name:     "whitespace anchor does not count",
			goal:     GoalState{CarbPhysical: "    "},
			logCount: 0,
			want:     0,
		},
		{
			name:     "five logs",
			goal:     GoalState{},
			logCount: 5,
			want:     2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImpactScore(tt.goal, tt.logCount); !almostEqual(got, tt.want) {
				t.Errorf("ImpactScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeScoresDeterministic(t *testing.T) {
	r := RadarState{Inner: 73, Peers: 12, Family: 34, Media: 56, Professors: 78, Fog: 41}
	g := GoalState{Title: "Finish thesis", CarbCognitive: "Pomodoros"}

	first := ComputeScores(r, g, 7)
	for i := 0; i < 5; i++ {
		if got := ComputeScores(r, g, 7); got != first {
			t.Fatalf("scores not deterministic: %v vs %v", got, first)
		}
	}
}

func TestAuthorized(t *testing.T) {
	tests := []struct {
		name   string
		scores MissionScores
		want   bool
	}{
		{"both maxed", MissionScores{Mastery: 10, Impact: 10}, true},
		{"both just above", MissionScores{Mastery: 7.1, Impact: 7.1}, true},
		{"mastery at threshold", MissionScores{Mastery: 7.0, Impact: 10}, false},
		{"impact at threshold", MissionScores{Mastery: 10, Impact: 7.0}, false},
		{"both low", MissionScores{Mastery: 2, Impact: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Authorized(); got != tt.want {
				t.Errorf("Authorized() = %v, want %v", got, tt.want)
			}
		})
	}
}
