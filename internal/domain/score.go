package domain

// Scoring weights. Product tuning constants; their exact values are
// observable behavior, do not adjust.
const (
	masteryInnerWeight = 0.5
	masteryFogWeight   = 0.3
	masteryNoiseWeight = 0.2

	impactAnchorWeight = 0.4
	impactGoalWeight   = 0.2
	impactLogWeight    = 0.4

	logSaturation = 10

	authThreshold = 7.0
)

// MissionScores is the derived 2-axis position: mastery on X, impact on Y.
// Both axes run 0-10. Recomputed from current state on every read; nothing
// here is persisted.
type MissionScores struct {
	Mastery float64
	Impact  float64
}

// Authorized reports whether both axes clear the fixed threshold. Purely
// presentational, never stored.
func (s MissionScores) Authorized() bool {
	return s.Mastery > authThreshold && s.Impact > authThreshold
}

// ExternalNoise is the mean of the four outside influence sources, in [0,100].
func ExternalNoise(r RadarState) float64 {
	return float64(r.Peers+r.Media+r.Family+r.Professors) / 4
}

// MasteryScore blends self-voice with the complements of fog and external
// noise, scaled from the 0-100 weighted sum down to 0-10.
func MasteryScore(r RadarState) float64 {
	noise := ExternalNoise(r)
	sum := float64(r.Inner)*masteryInnerWeight +
		float64(100-r.Fog)*masteryFogWeight +
		(100-noise)*masteryNoiseWeight
	return sum / 10
}

// ImpactScore blends habit-anchor completeness, goal presence, and logged
// progress. The log term saturates at logSaturation entries: logging more
// never raises it further.
func ImpactScore(g GoalState, logCount int) float64 {
	goalSet := 0.0
	if g.TitleSet() {
		goalSet = 1
	}
	capped := logCount
	if capped > logSaturation {
		capped = logSaturation
	}
	return (float64(g.AnchorCount())/3)*10*impactAnchorWeight +
		goalSet*10*impactGoalWeight +
		(float64(capped)/logSaturation)*10*impactLogWeight
}

// ComputeScores evaluates both axes from the current state.
func ComputeScores(r RadarState, g GoalState, logCount int) MissionScores {
	return MissionScores{
		Mastery: MasteryScore(r),
		Impact:  ImpactScore(g, logCount),
	}
}
