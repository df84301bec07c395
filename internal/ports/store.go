package ports

import "compass/internal/domain"

// Slice storage keys. Each slice is persisted independently under its own
// key; there is no cross-slice transaction and none is needed.
const (
	KeyRadar  = "radar"
	KeyGoal   = "goal"
	KeyLogs   = "logs"
	KeyCrisis = "crisis"
)

// StateStore provides durable access to the four state slices.
//
// Loads never fail upward: a missing or corrupt value degrades to the slice
// default and the failure is logged by the adapter. Saves likewise log and
// swallow write failures; the next mutation retries naturally. Within one
// session a Load observes the latest successful Save (single logical writer).
type StateStore interface {
	// Lifecycle
	Open(dataPath string) error
	Close() error

	LoadRadar() domain.RadarState
	SaveRadar(r domain.RadarState)

	LoadGoal() domain.GoalState
	SaveGoal(g domain.GoalState)

	LoadLogs() []domain.LogEntry
	SaveLogs(entries []domain.LogEntry)

	LoadCrisis() domain.CrisisState
	SaveCrisis(c domain.CrisisState)
}
