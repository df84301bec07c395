package application

import "compass/internal/domain"

// Re-export domain types for use by adapters
type (
	RadarState    = domain.RadarState
	RadarField    = domain.RadarField
	FogBand       = domain.FogBand
	GoalState     = domain.GoalState
	LogEntry      = domain.LogEntry
	CrisisState   = domain.CrisisState
	MissionScores = domain.MissionScores
)

const (
	FogOptimal      = domain.FogOptimal
	FogIntermediate = domain.FogIntermediate
	FogCritical     = domain.FogCritical
)

// ClassifyFog maps a fog value to its qualitative band
func ClassifyFog(fog int) FogBand {
	return domain.ClassifyFog(fog)
}
