package commands

import (
	"context"
	"fmt"
	"strings"

	"compass/internal/domain"
	"compass/internal/ports"
)

// MissionReport is the derived view of the whole dashboard: both score axes,
// the fog band, and the authorization signal. Nothing in it is persisted.
type MissionReport struct {
	Radar      domain.RadarState
	Goal       domain.GoalState
	LogCount   int
	Noise      float64
	Band       domain.FogBand
	Scores     domain.MissionScores
	Authorized bool
}

// Summary renders the report as plain text, for the CLI, MCP tools, and
// clipboard export.
func (r *MissionReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mastery (X): %.1f / 10\n", r.Scores.Mastery)
	fmt.Fprintf(&b, "Impact  (Y): %.1f / 10\n", r.Scores.Impact)
	fmt.Fprintf(&b, "Fog: %d (%s)\n", r.Radar.Fog, r.Band)
	fmt.Fprintf(&b, "External noise: %.1f\n", r.Noise)
	fmt.Fprintf(&b, "Logged entries: %d\n", r.LogCount)
	if r.Authorized {
		b.WriteString("Authorization: GRANTED\n")
	} else {
		b.WriteString("Authorization: not yet\n")
	}
	return b.String()
}

// MissionReportCommand recomputes the derived scores from the current state.
// Cheap enough to run on every read; it never caches.
type MissionReportCommand struct {
	store ports.StateStore
}

// NewMissionReportCommand creates a new MissionReportCommand
func NewMissionReportCommand(store ports.StateStore) *MissionReportCommand {
	return &MissionReportCommand{store: store}
}

// Execute computes the report
func (c *MissionReportCommand) Execute(ctx context.Context) (*MissionReport, error) {
	radar := c.store.LoadRadar()
	goal := c.store.LoadGoal()
	logs := c.store.LoadLogs()

	scores := domain.ComputeScores(radar, goal, len(logs))

	return &MissionReport{
		Radar:      radar,
		Goal:       goal,
		LogCount:   len(logs),
		Noise:      domain.ExternalNoise(radar),
		Band:       domain.ClassifyFog(radar.Fog),
		Scores:     scores,
		Authorized: scores.Authorized(),
	}, nil
}
