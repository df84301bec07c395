package commands

import (
	"context"
	"fmt"

	"compass/internal/application"
	"compass/internal/domain"
	"compass/internal/ports"
)

// SetRadarFieldResult contains the result of a radar update
type SetRadarFieldResult struct {
	Radar   domain.RadarState
	Message string
}

// SetRadarFieldCommand updates one radar metric and persists the slice.
// The value is clamped to [0,100] here, at the input surface.
type SetRadarFieldCommand struct {
	store ports.StateStore
	Field string
	Value int
}

// NewSetRadarFieldCommand creates a new SetRadarFieldCommand
func NewSetRadarFieldCommand(store ports.StateStore, field string, value int) *SetRadarFieldCommand {
	return &SetRadarFieldCommand{
		store: store,
		Field: field,
		Value: value,
	}
}

// Validate checks if the update is valid
func (c *SetRadarFieldCommand) Validate() error {
	if c.Field == "" {
		return &application.ValidationError{
			Field:   "field",
			Message: "field name is required",
		}
	}
	if _, ok := (domain.RadarState{}).Get(domain.RadarField(c.Field)); !ok {
		return &application.ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("unknown radar field: %s", c.Field),
		}
	}
	return nil
}

// Execute runs the radar update
func (c *SetRadarFieldCommand) Execute(ctx context.Context) (*SetRadarFieldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	radar := c.store.LoadRadar()
	value := domain.ClampLevel(c.Value)
	radar.Set(domain.RadarField(c.Field), value)
	c.store.SaveRadar(radar)

	return &SetRadarFieldResult{
		Radar:   radar,
		Message: fmt.Sprintf("Set %s to %d", c.Field, value),
	}, nil
}
