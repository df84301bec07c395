package commands

import (
	"context"
	"fmt"

	"compass/internal/domain"
	"compass/internal/ports"
)

// SetGoalResult contains the result of a goal update
type SetGoalResult struct {
	Goal    domain.GoalState
	Message string
}

// SetGoalCommand replaces the goal slice and persists it. Empty fields are
// legitimate values (an anchor can be cleared), so nothing is validated here.
type SetGoalCommand struct {
	store ports.StateStore
	Goal  domain.GoalState
}

// NewSetGoalCommand creates a new SetGoalCommand
func NewSetGoalCommand(store ports.StateStore, goal domain.GoalState) *SetGoalCommand {
	return &SetGoalCommand{
		store: store,
		Goal:  goal,
	}
}

// Execute runs the goal update
func (c *SetGoalCommand) Execute(ctx context.Context) (*SetGoalResult, error) {
	c.store.SaveGoal(c.Goal)

	return &SetGoalResult{
		Goal:    c.Goal,
		Message: fmt.Sprintf("Goal saved (%d/3 anchors set)", c.Goal.AnchorCount()),
	}, nil
}

// SetCrisisResult contains the result of a crisis update
type SetCrisisResult struct {
	Crisis  domain.CrisisState
	Message string
}

// SetCrisisCommand replaces the crisis slice and persists it.
type SetCrisisCommand struct {
	store  ports.StateStore
	Crisis domain.CrisisState
}

// NewSetCrisisCommand creates a new SetCrisisCommand
func NewSetCrisisCommand(store ports.StateStore, crisis domain.CrisisState) *SetCrisisCommand {
	return &SetCrisisCommand{
		store:  store,
		Crisis: crisis,
	}
}

// Execute runs the crisis update
func (c *SetCrisisCommand) Execute(ctx context.Context) (*SetCrisisResult, error) {
	c.store.SaveCrisis(c.Crisis)

	return &SetCrisisResult{
		Crisis:  c.Crisis,
		Message: "Crisis plan saved",
	}, nil
}
