package domain

import "strings"

// GoalState holds the single configured objective and its three habit anchors
// (the "carbs": cognitive, physical, recovery fuel for the goal). Emptiness is
// meaningful: an empty anchor is simply not configured yet.
type GoalState struct {
	Title         string `json:"title"`
	Date          string `json:"date"`
	CarbCognitive string `json:"carb_cognitive"`
	CarbPhysical  string `json:"carb_physical"`
	CarbRecovery  string `json:"carb_recovery"`
}

// DefaultGoal returns the first-run goal: nothing configured.
func DefaultGoal() GoalState {
	return GoalState{}
}

// Anchors returns the three habit anchors in fixed order.
func (g GoalState) Anchors() [3]string {
	return [3]string{g.CarbCognitive, g.CarbPhysical, g.CarbRecovery}
}

// AnchorCount counts the habit anchors that are actually filled in
// (more than two characters after trimming).
func (g GoalState) AnchorCount() int {
	count := 0
	for _, a := range g.Anchors() {
		if len(strings.TrimSpace(a)) > 2 {
			count++
		}
	}
	return count
}

// TitleSet reports whether the objective itself has been defined.
func (g GoalState) TitleSet() bool {
	return len(g.Title) > 2
}
