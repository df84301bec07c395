package domain

// CrisisState holds the two freeform emergency anchors: who to call and what
// to read/do when things go sideways.
type CrisisState struct {
	SupportPerson string `json:"supportPerson"`
	Booster       string `json:"booster"`
}

// DefaultCrisis returns the first-run crisis slice: both anchors unset.
func DefaultCrisis() CrisisState {
	return CrisisState{}
}
