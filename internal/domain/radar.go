package domain

// RadarState is the signal/noise self-assessment: five influence sources plus
// a separate perceived-clarity metric (fog). All values live in [0,100] and
// are clamped by the input surface, not re-checked here.
type RadarState struct {
	Inner      int `json:"inner"`
	Peers      int `json:"peers"`
	Family     int `json:"family"`
	Media      int `json:"media"`
	Professors int `json:"professors"`
	Fog        int `json:"fog"`
}

// DefaultRadar returns the first-run radar: every source at the neutral midpoint.
func DefaultRadar() RadarState {
	return RadarState{
		Inner:      50,
		Peers:      50,
		Family:     50,
		Media:      50,
		Professors: 50,
		Fog:        50,
	}
}

// RadarField names one radar metric for single-field updates.
type RadarField string

const (
	RadarInner      RadarField = "inner"
	RadarPeers      RadarField = "peers"
	RadarFamily     RadarField = "family"
	RadarMedia      RadarField = "media"
	RadarProfessors RadarField = "professors"
	RadarFog        RadarField = "fog"
)

// RadarFields lists all fields in display order.
var RadarFields = []RadarField{
	RadarInner,
	RadarPeers,
	RadarFamily,
	RadarMedia,
	RadarProfessors,
	RadarFog,
}

// Get returns the value of a field. The second return is false for an
// unknown field name.
func (r RadarState) Get(f RadarField) (int, bool) {
	switch f {
	case RadarInner:
		return r.Inner, true
	case RadarPeers:
		return r.Peers, true
	case RadarFamily:
		return r.Family, true
	case RadarMedia:
		return r.Media, true
	case RadarProfessors:
		return r.Professors, true
	case RadarFog:
		return r.Fog, true
	default:
		return 0, false
	}
}

// Set updates one field. Returns false for an unknown field name.
func (r *RadarState) Set(f RadarField, value int) bool {
	switch f {
	case RadarInner:
		r.Inner = value
	case RadarPeers:
		r.Peers = value
	case RadarFamily:
		r.Family = value
	case RadarMedia:
		r.Media = value
	case RadarProfessors:
		r.Professors = value
	case RadarFog:
		r.Fog = value
	default:
		return false
	}
	return true
}

// ClampLevel bounds a raw value to the [0,100] range used by every radar field.
func ClampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FogBand is the qualitative classification of the fog metric.
type FogBand int

const (
	FogOptimal FogBand = iota
	FogIntermediate
	FogCritical
)

// ClassifyFog maps a fog value to its band. Boundaries are fixed: 30 still
// belongs to the optimal band and 70 to the intermediate one.
func ClassifyFog(fog int) FogBand {
	switch {
	case fog <= 30:
		return FogOptimal
	case fog <= 70:
		return FogIntermediate
	default:
		return FogCritical
	}
}

func (b FogBand) String() string {
	switch b {
	case FogOptimal:
		return "OPTIMAL"
	case FogIntermediate:
		return "INTERMEDIATE"
	case FogCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}
