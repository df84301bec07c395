package domain

import "testing"

func TestClassifyFog(t *testing.T) {
	tests := []struct {
		fog  int
		want FogBand
	}{
		{0, FogOptimal},
		{15, FogOptimal},
		{30, FogOptimal},
		{31, FogIntermediate},
		{50, FogIntermediate},
		{70, FogIntermediate},
		{71, FogCritical},
		{100, FogCritical},
	}

	for _, tt := range tests {
		if got := ClassifyFog(tt.fog); got != tt.want {
			t.Errorf("ClassifyFog(%d) = %v, want %v", tt.fog, got, tt.want)
		}
	}
}

func TestFogBandString(t *testing.T) {
	tests := []struct {
		band FogBand
		want string
	}{
		{FogOptimal, "OPTIMAL"},
		{FogIntermediate, "INTERMEDIATE"},
		{FogCritical, "CRITICAL"},
	}

	for _, tt := range tests {
		if got := tt.band.String(); got != tt.want {
			t.Errorf("FogBand(%d).String() = %q, want %q", tt.band, got, tt.want)
		}
	}
}

func TestRadarSetGet(t *testing.T) {
	r := DefaultRadar()

	for _, f := range RadarFields {
		if !r.Set(f, 42) {
			t.Errorf("Set(%q) rejected a known field", f)
		}
		got, ok := r.Get(f)
		if !ok || got != 42 {
			t.Errorf("Get(%q) = (%d, %v), want (42, true)", f, got, ok)
		}
	}

	if r.Set("volume", 10) {
		t.Error("Set accepted an unknown field")
	}
	if _, ok := r.Get("volume"); ok {
		t.Error("Get accepted an unknown field")
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}

	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
