package domain

import (
	"testing"
	"time"
)

func TestFormatLogDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), "Lun 1"},   // Monday
		{time.Date(2025, 9, 7, 10, 0, 0, 0, time.UTC), "Dom 7"},   // Sunday
		{time.Date(2025, 9, 13, 10, 0, 0, 0, time.UTC), "Sáb 13"}, // Saturday
		{time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC), "Mié 24"}, // Wednesday
	}

	for _, tt := range tests {
		if got := FormatLogDate(tt.date); got != tt.want {
			t.Errorf("FormatLogDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestAppendEntry(t *testing.T) {
	now := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)

	var entries []LogEntry
	entries, ok := AppendEntry(entries, "Ran 5k", now)
	if !ok {
		t.Fatal("append of valid text rejected")
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Domain != "Ran 5k" {
		t.Errorf("domain = %q, want %q", entries[0].Domain, "Ran 5k")
	}
	if entries[0].Date != "Lun 1" {
		t.Errorf("date = %q, want %q", entries[0].Date, "Lun 1")
	}
	if entries[0].ID != now.UnixMilli() {
		t.Errorf("id = %d, want %d", entries[0].ID, now.UnixMilli())
	}
}

func TestAppendEntryWhitespaceNoOp(t *testing.T) {
	now := time.Now()

	entries := []LogEntry{{ID: 1, Date: "Lun 1", Domain: "Existing"}}
	entries, ok := AppendEntry(entries, "  ", now)
	if ok {
		t.Error("whitespace-only append reported success")
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1 (unchanged)", len(entries))
	}
}

func TestAppendEntryTrimsText(t *testing.T) {
	entries, ok := AppendEntry(nil, "  Ran 5k  ", time.Now())
	if !ok || entries[0].Domain != "Ran 5k" {
		t.Errorf("trimmed domain = %q, want %q", entries[0].Domain, "Ran 5k")
	}
}

func TestNewestFirst(t *testing.T) {
	entries := []LogEntry{
		{ID: 1, Domain: "first"},
		{ID: 2, Domain: "second"},
		{ID: 3, Domain: "third"},
	}

	display := NewestFirst(entries)
	if display[0].ID != 3 || display[2].ID != 1 {
		t.Errorf("display order wrong: %v", display)
	}

	// Storage order must be untouched.
	if entries[0].ID != 1 {
		t.Errorf("storage order mutated: %v", entries)
	}
}

func TestNewestFirstEmpty(t *testing.T) {
	if got := NewestFirst(nil); len(got) != 0 {
		t.Errorf("NewestFirst(nil) = %v, want empty", got)
	}
}
