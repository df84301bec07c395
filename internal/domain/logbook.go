package domain

import (
	"fmt"
	"strings"
	"time"
)

// LogEntry is one immutable micro-progress record.
type LogEntry struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Domain string `json:"domain"`
}

// Short weekday labels for the single display locale, indexed by time.Weekday.
// Already normalized: no trailing dot, leading capital only.
var shortDayNames = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// FormatLogDate renders the display label for a log entry, e.g. "Lun 1".
func FormatLogDate(t time.Time) string {
	return fmt.Sprintf("%s %d", shortDayNames[t.Weekday()], t.Day())
}

// NewLogEntry builds an entry from free text and a creation time. The second
// return is false when the text is empty after trimming, in which case the
// entry must not be stored. The ID is the creation timestamp in milliseconds;
// appends are user-paced, far below clock resolution.
func NewLogEntry(text string, now time.Time) (LogEntry, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return LogEntry{}, false
	}
	return LogEntry{
		ID:     now.UnixMilli(),
		Date:   FormatLogDate(now),
		Domain: trimmed,
	}, true
}

// AppendEntry appends a new entry built from text to the log sequence.
// Whitespace-only text leaves the sequence unchanged and returns false.
// Storage order is append-only, oldest first.
func AppendEntry(entries []LogEntry, text string, now time.Time) ([]LogEntry, bool) {
	entry, ok := NewLogEntry(text, now)
	if !ok {
		return entries, false
	}
	return append(entries, entry), true
}

// NewestFirst returns a reversed copy for display. The stored sequence stays
// oldest-first.
func NewestFirst(entries []LogEntry) []LogEntry {
	out := make([]LogEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
