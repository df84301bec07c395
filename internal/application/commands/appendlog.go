package commands

import (
	"context"
	"fmt"
	"time"

	"compass/internal/domain"
	"compass/internal/ports"
)

// AppendLogResult contains the result of a log append
type AppendLogResult struct {
	Added   bool
	Entry   domain.LogEntry
	Count   int
	Message string
}

// AppendLogCommand appends a timestamped progress entry to the log slice.
// Whitespace-only text is a silent no-op, not an error.
type AppendLogCommand struct {
	store ports.StateStore
	Text  string
	Now   time.Time // zero value means time.Now()
}

// NewAppendLogCommand creates a new AppendLogCommand
func NewAppendLogCommand(store ports.StateStore, text string) *AppendLogCommand {
	return &AppendLogCommand{
		store: store,
		Text:  text,
	}
}

// Execute runs the log append
func (c *AppendLogCommand) Execute(ctx context.Context) (*AppendLogResult, error) {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	entries := c.store.LoadLogs()
	entries, added := domain.AppendEntry(entries, c.Text, now)
	if !added {
		return &AppendLogResult{
			Added:   false,
			Count:   len(entries),
			Message: "Nothing to log",
		}, nil
	}

	c.store.SaveLogs(entries)
	entry := entries[len(entries)-1]

	return &AppendLogResult{
		Added:   true,
		Entry:   entry,
		Count:   len(entries),
		Message: fmt.Sprintf("Logged %q (%s)", entry.Domain, entry.Date),
	}, nil
}

// ClearLogsResult contains the result of a log clear
type ClearLogsResult struct {
	Removed int
	Message string
}

// ClearLogsCommand empties the log slice. Destructive and irreversible;
// confirmation is owned by the caller.
type ClearLogsCommand struct {
	store ports.StateStore
}

// NewClearLogsCommand creates a new ClearLogsCommand
func NewClearLogsCommand(store ports.StateStore) *ClearLogsCommand {
	return &ClearLogsCommand{store: store}
}

// Execute runs the log clear
func (c *ClearLogsCommand) Execute(ctx context.Context) (*ClearLogsResult, error) {
	entries := c.store.LoadLogs()
	c.store.SaveLogs(nil)

	return &ClearLogsResult{
		Removed: len(entries),
		Message: fmt.Sprintf("Cleared %d log entries", len(entries)),
	}, nil
}
