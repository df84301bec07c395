package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/application/commands"
	"compass/internal/domain"
	"compass/internal/ports"
)

// logbookMode is the sub-state of the logbook panel
type logbookMode int

const (
	logbookBrowse logbookMode = iota
	logbookAdd
	logbookConfirmClear
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

const logbookPageSize = 8

// LogbookModel is the model for the micro-progress log panel
type LogbookModel struct {
	ViewState
	store ports.StateStore
	mode  logbookMode
	input textinput.Model
	keys  ConfirmKeyMap
}

// NewLogbookModel creates a new logbook panel model
func NewLogbookModel(store ports.StateStore) *LogbookModel {
	input := textinput.New()
	input.Placeholder = "What moved today?"
	input.CharLimit = 200

	return &LogbookModel{
		store: store,
		input: input,
		keys:  DefaultConfirmKeys,
	}
}

// Init initializes the logbook panel
func (m *LogbookModel) Init() tea.Cmd {
	return nil
}

// Reload is a no-op: the panel reads the log slice on every render
func (m *LogbookModel) Reload() {}

// Editing reports whether the panel is capturing text input
func (m *LogbookModel) Editing() bool {
	return m.mode != logbookBrowse
}

// Update handles messages for the logbook panel
func (m *LogbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.mode {
	case logbookBrowse:
		if !isKey {
			return m, nil
		}
		switch keyMsg.String() {
		case "a", "enter":
			m.mode = logbookAdd
			m.ClearMessage()
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "x":
			if len(m.store.LoadLogs()) > 0 {
				m.mode = logbookConfirmClear
				m.ClearMessage()
			}
			return m, nil
		}

	case logbookAdd:
		if isKey {
			switch keyMsg.String() {
			case "esc":
				m.mode = logbookBrowse
				m.input.Blur()
				return m, nil
			case "enter":
				m.submit()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case logbookConfirmClear:
		if !isKey {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, m.keys.Confirm):
			m.clear()
		case key.Matches(keyMsg, m.keys.Cancel):
			m.mode = logbookBrowse
		}
		return m, nil
	}

	return m, nil
}

func (m *LogbookModel) submit() {
	result, err := commands.NewAppendLogCommand(m.store, m.input.Value()).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}

	if result.Added {
		m.mode = logbookBrowse
		m.input.Blur()
		m.SetMessage(result.Message, false)
		return
	}
	// Empty text: stay in add mode, nothing was stored
	m.SetMessage(result.Message, true)
}

func (m *LogbookModel) clear() {
	result, err := commands.NewClearLogsCommand(m.store).Execute(context.Background())
	m.mode = logbookBrowse
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, false)
}

// View renders the logbook panel
func (m *LogbookModel) View() string {
	var b strings.Builder

	entries := m.store.LoadLogs()

	b.WriteString(styles.Title.Render("Logbook"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d entries, newest first", len(entries))))
	b.WriteString("\n\n")

	if m.mode == logbookConfirmClear {
		b.WriteString(styles.ErrorMsg.Render(fmt.Sprintf("Delete all %d entries? This cannot be undone.", len(entries))))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKey.Render("y"))
		b.WriteString(styles.HelpDesc.Render(" to confirm, "))
		b.WriteString(styles.HelpKey.Render("n"))
		b.WriteString(styles.HelpDesc.Render(" to cancel"))
		return styles.App.Render(b.String())
	}

	display := domain.NewestFirst(entries)
	if len(display) == 0 {
		b.WriteString(styles.MutedText.Render("  Nothing logged yet."))
		b.WriteString("\n")
	}
	for i, entry := range display {
		if i >= logbookPageSize {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("  … %d more", len(display)-logbookPageSize)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  ")
		b.WriteString(styles.LogDate.Render(padRight(entry.Date, 8)))
		b.WriteString(styles.LogText.Render(entry.Domain))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == logbookAdd {
		b.WriteString(styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n\n")
		help := []string{
			styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("log it"),
			styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"),
		}
		b.WriteString(strings.Join(help, "  "))
	} else {
		help := []string{
			styles.HelpKey.Render("a") + " " + styles.HelpDesc.Render("add entry"),
			styles.HelpKey.Render("x") + " " + styles.HelpDesc.Render("clear all"),
		}
		b.WriteString(strings.Join(help, "  "))
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(msg)
	}

	return styles.App.Render(b.String())
}
