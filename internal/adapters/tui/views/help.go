package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Reload is a no-op
func (m *HelpModel) Reload() {}

// Editing reports whether the panel is capturing text input (it never is)
func (m *HelpModel) Editing() bool {
	return false
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Compass Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Personal self-coaching dashboard"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Panels"))
	b.WriteString("\n")
	b.WriteString(helpLine("1", "Radar: signal/noise self-assessment"))
	b.WriteString(helpLine("2", "Goal: objective and habit anchors"))
	b.WriteString(helpLine("3", "Logbook: daily micro-progress"))
	b.WriteString(helpLine("4", "Crisis: emergency support plan"))
	b.WriteString(helpLine("5", "Mission: derived mastery/impact scores"))
	b.WriteString(helpLine("tab", "Next panel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Within a panel"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k, h / l", "Select and adjust radar sliders"))
	b.WriteString(helpLine("e / Enter", "Edit goal or crisis fields"))
	b.WriteString(helpLine("a", "Add a log entry"))
	b.WriteString(helpLine("x", "Clear the log (asks first)"))
	b.WriteString(helpLine("c", "Copy report or support contact"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}
