package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/application/commands"
	"compass/internal/ports"
)

// MissionModel is the model for the derived mastery/impact panel. It holds no
// score state of its own: every render recomputes from the stored slices.
type MissionModel struct {
	ViewState
	store ports.StateStore
}

// NewMissionModel creates a new mission panel model
func NewMissionModel(store ports.StateStore) *MissionModel {
	return &MissionModel{store: store}
}

// Init initializes the mission panel
func (m *MissionModel) Init() tea.Cmd {
	return nil
}

// Reload is a no-op: scores are recomputed on every render
func (m *MissionModel) Reload() {}

// Editing reports whether the panel is capturing text input (it never is)
func (m *MissionModel) Editing() bool {
	return false
}

// Update handles messages for the mission panel
func (m *MissionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "c" {
		m.copyReport()
	}
	return m, nil
}

func (m *MissionModel) copyReport() {
	report, err := commands.NewMissionReportCommand(m.store).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	if err := clipboard.WriteAll(report.Summary()); err != nil {
		m.SetMessage("Clipboard unavailable", true)
		return
	}
	m.SetMessage("Report copied", false)
}

// View renders the mission panel
func (m *MissionModel) View() string {
	report, err := commands.NewMissionReportCommand(m.store).Execute(context.Background())
	if err != nil {
		return styles.App.Render(styles.ErrorMsg.Render(err.Error()))
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Mission"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Where you stand: mastery vs impact"))
	b.WriteString("\n\n")

	b.WriteString(renderScoreLine("Mastery (X)", report.Scores.Mastery))
	b.WriteString(renderScoreLine("Impact  (Y)", report.Scores.Impact))
	b.WriteString("\n")

	b.WriteString("  " + styles.InputLabel.Render(padRight("Fog", 16)))
	b.WriteString(fmt.Sprintf("%3d ", report.Radar.Fog))
	b.WriteString(RenderBand(report.Band))
	b.WriteString("\n")

	b.WriteString("  " + styles.InputLabel.Render(padRight("External noise", 16)))
	b.WriteString(fmt.Sprintf("%5.1f", report.Noise))
	b.WriteString("\n")

	b.WriteString("  " + styles.InputLabel.Render(padRight("Logged", 16)))
	b.WriteString(fmt.Sprintf("%3d entries", report.LogCount))
	b.WriteString("\n\n")

	if report.Authorized {
		b.WriteString(styles.Authorized.Render("◆ AUTHORIZED: both axes above 7"))
	} else {
		b.WriteString(styles.NotAuthorized.Render("◇ Keep pushing: authorization needs both axes above 7"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("c") + " " + styles.HelpDesc.Render("copy report"))

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(msg)
	}

	return styles.App.Render(b.String())
}

func renderScoreLine(label string, score float64) string {
	filled := int(score * 2) // 0-10 score over a 20-cell gauge
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	bar := styles.GaugeFill.Render(strings.Repeat("█", filled)) +
		styles.GaugeEmpty.Render(strings.Repeat("░", 20-filled))
	return "  " + styles.InputLabel.Render(padRight(label, 16)) + bar +
		styles.ScoreValue.Render(fmt.Sprintf(" %4.1f", score)) + "\n"
}
