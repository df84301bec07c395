package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/application"
	"compass/internal/application/commands"
	"compass/internal/ports"
)

// Goal form field indexes
const (
	goalFieldTitle = iota
	goalFieldDate
	goalFieldCognitive
	goalFieldPhysical
	goalFieldRecovery
)

// GoalModel is the model for the goal panel: the objective plus its three
// habit anchors.
type GoalModel struct {
	ViewState
	store   ports.StateStore
	form    *InputForm
	editing bool
}

// NewGoalModel creates a new goal panel model
func NewGoalModel(store ports.StateStore) *GoalModel {
	m := &GoalModel{
		store: store,
		form: NewInputForm(
			NewInputField("Objective", "What are you going after?", 100),
			NewInputField("Target date", "When? (free text)", 40),
			NewInputField("Cognitive anchor", "Daily habit that feeds your head", 100),
			NewInputField("Physical anchor", "Daily habit that moves your body", 100),
			NewInputField("Recovery anchor", "Daily habit that recharges you", 100),
		),
	}
	m.Reload()
	return m
}

// Init initializes the goal panel
func (m *GoalModel) Init() tea.Cmd {
	return m.form.Init()
}

// Reload re-reads the goal slice into the form
func (m *GoalModel) Reload() {
	goal := m.store.LoadGoal()
	m.form.SetValue(goalFieldTitle, goal.Title)
	m.form.SetValue(goalFieldDate, goal.Date)
	m.form.SetValue(goalFieldCognitive, goal.CarbCognitive)
	m.form.SetValue(goalFieldPhysical, goal.CarbPhysical)
	m.form.SetValue(goalFieldRecovery, goal.CarbRecovery)
}

// Editing reports whether the panel is capturing text input
func (m *GoalModel) Editing() bool {
	return m.editing
}

// Update handles messages for the goal panel
func (m *GoalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !m.editing {
		if keyMsg.String() == "e" || keyMsg.String() == "enter" {
			m.editing = true
			m.ClearMessage()
			m.form.Reset()
			return m, m.form.Init()
		}
		return m, nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			m.editing = false
			m.Reload() // discard unsaved edits
			return m, nil
		case key.Matches(keyMsg, m.form.Keys.Submit):
			m.save()
			m.editing = false
			return m, nil
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *GoalModel) save() {
	goal := application.GoalState{
		Title:         m.form.Value(goalFieldTitle),
		Date:          m.form.Value(goalFieldDate),
		CarbCognitive: m.form.Value(goalFieldCognitive),
		CarbPhysical:  m.form.Value(goalFieldPhysical),
		CarbRecovery:  m.form.Value(goalFieldRecovery),
	}

	result, err := commands.NewSetGoalCommand(m.store, goal).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, false)
}

// View renders the goal panel
func (m *GoalModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Goal"))
	b.WriteString("\n")

	if m.editing {
		for i := range m.form.Fields {
			b.WriteString(m.form.RenderField(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.form.RenderHelp("save"))
	} else {
		goal := m.store.LoadGoal()
		b.WriteString(styles.Subtitle.Render("One objective, three daily anchors"))
		b.WriteString("\n\n")
		b.WriteString(renderGoalLine("Objective", goal.Title))
		b.WriteString(renderGoalLine("Target date", goal.Date))
		b.WriteString(renderGoalLine("Cognitive", goal.CarbCognitive))
		b.WriteString(renderGoalLine("Physical", goal.CarbPhysical))
		b.WriteString(renderGoalLine("Recovery", goal.CarbRecovery))
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Anchors set: %d/3", goal.AnchorCount())))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKey.Render("e") + " " + styles.HelpDesc.Render("edit"))
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(msg)
	}

	return styles.App.Render(b.String())
}

func renderGoalLine(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = styles.MutedText.Render("(not set)")
	}
	return "  " + styles.InputLabel.Render(padRight(label, 14)) + value + "\n"
}
