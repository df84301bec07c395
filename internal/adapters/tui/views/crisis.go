package views

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/application"
	"compass/internal/application/commands"
	"compass/internal/ports"
)

// Crisis form field indexes
const (
	crisisFieldPerson = iota
	crisisFieldBooster
)

// CrisisModel is the model for the emergency support panel
type CrisisModel struct {
	ViewState
	store   ports.StateStore
	form    *InputForm
	editing bool
}

// NewCrisisModel creates a new crisis panel model
func NewCrisisModel(store ports.StateStore) *CrisisModel {
	m := &CrisisModel{
		store: store,
		form: NewInputForm(
			NewInputField("Support person", "Who do you call first?", 100),
			NewInputField("Booster", "What picks you back up?", 200),
		),
	}
	m.Reload()
	return m
}

// Init initializes the crisis panel
func (m *CrisisModel) Init() tea.Cmd {
	return m.form.Init()
}

// Reload re-reads the crisis slice into the form
func (m *CrisisModel) Reload() {
	crisis := m.store.LoadCrisis()
	m.form.SetValue(crisisFieldPerson, crisis.SupportPerson)
	m.form.SetValue(crisisFieldBooster, crisis.Booster)
}

// Editing reports whether the panel is capturing text input
func (m *CrisisModel) Editing() bool {
	return m.editing
}

// Update handles messages for the crisis panel
func (m *CrisisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !m.editing {
		switch keyMsg.String() {
		case "e", "enter":
			m.editing = true
			m.ClearMessage()
			m.form.Reset()
			return m, m.form.Init()
		case "c":
			m.copyContact()
			return m, nil
		}
		return m, nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			m.editing = false
			m.Reload()
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

func (m *CrisisModel) save() {
	crisis := application.CrisisState{
		SupportPerson: m.form.Value(crisisFieldPerson),
		Booster:       m.form.Value(crisisFieldBooster),
	}

	result, err := commands.NewSetCrisisCommand(m.store, crisis).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, false)
}

// copyContact puts the support contact on the clipboard so it can be pasted
// straight into a call or message app.
func (m *CrisisModel) copyContact() {
	crisis := m.store.LoadCrisis()
	if strings.TrimSpace(crisis.SupportPerson) == "" {
		m.SetMessage("No support person set", true)
		return
	}
	if err := clipboard.WriteAll(crisis.SupportPerson); err != nil {
		m.SetMessage("Clipboard unavailable", true)
		return
	}
	m.SetMessage("Support contact copied", false)
}

// View renders the crisis panel
func (m *CrisisModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Crisis"))
	b.WriteString("\n")

	if m.editing {
		for i := range m.form.Fields {
			b.WriteString(m.form.RenderField(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.form.RenderHelp("save"))
	} else {
		crisis := m.store.LoadCrisis()
		b.WriteString(styles.Subtitle.Render("When the day goes sideways, start here"))
		b.WriteString("\n\n")
		b.WriteString(renderGoalLine("Call", crisis.SupportPerson))
		b.WriteString(renderGoalLine("Booster", crisis.Booster))
		b.WriteString("\n")
		help := []string{
			styles.HelpKey.Render("e") + " " + styles.HelpDesc.Render("edit"),
			styles.HelpKey.Render("c") + " " + styles.HelpDesc.Render("copy contact"),
		}
		b.WriteString(strings.Join(help, "  "))
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(msg)
	}

	return styles.App.Render(b.String())
}
