package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/adapters/tui/views"
	"compass/internal/ports"
)

// Panel identifies the active dashboard panel
type Panel int

const (
	PanelRadar Panel = iota
	PanelGoal
	PanelLogbook
	PanelCrisis
	PanelMission
	panelCount
)

// panelModel is what the app needs from each panel
type panelModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetSize(width, height int)
	Reload()
	Editing() bool
}

// App is the main TUI application model. The active panel is session-local
// state only; it is never persisted.
type App struct {
	store ports.StateStore

	panel    Panel
	showHelp bool

	panels [panelCount]panelModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.StateStore) *App {
	a := &App{
		store: store,
		panel: PanelRadar,
		help:  views.NewHelpModel(),
	}
	a.panels[PanelRadar] = views.NewRadarModel(store)
	a.panels[PanelGoal] = views.NewGoalModel(store)
	a.panels[PanelLogbook] = views.NewLogbookModel(store)
	a.panels[PanelCrisis] = views.NewCrisisModel(store)
	a.panels[PanelMission] = views.NewMissionModel(store)
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.panels[a.panel].Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, p := range a.panels {
			p.SetSize(msg.Width, msg.Height)
		}
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.CloseHelpMsg:
		a.showHelp = false
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			_, cmd := a.help.Update(msg)
			return a, cmd
		}

		// Global keys only while the active panel is not capturing text
		if !a.panels[a.panel].Editing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return a, tea.Quit
			case "?":
				a.showHelp = true
				return a, nil
			case "1":
				return a, a.switchTo(PanelRadar)
			case "2":
				return a, a.switchTo(PanelGoal)
			case "3":
				return a, a.switchTo(PanelLogbook)
			case "4":
				return a, a.switchTo(PanelCrisis)
			case "5":
				return a, a.switchTo(PanelMission)
			case "tab":
				return a, a.switchTo((a.panel + 1) % panelCount)
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	_, cmd := a.panels[a.panel].Update(msg)
	return a, cmd
}

// switchTo activates a panel, reloading its slice so it never shows stale
// state written by another panel.
func (a *App) switchTo(p Panel) tea.Cmd {
	a.panel = p
	a.panels[p].Reload()
	return a.panels[p].Init()
}

// View renders the tab bar plus the active panel
func (a *App) View() string {
	if a.showHelp {
		return a.help.View()
	}
	return a.renderTabs() + "\n" + a.panels[a.panel].View()
}

var panelTitles = [panelCount]string{"1 Radar", "2 Goal", "3 Logbook", "4 Crisis", "5 Mission"}

func (a *App) renderTabs() string {
	out := ""
	for i, title := range panelTitles {
		if Panel(i) == a.panel {
			out += styles.TabActive.Render(title)
		} else {
			out += styles.TabInactive.Render(title)
		}
	}
	return out
}
