package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/tui/styles"
	"compass/internal/application"
	"compass/internal/domain"
	"compass/internal/ports"
)

// RadarKeyMap defines key bindings for the radar view
type RadarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
}

var RadarKeys = RadarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous metric"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next metric"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "decrease"),
	),
	Increase: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "increase"),
	),
}

// Metric labels shown next to each slider.
var radarLabels = map[domain.RadarField]string{
	domain.RadarInner:      "Inner voice",
	domain.RadarPeers:      "Peers",
	domain.RadarFamily:     "Family",
	domain.RadarMedia:      "Media",
	domain.RadarProfessors: "Professors",
	domain.RadarFog:        "Fog",
}

// RadarModel is the model for the signal/noise self-assessment panel
type RadarModel struct {
	ViewState
	store    ports.StateStore
	radar    domain.RadarState
	selected int
}

// NewRadarModel creates a new radar panel model
func NewRadarModel(store ports.StateStore) *RadarModel {
	return &RadarModel{
		store: store,
		radar: store.LoadRadar(),
	}
}

// Init initializes the radar panel
func (m *RadarModel) Init() tea.Cmd {
	return nil
}

// Reload re-reads the radar slice
func (m *RadarModel) Reload() {
	m.radar = m.store.LoadRadar()
}

// Editing reports whether the panel is capturing text input (it never is)
func (m *RadarModel) Editing() bool {
	return false
}

// Update handles messages for the radar panel
func (m *RadarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, RadarKeys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, RadarKeys.Down):
		if m.selected < len(domain.RadarFields)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, RadarKeys.Decrease):
		m.adjust(-1)
	case key.Matches(keyMsg, RadarKeys.Increase):
		m.adjust(+1)
	case keyMsg.String() == "H":
		m.adjust(-10)
	case keyMsg.String() == "L":
		m.adjust(+10)
	}

	return m, nil
}

// adjust shifts the selected metric by delta, clamps, and persists immediately
// so the next read anywhere sees the new value.
func (m *RadarModel) adjust(delta int) {
	field := domain.RadarFields[m.selected]
	current, _ := m.radar.Get(field)
	m.radar.Set(field, domain.ClampLevel(current+delta))
	m.store.SaveRadar(m.radar)
}

// View renders the radar panel
func (m *RadarModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Radar"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Who is loudest in your head today?"))
	b.WriteString("\n\n")

	for i, field := range domain.RadarFields {
		value, _ := m.radar.Get(field)
		label := padRight(radarLabels[field], 12)
		if i == m.selected {
			b.WriteString(styles.GaugeSelected.Render("▶ " + label))
		} else {
			b.WriteString(styles.GaugeLabel.Render("  " + label))
		}
		b.WriteString(" ")
		b.WriteString(RenderGauge(value))
		b.WriteString(fmt.Sprintf(" %3d", value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Clarity: "))
	b.WriteString(RenderBand(application.ClassifyFog(m.radar.Fog)))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *RadarModel) renderHelp() string {
	parts := []string{
		styles.HelpKey.Render("j/k") + " " + styles.HelpDesc.Render("select"),
		styles.HelpKey.Render("h/l") + " " + styles.HelpDesc.Render("adjust"),
		styles.HelpKey.Render("H/L") + " " + styles.HelpDesc.Render("step 10"),
	}
	return strings.Join(parts, "  ")
}
