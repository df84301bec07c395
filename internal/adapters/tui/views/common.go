package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"compass/internal/adapters/tui/styles"
	"compass/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders the current message line, or nothing.
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}

// CloseHelpMsg asks the app to leave the help view
type CloseHelpMsg struct{}

const gaugeWidth = 20

// RenderGauge draws a 0-100 value as a fixed-width bar, e.g. "██████░░░░".
func RenderGauge(value int) string {
	filled := value * gaugeWidth / 100
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	if filled < 0 {
		filled = 0
	}
	var b strings.Builder
	b.WriteString(styles.GaugeFill.Render(strings.Repeat("█", filled)))
	b.WriteString(styles.GaugeEmpty.Render(strings.Repeat("░", gaugeWidth-filled)))
	return b.String()
}

// RenderBand renders a fog band label in its color.
func RenderBand(band domain.FogBand) string {
	name := band.String()
	return lipgloss.NewStyle().Foreground(styles.BandColor(name)).Bold(true).Render(name)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
