package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Fog band colors
	BandOptimal      = lipgloss.Color("#10B981") // Green
	BandIntermediate = lipgloss.Color("#F59E0B") // Amber
	BandCritical     = lipgloss.Color("#EF4444") // Red

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Gauge styles
	GaugeLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	GaugeFill = lipgloss.NewStyle().
			Foreground(Primary)

	GaugeEmpty = lipgloss.NewStyle().
			Foreground(Muted)

	GaugeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Score styles
	ScoreValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Authorized = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	NotAuthorized = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tab bar
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Log list
	LogDate = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	LogText = lipgloss.NewStyle()

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// BandColor returns the color for a fog band name.
func BandColor(band string) lipgloss.Color {
	switch band {
	case "OPTIMAL":
		return BandOptimal
	case "INTERMEDIATE":
		return BandIntermediate
	case "CRITICAL":
		return BandCritical
	default:
		return Muted
	}
}
