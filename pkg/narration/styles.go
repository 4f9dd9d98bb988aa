package narration

import "github.com/charmbracelet/lipgloss"

// Palette shared by everything shopsim prints to a terminal.
var (
	salmonPink  = lipgloss.Color("#FFB3BA")
	coralPink   = lipgloss.Color("#FFCCCB")
	mintGreen   = lipgloss.Color("#A8E6CF")
	mutedGray   = lipgloss.Color("#6B7280")
	brightWhite = lipgloss.Color("#F9FAFB")
)

var (
	// TitleStyle is used for banners and section headers.
	TitleStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	// MutedStyle is used for secondary text such as descriptions.
	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	speakerStyle = lipgloss.NewStyle().
			Foreground(coralPink).
			Bold(true)

	quoteStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Italic(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	// BoxStyle frames the task banner and the final stats.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)
)
