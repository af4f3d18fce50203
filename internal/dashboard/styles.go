package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"agentdash/internal/state"
)

var (
	colorGreen   = lipgloss.Color("78")
	colorYellow  = lipgloss.Color("220")
	colorRed     = lipgloss.Color("196")
	colorMagenta = lipgloss.Color("201")
	colorGray    = lipgloss.Color("240")
	colorBlue    = lipgloss.Color("39")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	nameStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(colorGray)

	modelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

// stateColor maps an inferred state to its border and label color.
func stateColor(kind state.Kind) lipgloss.Color {
	switch kind {
	case state.Working:
		return colorGreen
	case state.Thinking:
		return colorYellow
	case state.WaitingPermission:
		return colorRed
	case state.WaitingInput:
		return colorMagenta
	default:
		return colorGray
	}
}

// stateIcon maps an inferred state to its badge icon.
func stateIcon(kind state.Kind) string {
	switch kind {
	case state.Working:
		return "✍ "
	case state.Thinking:
		return "🧠"
	case state.WaitingPermission:
		return "⏳"
	case state.WaitingInput:
		return "💬"
	default:
		return "💤"
	}
}
