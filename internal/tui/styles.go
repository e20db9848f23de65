package tui

import (
	"github.com/charmbracelet/lipgloss"

	"HubPanel/internal/dashboard"
)

// Палитра терминального интерфейса
var (
	primaryColor = lipgloss.Color("#007ACC")
	successColor = lipgloss.Color("#4CAF50")
	errorColor   = lipgloss.Color("#F44336")
	warningColor = lipgloss.Color("#FFC107")
	subtleColor  = lipgloss.Color("#6C757D")
	cardColor    = lipgloss.Color("#646464")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(subtleColor).
				Italic(true).
				Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cardColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)
)

// statusColor выбирает цвет строки статуса по состоянию
func statusColor(status dashboard.Status) lipgloss.Color {
	switch status.State {
	case dashboard.StateConnecting:
		return warningColor
	case dashboard.StateConnected:
		return successColor
	default:
		return errorColor
	}
}
