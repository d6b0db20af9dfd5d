package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)

	cardStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(28)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("12")).Bold(true)

	labelStyle = lipgloss.NewStyle().Faint(true).Width(10)
	quoteStyle = lipgloss.NewStyle().Italic(true)
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)
