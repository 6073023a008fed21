package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	groupStyle      = lipgloss.NewStyle().Bold(true).Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle       = lipgloss.NewStyle().Faint(true)
	sidebarStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(2).
			MarginLeft(2)
)
