package ui

import "github.com/charmbracelet/lipgloss"

// Shared styles for command output. lipgloss degrades to plain text when
// stdout is not a terminal, so these are safe in piped output and tests.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true)
	ErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	OKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
