package cmd

import "github.com/charmbracelet/lipgloss"

// Styles for the human-facing status lines printed by data:install and
// sources:watch. The JSON-emitting commands stay unstyled for piping.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)
