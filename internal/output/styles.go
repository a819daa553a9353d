package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for text output
var Styles = struct {
	Title   lipgloss.Style
	Section lipgloss.Style

	// Log level styles
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Debug   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // Cyan bold
	Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")), // Gray bold

	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Cyan
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // Orange
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold
	Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Gray
}

// LevelStyle returns the appropriate style for a log level
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "INFO":
		return Styles.Info
	case "WARNING":
		return Styles.Warning
	case "ERROR":
		return Styles.Error
	case "DEBUG":
		return Styles.Debug
	default:
		return Styles.Info
	}
}
