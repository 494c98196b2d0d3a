package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Component styles
	Version   lipgloss.Style
	MinApp    lipgloss.Style
	Malformed lipgloss.Style

	// Report styles
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	// TUI styles
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	Selected  lipgloss.Style
	Help      lipgloss.Style
}{
	Version:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue
	MinApp:    lipgloss.NewStyle().Foreground(lipgloss.Color("142")), // Yellow-green
	Malformed: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red

	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red

	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
	StatusBar: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")).Padding(0, 1),
	Selected:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("39")),
	Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}

// StatusStyle returns a style based on check severity
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "error":
		return Styles.Danger
	case "warning":
		return Styles.Warning
	default:
		return Styles.Success
	}
}

// RecordedText returns styled text for a sync outcome
func RecordedText(recorded bool) string {
	if recorded {
		return Styles.Success.Render("added/updated")
	}
	return Styles.Label.Render("skipped")
}
