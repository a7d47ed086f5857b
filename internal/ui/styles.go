package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the picker.
type Styles struct {
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Path     lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Snippet  lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the default picker styles.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Path:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Bold(true),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Snippet:  lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Faint(true),
	}
}
