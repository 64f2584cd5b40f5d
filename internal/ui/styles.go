// Package ui implements the interactive back-office screens as bubbletea
// models: property list with expandable detail, the property form, the
// property type catalog and contact submissions.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by every page.
type Styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Banner    lipgloss.Style
	Confirm   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2196F3")).Padding(0, 2),
		Title:     lipgloss.NewStyle().Bold(true).Underline(true),
		Label:     lipgloss.NewStyle().Bold(true),
		Value:     lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#e53935")).Padding(0, 1),
		Confirm:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}
