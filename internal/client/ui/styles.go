// Package ui renders the CLI's panels, result cards and message banners
// with lipgloss.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#3F51B5")
	colorMuted   = lipgloss.Color("#8A8F98")
	colorInfo    = lipgloss.Color("#2196F3")
	colorSuccess = lipgloss.Color("#4CAF50")
	colorError   = lipgloss.Color("#E53935")
)

// Styles holds every style the package renders with.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func DefaultStyles() Styles {
	banner := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Label: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		Info:    banner.Foreground(colorInfo),
		Success: banner.Foreground(colorSuccess),
		Error:   banner.Foreground(colorError),
	}
}
