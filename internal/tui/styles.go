package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorMuted   = lipgloss.Color("#666666")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#F39C12")
	colorSubtle  = lipgloss.Color("#414868")
	colorFg      = lipgloss.Color("#C0CAF5")
)

// Styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 4)

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	completedBarStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	cancelledBarStyle = lipgloss.NewStyle().
				Foreground(colorWarning)
)
