package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	insideFg  = lipgloss.Color("#FFD700")
	nearFg    = lipgloss.Color("#00E5FF")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	insideStyle = lipgloss.NewStyle().Foreground(insideFg).Bold(true)
	nearStyle   = lipgloss.NewStyle().Foreground(nearFg)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)
