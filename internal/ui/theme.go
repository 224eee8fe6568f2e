package ui

import "github.com/charmbracelet/lipgloss"

// Styles and colors are centralised here so the reporters stay consistent
// with each other.
var (
	// Colors.
	colorGreen  = lipgloss.Color("#22C55E")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#EAB308")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorDim    = lipgloss.Color("#6B7280")

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	headingStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// Heading renders a styled section heading for CLI output.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Dim renders de-emphasised detail text.
func Dim(s string) string {
	return dimStyle.Render(s)
}
