package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorIris)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorSlate)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorSlate).
			MarginTop(1)
)
