package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorSearch   lipgloss.Color = "#1d75cd"
	colorClear    lipgloss.Color = "#cd3e1d"
	colorWhite    lipgloss.Color = "#ffffff"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true).MarginBottom(1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(inputWidth)
	inputBoxFocusedStyle = inputBoxStyle.BorderForeground(colorAccent)

	suggestionStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	suggestionActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 2).
			MarginRight(2)
	buttonFocusedStyle = buttonStyle.Bold(true).Underline(true)

	resultStyle = lipgloss.NewStyle().MarginTop(1)
	itemStyle   = lipgloss.NewStyle().Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	modalTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	modalCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
)
