package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorDisabled lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	descStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	imageStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	arrowStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	displayStyle  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	openStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1)
	disabledStyle = lipgloss.NewStyle().Foreground(colorDisabled).Background(colorSurface0)
	rowStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface1).Bold(true)

	StatusStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	StatusErrStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	TitleStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	HelpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	BorderStyle    = lipgloss.NewStyle().Foreground(colorBorder)
)
