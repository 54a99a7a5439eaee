package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("212")
	ColorAccent  = lipgloss.Color("99")
	ColorSuccess = lipgloss.Color("78")
	ColorDanger  = lipgloss.Color("203")
	ColorMuted   = lipgloss.Color("245")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 2)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(30)

	NetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
