package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorTomato = lipgloss.Color("#FF6347")
	ColorGreen  = lipgloss.Color("#3CB371")
	ColorIndigo = lipgloss.Color("#7B68EE")
	ColorYellow = lipgloss.Color("#FFD700")
	ColorGray   = lipgloss.Color("#666666")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Padding(1, 0)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	RunningDotStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	IdleDotStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	CelebrationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorYellow)

	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorIndigo).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorTomato)

	FrameStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// accent is the colour of a session type.
func accent(label string) lipgloss.Color {
	switch label {
	case "Short Break":
		return ColorGreen
	case "Long Break":
		return ColorIndigo
	default:
		return ColorTomato
	}
}
