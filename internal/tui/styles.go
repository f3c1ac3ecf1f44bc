package tui

import "github.com/charmbracelet/lipgloss"

type timerStyles struct {
	border  lipgloss.Style
	title   lipgloss.Style
	caption lipgloss.Style
	accent  lipgloss.Style
	body    lipgloss.Style
}

func newTimerStyles(accent, border string) timerStyles {
	borderStyle := lipgloss.NewStyle()
	if border != "" {
		borderStyle = borderStyle.Foreground(lipgloss.Color(border))
	}

	return timerStyles{
		border:  borderStyle,
		title:   lipgloss.NewStyle().Bold(true),
		caption: lipgloss.NewStyle(),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		body:    lipgloss.NewStyle(),
	}
}
