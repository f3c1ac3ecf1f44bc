package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	panelTitle = " Focus "

	// Used until the first WindowSizeMsg arrives.
	fallbackWidth  = 40
	fallbackHeight = 7

	minPanelWidth  = 20
	minPanelHeight = 3

	maxProgressWidth = 40
)

// View renders the current state. It only reads stored state, so two calls
// without an Update in between return the same frame.
func (m *TimerModel) View() string {
	return m.render(m.width, m.height)
}

func (m *TimerModel) render(width, height int) string {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}

	body := m.styles.body.Render(m.elapsedText())

	if width < minPanelWidth || height < minPanelHeight {
		return body
	}

	innerWidth := width - 2
	innerHeight := height - 2

	content := body
	if m.showProgress && innerHeight >= 3 {
		content = lipgloss.JoinVertical(lipgloss.Center, body, "", m.renderProgress(innerWidth))
	}

	border := lipgloss.ThickBorder()

	top := m.borderLine(border.TopLeft, border.Top, border.TopRight, m.styles.title.Render(panelTitle), innerWidth)
	bottom := m.borderLine(border.BottomLeft, border.Bottom, border.BottomRight, m.renderCaption(), innerWidth)

	middle := lipgloss.NewStyle().
		Border(border, false, true).
		BorderForeground(m.styles.border.GetForeground()).
		Render(lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, content))

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// elapsedText is the body line, e.g. "Elapsed: 12 / 1500".
func (m *TimerModel) elapsedText() string {
	return fmt.Sprintf("Elapsed: %d / %d", m.elapsed, m.target)
}

// renderCaption renders " Quit <Q> " for the bottom border.
func (m *TimerModel) renderCaption() string {
	return m.styles.caption.Render(" Quit ") + m.styles.accent.Render("<"+m.keys.quitLabel()+"> ")
}

// renderProgress renders the optional progress bar. A zero target counts as done.
func (m *TimerModel) renderProgress(innerWidth int) string {
	percent := 1.0
	if m.target > 0 {
		percent = min(float64(m.elapsed)/float64(m.target), 1.0)
	}

	bar := m.progress
	bar.Width = max(min(innerWidth-4, maxProgressWidth), 1)
	return bar.ViewAs(percent)
}

// borderLine draws a horizontal border with label centered in it. The label
// is dropped when it does not fit.
func (m *TimerModel) borderLine(left, fill, right, label string, innerWidth int) string {
	labelWidth := lipgloss.Width(label)
	if labelWidth > innerWidth {
		label = ""
		labelWidth = 0
	}

	leftFill := (innerWidth - labelWidth) / 2
	rightFill := innerWidth - labelWidth - leftFill

	return m.styles.border.Render(left+strings.Repeat(fill, leftFill)) +
		label +
		m.styles.border.Render(strings.Repeat(fill, rightFill)+right)
}
