package tui

import (
	"log"
	"time"

	"github.com/tinytelemetry/focus/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles one event: input first, then the elapsed check.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Nothing is processed once exited.
	if m.exited {
		return m, tea.Quit
	}

	ticked := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m.handleKeyPress(msg)

	case TickMsg:
		ticked = true
	}

	m.checkElapsed()

	if m.exited {
		log.Printf("timer: stopped (%s) at %d/%ds", m.reason, m.elapsed, m.target)
		return m, tea.Quit
	}

	// Only the tick chain reschedules itself, so there is one pending
	// deadline at a time.
	if ticked {
		return m, m.tick()
	}
	return m, nil
}

// handleKeyPress reacts to the quit binding. Every other key is ignored.
func (m *TimerModel) handleKeyPress(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Quit) {
		m.exit(model.ExitQuitKey)
	}
}

// checkElapsed refreshes the elapsed seconds and stops the timer once the
// target is reached. A delayed wake-up that skips the exact second still stops.
func (m *TimerModel) checkElapsed() {
	d := m.clock.Now().Sub(m.start)
	if d < 0 {
		d = 0
	}
	m.elapsed = uint64(d / time.Second)

	if m.elapsed >= m.target {
		m.exit(model.ExitElapsed)
	}
}
