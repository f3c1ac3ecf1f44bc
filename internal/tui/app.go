package tui

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoTerminal is returned when the program cannot take over a terminal.
var ErrNoTerminal = errors.New("focus requires a real terminal")

// Run takes over the screen and drives m until it exits. Bubble Tea restores
// the terminal before Run returns, on success and on error. Extra options are
// appended after the alternate-screen option.
func Run(m *TimerModel, opts ...tea.ProgramOption) (*TimerModel, error) {
	log.Printf("timer: started target=%ds poll=%s", m.target, m.pollInterval)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if err != nil {
		log.Printf("timer: program error: %v", err)
		return m, runError(err)
	}

	if tm, ok := final.(*TimerModel); ok {
		return tm, nil
	}
	return m, nil
}

// runError wraps a program failure. Failing to open the terminal device is
// reported as ErrNoTerminal; anything else is a fatal I/O error. The cause
// stays reachable through errors.Is in both cases.
func runError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "open" {
		return fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	return fmt.Errorf("running timer: %w", err)
}
