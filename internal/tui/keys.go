package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the timer key bindings with built-in help text.
// Quit is the only binding that stops the timer; ctrl+c arrives as an
// ordinary key in raw mode and is ignored like any other.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// quitLabel is the key shown in the bottom caption, e.g. "Q".
func (k KeyMap) quitLabel() string {
	return strings.ToUpper(k.Quit.Help().Key)
}
