package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultPollInterval = 1 * time.Second
	DefaultAccentColor  = "12"
	DefaultBorderColor  = ""
	DefaultLogDir       = ".local/state/focus"
	DefaultLogFile      = "focus.log"
	DefaultConfigDir    = ".config/focus"
	DefaultConfigFile   = "config.yml"

	// MaxPollInterval bounds the wait between elapsed checks.
	MaxPollInterval = 1 * time.Second
)

// ExitReason records why a timer stopped.
type ExitReason int

const (
	ExitNone ExitReason = iota
	ExitQuitKey
	ExitElapsed
)

func (r ExitReason) String() string {
	switch r {
	case ExitQuitKey:
		return "quit key"
	case ExitElapsed:
		return "elapsed"
	default:
		return "running"
	}
}
