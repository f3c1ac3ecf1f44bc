package tui

import (
	"time"

	"github.com/tinytelemetry/focus/internal/model"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Clock abstracts the time source so tests can drive elapsed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default clock. Readings carry Go's monotonic component.
var SystemClock Clock = systemClock{}

// Options configures a TimerModel. Zero values fall back to defaults.
type Options struct {
	PollInterval time.Duration
	ShowProgress bool
	AccentColor  string
	BorderColor  string
	Clock        Clock
}

// TickMsg wakes the timer when no input arrived within the poll interval.
type TickMsg time.Time

// TimerModel is the countdown state machine. It moves from running to
// exited exactly once, on the quit key or when the target is reached.
type TimerModel struct {
	keys   KeyMap
	clock  Clock
	styles timerStyles

	pollInterval time.Duration
	showProgress bool
	progress     progress.Model

	start   time.Time
	target  uint64 // seconds
	elapsed uint64 // whole seconds at the last check

	exited bool
	reason model.ExitReason

	width  int
	height int
}

// NewTimerModel creates a running timer for target seconds. The start
// instant is taken here, so construction is the zero point.
func NewTimerModel(target uint64, opts Options) *TimerModel {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.PollInterval <= 0 || opts.PollInterval > model.MaxPollInterval {
		opts.PollInterval = model.DefaultPollInterval
	}
	if opts.AccentColor == "" {
		opts.AccentColor = model.DefaultAccentColor
	}

	return &TimerModel{
		keys:         DefaultKeyMap(),
		clock:        opts.Clock,
		styles:       newTimerStyles(opts.AccentColor, opts.BorderColor),
		pollInterval: opts.PollInterval,
		showProgress: opts.ShowProgress,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		start:        opts.Clock.Now(),
		target:       target,
	}
}

// Init schedules the first poll deadline.
func (m *TimerModel) Init() tea.Cmd {
	return m.tick()
}

func (m *TimerModel) tick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Exited reports whether the timer has stopped.
func (m *TimerModel) Exited() bool { return m.exited }

// Reason reports why the timer stopped.
func (m *TimerModel) Reason() model.ExitReason { return m.reason }

// Elapsed returns the whole seconds measured at the last check.
func (m *TimerModel) Elapsed() uint64 { return m.elapsed }

// Target returns the configured duration in seconds.
func (m *TimerModel) Target() uint64 { return m.target }

func (m *TimerModel) exit(reason model.ExitReason) {
	if m.exited {
		return
	}
	m.exited = true
	m.reason = reason
}
