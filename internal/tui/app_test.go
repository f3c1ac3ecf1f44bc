package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/focus/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func runWithTimeout(t *testing.T, m *TimerModel, opts ...tea.ProgramOption) (*TimerModel, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	opts = append([]tea.ProgramOption{tea.WithOutput(io.Discard)}, opts...)
	opts = append(opts, tea.WithContext(ctx), tea.WithoutSignalHandler())
	return Run(m, opts...)
}

func TestRun_ZeroTargetTerminatesWithoutInput(t *testing.T) {
	m := NewTimerModel(0, Options{PollInterval: 10 * time.Millisecond, Clock: newFakeClock()})

	var out bytes.Buffer
	final, err := runWithTimeout(t, m, tea.WithInput(nil), tea.WithOutput(&out))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !final.Exited() || final.Reason() != model.ExitElapsed {
		t.Errorf("exited=%v reason=%s, want elapsed", final.Exited(), final.Reason())
	}
	if frame := ansi.Strip(out.String()); !strings.Contains(frame, "Elapsed: 0 / 0") {
		t.Errorf("no frame rendered before exit, output:\n%s", frame)
	}
}

func TestRun_ElapsedWithRealClock(t *testing.T) {
	start := time.Now()
	m := NewTimerModel(1, Options{PollInterval: 50 * time.Millisecond})

	final, err := runWithTimeout(t, m, tea.WithInput(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Reason() != model.ExitElapsed {
		t.Errorf("reason = %s, want elapsed", final.Reason())
	}
	if took := time.Since(start); took < time.Second {
		t.Errorf("one-second timer stopped after %s", took)
	}
}

func TestRun_QuitKey(t *testing.T) {
	m := NewTimerModel(3600, Options{})

	final, err := runWithTimeout(t, m, tea.WithInput(strings.NewReader("q")))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Reason() != model.ExitQuitKey {
		t.Errorf("reason = %s, want quit key", final.Reason())
	}
}

func TestRun_InputFailureIsFatal(t *testing.T) {
	boom := errors.New("input device gone")
	m := NewTimerModel(3600, Options{})

	_, err := runWithTimeout(t, m, tea.WithInput(failingReader{err: boom}))
	if err == nil {
		t.Fatal("Run() returned nil after input failure")
	}
	if errors.Is(err, ErrNoTerminal) {
		t.Errorf("input failure reported as %v", err)
	}
	if !strings.Contains(err.Error(), "running timer") {
		t.Errorf("error = %v, want wrapped runtime error", err)
	}
}

func TestRun_TerminalReadFailureKeepsCause(t *testing.T) {
	boom := errors.New("read /dev/tty: input/output error")
	m := NewTimerModel(3600, Options{})

	_, err := runWithTimeout(t, m, tea.WithInput(failingReader{err: boom}))
	if err == nil {
		t.Fatal("Run() returned nil after input failure")
	}
	if errors.Is(err, ErrNoTerminal) {
		t.Errorf("read failure reported as missing terminal: %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want cause %v", err, boom)
	}
}

func TestRunError(t *testing.T) {
	openErr := &os.PathError{Op: "open", Path: "/dev/tty", Err: fs.ErrNotExist}
	readErr := &os.PathError{Op: "read", Path: "/dev/tty", Err: errors.New("input/output error")}

	tests := []struct {
		name       string
		err        error
		noTerminal bool
	}{
		{"open tty", fmt.Errorf("could not open a new TTY: %w", openErr), true},
		{"read tty", fmt.Errorf("error reading input: %w", readErr), false},
		{"other", errors.New("renderer failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runError(tt.err)
			if errors.Is(got, ErrNoTerminal) != tt.noTerminal {
				t.Errorf("runError(%v) = %v, ErrNoTerminal match want %v", tt.err, got, tt.noTerminal)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("runError(%v) lost the cause: %v", tt.err, got)
			}
		})
	}
}
