package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinytelemetry/focus/internal/duration"
	"github.com/tinytelemetry/focus/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

// strictExitCode is returned for an invalid duration when strict mode is on.
const strictExitCode = 2

// exitError carries a process exit status without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// cli holds the collaborators the root command needs, so tests can replace
// the terminal and the timer runtime.
type cli struct {
	stdout     io.Writer
	isTerminal func() bool
	runTimer   func(m *tui.TimerModel) (*tui.TimerModel, error)
}

func newCLI() *cli {
	return &cli{
		stdout:     os.Stdout,
		isTerminal: stdioIsTerminal,
		runTimer: func(m *tui.TimerModel) (*tui.TimerModel, error) {
			return tui.Run(m)
		},
	}
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	if err := newCLI().rootCommand().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *cli) rootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "focus <duration>",
		Short: "Full-screen countdown timer",
		Long: `
focus shows an "Elapsed: N / TOTAL" panel until the duration has passed or
you press q. Durations are a whole number followed by s, m or h, for
example 90s, 25m or 2h.
`,
		Args:              cobra.ExactArgs(1),
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return c.runTimerCommand(cfg, args[0])
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf(
		"Focus - Terminal Countdown Timer\n  Version:    %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n",
		version, commit, buildTime, goVersion,
	))
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(c.stdout)

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/focus/config.yml)")
	cmd.Flags().Bool("strict", false, "exit with status 2 when the duration is invalid")
	cmd.Flags().Bool("progress", false, "show a progress bar under the elapsed time")
	cmd.Flags().String("log-file", "", `runtime log file ("-" disables logging)`)

	cmd.AddCommand(c.configCommand(&configPath))

	return cmd
}

func (c *cli) configCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(*configPath, nil)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			enc := yaml.NewEncoder(c.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}

// runTimerCommand parses raw and runs the timer. An invalid duration prints
// "ERROR: <message>" on stdout and exits 0 unless strict mode is on.
func (c *cli) runTimerCommand(cfg cliConfig, raw string) error {
	seconds, err := duration.Parse(raw)
	if err != nil {
		fmt.Fprintf(c.stdout, "ERROR: %v\n", err)
		if cfg.Strict {
			return &exitError{code: strictExitCode}
		}
		return nil
	}

	if !c.isTerminal() {
		return tui.ErrNoTerminal
	}

	closeLog := configureRuntimeLogger(cfg.LogFile)
	defer closeLog()

	if cfg.ConfigPath != "" {
		log.Printf("config: %s", cfg.ConfigPath)
	}

	timer := tui.NewTimerModel(seconds, tui.Options{
		PollInterval: cfg.PollInterval,
		ShowProgress: cfg.ShowProgress,
		AccentColor:  cfg.AccentColor,
		BorderColor:  cfg.BorderColor,
	})

	final, err := c.runTimer(timer)
	if err != nil {
		return err
	}

	log.Printf("timer: finished (%s) after %ds", final.Reason(), final.Elapsed())
	return nil
}
