package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/focus/internal/model"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultPollInterval = model.DefaultPollInterval
	defaultAccentColor  = model.DefaultAccentColor
	defaultBorderColor  = model.DefaultBorderColor

	// logDisabled as log-file turns file logging off.
	logDisabled = "-"
)

// cliConfig holds the timer configuration.
type cliConfig struct {
	PollInterval time.Duration `mapstructure:"poll-interval" yaml:"poll-interval"`
	Strict       bool          `mapstructure:"strict" yaml:"strict"`
	ShowProgress bool          `mapstructure:"show-progress" yaml:"show-progress"`
	AccentColor  string        `mapstructure:"accent-color" yaml:"accent-color"`
	BorderColor  string        `mapstructure:"border-color" yaml:"border-color"`
	LogFile      string        `mapstructure:"log-file" yaml:"log-file"`

	ConfigPath string `mapstructure:"-" yaml:"-"`
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"strict":   "strict",
	"progress": "show-progress",
	"log-file": "log-file",
}

func loadCLIConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FOCUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("poll-interval", defaultPollInterval)
	v.SetDefault("strict", false)
	v.SetDefault("show-progress", false)
	v.SetDefault("accent-color", defaultAccentColor)
	v.SetDefault("border-color", defaultBorderColor)
	v.SetDefault("log-file", filepath.Join(home, model.DefaultLogDir, model.DefaultLogFile))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, model.DefaultConfigDir, model.DefaultConfigFile))
	}

	configRead := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		configRead = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	// ConfigFileUsed reports the configured path even when it was missing.
	if configRead {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	if cfg.PollInterval <= 0 || cfg.PollInterval > model.MaxPollInterval {
		return cfg, fmt.Errorf("invalid poll-interval: %s (must be > 0 and <= %s)", cfg.PollInterval, model.MaxPollInterval)
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}
