package main

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrHelpRequested is returned when the user requests --help.
var ErrHelpRequested = errors.New("help requested")

// Loader parses CLI flags and an optional YAML config file into a Config.
type Loader struct{}

// NewLoader returns a ready-to-use Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses args and produces a Config, applying flag overrides on top
// of whatever the config file set.
func (Loader) Load(args []string) (*Config, error) {
	cmd := newFlagCommand()
	if err := cmd.Flags().Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelpRequested
		}
		return nil, err
	}
	flags := cmd.Flags()

	cfg := &Config{
		TickRate: 16666667 * time.Nanosecond, // ~60 Hz default
		Frames:   60,
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = configPath
	}

	if sid, _ := flags.GetString("session-id"); sid != "" {
		cfg.SessionID = sid
	}
	if rate, _ := flags.GetDuration("tick-rate"); rate != 0 {
		cfg.TickRate = rate
	}
	if frames, _ := flags.GetInt("frames"); frames != 0 {
		cfg.Frames = frames
	}
	if quiet, _ := flags.GetBool("quiet"); quiet {
		cfg.Quiet = true
	}

	return cfg, nil
}
