package main

import "time"

// RepeatConfig describes a runner's repeat policy. Kind is one of
// "infinitely", "infinitely_counted" or "times"; Limit is only meaningful
// for "times". Style is "wrap_around" or "ping_pong".
type RepeatConfig struct {
	Kind  string `mapstructure:"kind" yaml:"kind"`
	Limit int64  `mapstructure:"limit" yaml:"limit"`
	Style string `mapstructure:"style" yaml:"style"`
}

// SpanConfig describes one TimeSpan attached to a runner.
type SpanConfig struct {
	Name         string  `mapstructure:"name" yaml:"name"`
	MinSeconds   float64 `mapstructure:"min_seconds" yaml:"min_seconds"`
	MinInclusive bool    `mapstructure:"min_inclusive" yaml:"min_inclusive"`
	MaxSeconds   float64 `mapstructure:"max_seconds" yaml:"max_seconds"`
	MaxInclusive bool    `mapstructure:"max_inclusive" yaml:"max_inclusive"`
}

// RunnerConfig describes one TimeRunner and its attached spans.
type RunnerConfig struct {
	Name          string        `mapstructure:"name" yaml:"name"`
	LengthSeconds float64       `mapstructure:"length_seconds" yaml:"length_seconds"`
	Direction     string        `mapstructure:"direction" yaml:"direction"`
	TimeScale     float64       `mapstructure:"time_scale" yaml:"time_scale"`
	Repeat        *RepeatConfig `mapstructure:"repeat" yaml:"repeat"`
	Spans         []SpanConfig  `mapstructure:"spans" yaml:"spans"`
}

// Config is the full timeline description loaded from YAML and overridden
// by flags.
type Config struct {
	SessionID  string         `mapstructure:"session_id" yaml:"session_id"`
	ConfigFile string         `mapstructure:"-" yaml:"-"`
	TickRate   time.Duration  `mapstructure:"tick_rate" yaml:"tick_rate"`
	Frames     int            `mapstructure:"frames" yaml:"frames"`
	Quiet      bool           `mapstructure:"quiet" yaml:"quiet"`
	Runners    []RunnerConfig `mapstructure:"runners" yaml:"runners"`
}
