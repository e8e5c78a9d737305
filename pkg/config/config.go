// Package config loads the stopwatch configuration file.
//
// The file is YAML. Every key is optional; missing keys keep their defaults:
//
//	tick_interval: 100ms
//	ruleset: standard
//	catalog_file: ""
//	warmup_seconds: 240
//	silent: false
//	event_log: ""
//	log_level: info
//
// Command-line flags are applied on top of the loaded file by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skatewatch/skatewatch-go/pkg/catalog"
)

// Tick interval bounds. Timing alerts need at least one tick per second.
const (
	DefaultTickInterval = 100 * time.Millisecond
	MinTickInterval     = 10 * time.Millisecond
	MaxTickInterval     = time.Second
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the stopwatch configuration.
type Config struct {
	// TickInterval is the display refresh and beeper cadence.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Ruleset names a built-in duration catalog.
	Ruleset string `yaml:"ruleset"`

	// CatalogFile is a YAML catalog to load instead of a built-in ruleset.
	CatalogFile string `yaml:"catalog_file"`

	// WarmupSeconds is the warmup length at start-up.
	WarmupSeconds int `yaml:"warmup_seconds"`

	// Silent disables button chirps at start-up.
	Silent bool `yaml:"silent"`

	// EventLog is the session log file (.swlog). Empty disables it.
	EventLog string `yaml:"event_log"`

	// LogLevel is the operational log level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval:  DefaultTickInterval,
		Ruleset:       catalog.DefaultRuleset,
		WarmupSeconds: catalog.DefaultWarmup,
		LogLevel:      "info",
	}
}

// Load reads the file at path over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.TickInterval < MinTickInterval || c.TickInterval > MaxTickInterval {
		return fmt.Errorf("%w: tick_interval %v outside [%v, %v]",
			ErrInvalidConfig, c.TickInterval, MinTickInterval, MaxTickInterval)
	}
	if c.CatalogFile == "" && c.Ruleset == "" {
		return fmt.Errorf("%w: one of ruleset or catalog_file is required", ErrInvalidConfig)
	}
	if c.WarmupSeconds < catalog.WarmupJumpFrom || c.WarmupSeconds%catalog.WarmupStep != 0 {
		return fmt.Errorf("%w: warmup_seconds %d must be a multiple of %d and at least %d",
			ErrInvalidConfig, c.WarmupSeconds, catalog.WarmupStep, catalog.WarmupJumpFrom)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Catalog loads the duration catalog: CatalogFile when set, otherwise the
// named built-in ruleset.
func (c Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogFile != "" {
		return catalog.LoadFile(c.CatalogFile)
	}
	return catalog.LoadBuiltin(c.Ruleset)
}

// Level returns the parsed log level. An invalid level yields Info.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return l, nil
}
