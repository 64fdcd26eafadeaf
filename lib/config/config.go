// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable Load reads the config path
// from.
const EnvironmentVariable = "FLEETWIRE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Log formats accepted in LogConfig.Format.
const (
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the master configuration for the fleetwire tools.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Envelope configures envelope decoding and admission.
	Envelope EnvelopeConfig `yaml:"envelope"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
// Empty strings and nil pointers leave the base value in place.
type ConfigOverrides struct {
	Log      *LogConfig              `yaml:"log,omitempty"`
	Envelope *EnvelopeOverrideConfig `yaml:"envelope,omitempty"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`

	// Format is auto, text, or json.
	// Default: auto
	Format string `yaml:"format"`
}

// EnvelopeConfig configures envelope decoding and admission.
type EnvelopeConfig struct {
	// Format is the output format for converted envelopes: json or cbor.
	// Input format is always chosen by file extension.
	// Default: json
	Format string `yaml:"format"`

	// CheckExpiry rejects envelopes whose time to live has elapsed.
	// Default: true
	CheckExpiry bool `yaml:"check_expiry"`

	// Workers bounds concurrent admission. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// EnvelopeOverrideConfig is EnvelopeConfig with every field optional.
type EnvelopeOverrideConfig struct {
	Format      string `yaml:"format,omitempty"`
	CheckExpiry *bool  `yaml:"check_expiry,omitempty"`
	Workers     *int   `yaml:"workers,omitempty"`
}

// Default returns the default configuration. LoadFile decodes the
// file on top of it.
func Default() *Config {
	return &Config{
		Environment: Development,
		Log: LogConfig{
			Level:  "info",
			Format: FormatAuto,
		},
		Envelope: EnvelopeConfig{
			Format:      "json",
			CheckExpiry: true,
		},
	}
}

// Load loads configuration from the file named by FLEETWIRE_CONFIG.
// There is no discovery: if the variable is unset, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your fleetwire.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// section for the configured environment, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: machine-readable logs.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Log: &LogConfig{Format: FormatJSON},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}

	if overrides.Envelope != nil {
		if overrides.Envelope.Format != "" {
			c.Envelope.Format = overrides.Envelope.Format
		}
		if overrides.Envelope.CheckExpiry != nil {
			c.Envelope.CheckExpiry = *overrides.Envelope.CheckExpiry
		}
		if overrides.Envelope.Workers != nil {
			c.Envelope.Workers = *overrides.Envelope.Workers
		}
	}
}

// Validate checks the configuration for errors. Every problem is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	logFormats := []string{FormatAuto, FormatText, FormatJSON}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	envelopeFormats := []string{"json", "cbor"}
	if !slices.Contains(envelopeFormats, c.Envelope.Format) {
		errs = append(errs, fmt.Errorf("envelope.format must be one of: %v", envelopeFormats))
	}

	if c.Envelope.Workers < 0 {
		errs = append(errs, fmt.Errorf("envelope.workers must not be negative, got %d", c.Envelope.Workers))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level. An empty level is info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
