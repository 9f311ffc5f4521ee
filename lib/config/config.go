// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config path
// from.
const EnvVar = "LINEBIND_CONFIG"

// Config is the configuration of an interactive session.
type Config struct {
	// Prompt is written before every line is read.
	Prompt string `yaml:"prompt"`

	// ExitCommand ends the session when typed on its own.
	ExitCommand string `yaml:"exit_command"`

	// Suggest enables printing the closest command's usage when a line
	// matches no command.
	Suggest bool `yaml:"suggest"`

	// Help registers the builtin --help command.
	Help bool `yaml:"help"`

	// Color selects styled output: "auto" (when stdout is a terminal),
	// "always", or "never".
	Color string `yaml:"color"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the session logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "auto" (text on a terminal, JSON otherwise), "text",
	// or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		ExitCommand: "exit",
		Suggest:     true,
		Help:        true,
		Color:       "auto",
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by LINEBIND_CONFIG. It
// fails when the variable is unset; callers that want defaults in that
// case use [Default] directly.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a config file, or use --config", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, layered over [Default], and
// validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data layered over [Default] and validates the result.
// extension selects JSONC comment stripping for ".json" and ".jsonc".
func Parse(data []byte, extension string) (*Config, error) {
	switch strings.ToLower(extension) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ExitCommand) == "" {
		errs = append(errs, errors.New("exit_command must not be empty"))
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("invalid color %q (want auto, always, or never)", c.Color))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log.level %q (want debug, info, warn, or error)", c.Log.Level))
	}

	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log.format %q (want auto, text, or json)", c.Log.Format))
	}

	return errors.Join(errs...)
}
