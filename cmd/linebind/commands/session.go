// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/linebind/cmd/linebind/demo"
	"github.com/bureau-foundation/linebind/lib/config"
	"github.com/bureau-foundation/linebind/lib/console"
	"github.com/bureau-foundation/linebind/lib/convert"
)

// sessionFlags are the flags shared by every command that opens a
// session.
type sessionFlags struct {
	configPath string
	color      string
	logLevel   string
}

func (f *sessionFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.configPath, "config", "", "path to a YAML or JSONC config file (default $"+config.EnvVar+")")
	flagSet.StringVar(&f.color, "color", "", "override the color mode: auto, always, or never")
	flagSet.StringVar(&f.logLevel, "log-level", "", "override the log level: debug, info, warn, or error")
}

// loadConfig reads --config, then $LINEBIND_CONFIG, and falls back to
// defaults when neither is set. Flag overrides are applied last.
func (f *sessionFlags) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case f.configPath != "":
		cfg, err = config.LoadFile(f.configPath)
	case os.Getenv(config.EnvVar) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if f.color != "" {
		cfg.Color = f.color
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession builds a session over the demo handlers reading from in.
func (f *sessionFlags) openSession(streams Streams, in io.Reader, configure func(*config.Config)) (*console.Session, *slog.Logger, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if configure != nil {
		configure(cfg)
	}

	logger, err := console.NewLogger(streams.Err, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	specs, err := demo.Specs(streams.Out)
	if err != nil {
		return nil, nil, err
	}
	session, err := console.NewSession(convert.NewRegistry(), specs,
		console.New(in, streams.Out, streams.Err), cfg, logger)
	if err != nil {
		// Excluded commands are logged by the dispatcher; the session
		// still serves the rest.
		logger.Warn("some commands are unavailable", "error", err)
	}
	return session, logger, nil
}
