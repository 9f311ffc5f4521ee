// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/linebind/lib/binding"
	"github.com/bureau-foundation/linebind/lib/catalog"
	"github.com/bureau-foundation/linebind/lib/config"
	"github.com/bureau-foundation/linebind/lib/convert"
	"github.com/bureau-foundation/linebind/lib/shell"
)

// Session reads lines from a console and dispatches them.
type Session struct {
	console    *Console
	config     *config.Config
	dispatcher *shell.Dispatcher
	catalog    *catalog.Catalog
	format     *Formatter
	errFormat  *Formatter
	logger     *slog.Logger
}

// NewSession compiles specs, plus the builtin help command when
// cfg.Help is set, into a session over console. A nil cfg uses
// [config.Default]; a nil logger discards.
//
// Specs that fail to compile are excluded and reported in the returned
// error. The session is usable whether or not err is nil.
func NewSession(registry *convert.Registry, specs []shell.HandlerSpec, console *Console, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	// Each stream gets its own renderer; color detection follows the
	// writer the text is printed to.
	session := &Session{
		console:   console,
		config:    cfg,
		format:    NewFormatter(console.Out(), cfg.Color, console.Width()),
		errFormat: NewFormatter(console.Err(), cfg.Color, console.Width()),
		logger:    logger,
	}

	var failures []error
	if cfg.Help {
		helpSpecs, err := binding.Describe(helpController(session))
		if err != nil {
			failures = append(failures, err)
		}
		specs = append(specs[:len(specs):len(specs)], helpSpecs...)
	}

	dispatcher, err := shell.Compile(registry, specs, logger)
	if err != nil {
		failures = append(failures, err)
	}
	session.dispatcher = dispatcher
	session.catalog = catalog.FromDispatcher(dispatcher)
	return session, errors.Join(failures...)
}

// Dispatcher returns the session's dispatcher.
func (s *Session) Dispatcher() *shell.Dispatcher { return s.dispatcher }

// Catalog returns the catalog of every command the session accepts,
// including the builtin help command when enabled.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Formatter returns the formatter the session writes output with.
func (s *Session) Formatter() *Formatter { return s.format }

// Accept dispatches one line and reports any failure on the console.
// The returned error is the dispatcher's: an *[shell.UnknownCommandError],
// a *[shell.ParseError], or the handler's own error. A blank line is
// ignored.
func (s *Session) Accept(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	err := s.dispatcher.Accept(line)
	if err == nil {
		return nil
	}

	var unknown *shell.UnknownCommandError
	var parseError *shell.ParseError
	switch {
	case errors.As(err, &unknown):
		s.reportUnknown(line)
	case errors.As(err, &parseError):
		s.console.PrintErr(s.errFormat.ParseError(parseError))
	default:
		s.logger.Debug("handler failed", "input", line, "error", err)
		s.console.PrintErr(s.errFormat.HandlerError(s.commandName(line), err))
	}
	return err
}

func (s *Session) reportUnknown(line string) {
	if s.config.Suggest {
		if command := s.dispatcher.Suggest(line); command != nil {
			s.console.Println(s.format.Suggestion(line, s.entryFor(command)))
			return
		}
	}
	s.console.PrintErr(s.errFormat.Unknown(line))
}

// entryFor returns the catalog entry describing command. The catalog
// is built from the dispatcher, so entries line up with its commands.
func (s *Session) entryFor(command *shell.Command) catalog.Entry {
	for i, candidate := range s.dispatcher.Commands() {
		if candidate == command {
			return s.catalog.Commands[i]
		}
	}
	return catalog.New([]*shell.Command{command}).Commands[0]
}

// Run reads and accepts lines until end of input, the exit word, or
// cancellation of ctx. Failures of individual lines are reported on the
// console and do not end the session; a read error other than end of
// input, or the context's error, is returned.
//
// Lines are read on a separate goroutine, one per prompt, so that
// cancellation ends the session while a read is blocked. A read still
// pending at that point is abandoned and its line is never run.
func (s *Session) Run(ctx context.Context) error {
	requests := make(chan struct{})
	results := make(chan readResult, 1)
	defer close(requests)
	go s.readLines(requests, results)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.console.Print(s.config.Prompt)
		requests <- struct{}{}

		var result readResult
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled while reading")
			return ctx.Err()
		case result = <-results:
		}
		if result.err != nil {
			if errors.Is(result.err, io.EOF) {
				return nil
			}
			return result.err
		}

		if strings.TrimSpace(result.line) == s.config.ExitCommand {
			s.logger.Debug("exit word received")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.Accept(result.line)
	}
}

// readResult is one line, or the error that ended reading.
type readResult struct {
	line string
	err  error
}

// readLines reads one line per request until requests is closed or a
// read fails. results must have room for one pending result so that an
// abandoned read never blocks.
func (s *Session) readLines(requests <-chan struct{}, results chan<- readResult) {
	for range requests {
		line, err := s.console.ReadLine()
		results <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// commandName names the command line selects, for handler errors.
func (s *Session) commandName(line string) string {
	if command, err := s.dispatcher.Match(line); err == nil {
		return command.FullName()
	}
	if command := s.dispatcher.Suggest(line); command != nil {
		return command.FullName()
	}
	return strings.Fields(line)[0]
}
