// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/linebind/lib/convert"
)

// Dispatcher matches input lines against a fixed set of commands. When
// more than one command accepts a line, the first registered wins; the
// same rule breaks ties between equally likely suggestions.
type Dispatcher struct {
	commands []*Command
	parser   *Parser
	logger   *slog.Logger
}

// NewDispatcher returns a dispatcher over commands in the given order.
// registry must be the one the commands were built with. Commands that
// share a prefix and name are kept, with a warning, and the later one
// only receives lines the earlier one rejects.
func NewDispatcher(registry *convert.Registry, commands []*Command, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seen := make(map[string]bool, len(commands))
	for _, command := range commands {
		if seen[command.FullName()] {
			logger.Warn("duplicate command name, first registered wins on ambiguous input",
				"command", command.FullName())
		}
		seen[command.FullName()] = true
	}
	return &Dispatcher{
		commands: slices.Clone(commands),
		parser:   NewParser(registry),
		logger:   logger,
	}
}

// Compile builds a command from every spec and returns a dispatcher
// over those that succeeded. A spec that fails is logged and excluded;
// its *[BuildError] is included in the returned error, which joins all
// failures. The dispatcher is usable whether or not err is nil.
func Compile(registry *convert.Registry, specs []HandlerSpec, logger *slog.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var commands []*Command
	var failures []error
	for _, spec := range specs {
		command, err := NewCommand(registry, spec)
		if err != nil {
			logger.Error("excluding command", "prefix", spec.Prefix, "name", spec.Name, "error", err)
			failures = append(failures, err)
			continue
		}
		logger.Debug("compiled command", "command", command.FullName(), "pattern", command.Pattern().String())
		commands = append(commands, command)
	}
	return NewDispatcher(registry, commands, logger), errors.Join(failures...)
}

// Commands returns the commands in registration order.
func (d *Dispatcher) Commands() []*Command { return slices.Clone(d.commands) }

// Parser returns the parser the dispatcher converts arguments with.
func (d *Dispatcher) Parser() *Parser { return d.parser }

// Match returns the first command whose pattern accepts input, or an
// *[UnknownCommandError].
func (d *Dispatcher) Match(input string) (*Command, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, &UnknownCommandError{Input: input, Err: err}
	}
	for _, command := range d.commands {
		if command.pattern.Match(tokens) {
			return command, nil
		}
	}
	return nil, &UnknownCommandError{Input: input}
}

// Suggest returns the command most like input: the one whose signature
// shares the most distinct words with it. Ties keep the first
// registered. Returns nil when no command shares a single word.
func (d *Dispatcher) Suggest(input string) *Command {
	inputWords := words(input)
	var best *Command
	bestScore := 0
	for _, command := range d.commands {
		score := command.signature.Likeness(inputWords)
		if score > bestScore {
			best, bestScore = command, score
		}
	}
	return best
}

// Likeness scores how much input resembles command: the number of
// distinct whitespace-separated words of input found in the command's
// signature.
func (d *Dispatcher) Likeness(command *Command, input string) int {
	return command.Likeness(input)
}

// Accept matches input, parses it and invokes the selected handler.
//
// When no pattern accepts the line but one would if its Required
// markers were optional, the line is parsed against that command so the
// caller receives a *[ParseError] naming the missing argument rather
// than an *[UnknownCommandError]. Errors returned by the handler are
// passed through unchanged.
func (d *Dispatcher) Accept(input string) error {
	command, err := d.Match(input)
	if err != nil {
		command = d.matchIgnoringRequired(input)
		if command == nil {
			return err
		}
	}

	args, err := d.parser.Parse(command, input)
	if err != nil {
		d.logger.Debug("parse failed", "command", command.FullName(), "error", err)
		return err
	}

	d.logger.Debug("dispatching", "command", command.FullName())
	return command.invoke(input, args)
}

func (d *Dispatcher) matchIgnoringRequired(input string) *Command {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil
	}
	for _, command := range d.commands {
		if _, ok := command.pattern.bind(tokens, false); ok {
			return command
		}
	}
	return nil
}
