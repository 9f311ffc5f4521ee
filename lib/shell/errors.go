// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand matches every [UnknownCommandError].
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is wrapped by a [ParseError] for a Required
	// argument whose marker does not appear in the input.
	ErrMissingArgument = errors.New("missing required argument")

	// errPatternMismatch is wrapped by a [ParseError] when Parse is
	// handed a line the command's pattern cannot bind at all.
	errPatternMismatch = errors.New("input does not fit the command's pattern")
)

// UnknownCommandError reports an input line no command accepts.
type UnknownCommandError struct {
	Input string

	// Err is set when the line could not be tokenized (for example an
	// unterminated quote).
	Err error
}

func (e *UnknownCommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown command %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("unknown command %q", e.Input)
}

func (e *UnknownCommandError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrUnknownCommand].
func (e *UnknownCommandError) Is(target error) bool { return target == ErrUnknownCommand }

// ParseError reports a failure to turn a matched line into the
// command's argument list. No partial argument list is ever returned
// alongside a ParseError.
type ParseError struct {
	Command *Command

	// Argument is the argument being parsed, or nil when the failure
	// is not tied to a single argument.
	Argument *Argument

	// Input is the raw line as the user typed it.
	Input string

	Err error
}

func (e *ParseError) Error() string {
	if e.Argument != nil {
		return fmt.Sprintf("%s: argument %s: %v", e.Command.FullName(), e.Argument.Name(), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Command.FullName(), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BuildError reports a handler that could not be described as a
// [Command]. Prefix and Name are as declared, before normalization.
type BuildError struct {
	Prefix string
	Name   string
	Err    error
}

func (e *BuildError) Error() string {
	name := e.Name
	if e.Prefix != "" {
		name = e.Prefix + " " + e.Name
	}
	return fmt.Sprintf("building command %q: %v", name, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
