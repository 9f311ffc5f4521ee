// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/bureau-foundation/linebind/lib/convert"
)

// HandlerFunc is the procedure bound to a command. It receives the
// converted arguments in declaration order through call.
type HandlerFunc func(call *Call) error

// HandlerSpec describes a handler as produced by the binding layer.
type HandlerSpec struct {
	// Owner is the value the handler runs against. Nil for handlers
	// with no enclosing state.
	Owner any

	Handler HandlerFunc

	// Prefix groups commands; when set, the user types it before the
	// name.
	Prefix string

	Name        string
	Description string

	// Params lists the handler's parameters in declaration order.
	Params []ParamSpec
}

// Command is a handler bound to its prefix, name, arguments, pattern
// and signature. Commands are immutable once built.
type Command struct {
	owner       any
	handler     HandlerFunc
	prefix      string
	name        string
	description string
	arguments   []*Argument
	pattern     *Pattern
	signature   Signature
}

// NewCommand builds a command from spec. Every converter the arguments
// need must already be registered: a missing one fails here, wrapping
// [convert.ErrNoConverter], rather than on first use. All failures are
// returned as a *[BuildError].
func NewCommand(registry *convert.Registry, spec HandlerSpec) (*Command, error) {
	command, err := newCommand(registry, spec)
	if err != nil {
		return nil, &BuildError{Prefix: spec.Prefix, Name: spec.Name, Err: err}
	}
	return command, nil
}

func newCommand(registry *convert.Registry, spec HandlerSpec) (*Command, error) {
	if spec.Handler == nil {
		return nil, errors.New("nil handler")
	}
	prefix, err := normalizeName(spec.Prefix)
	if err != nil {
		return nil, fmt.Errorf("prefix: %w", err)
	}
	name, err := normalizeName(spec.Name)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if name == "" {
		return nil, errors.New("empty name")
	}

	nextPosition := 0
	if prefix != "" {
		nextPosition = 1
	}
	arguments := make([]*Argument, 0, len(spec.Params))
	seen := make(map[string]bool, len(spec.Params))
	for index, param := range spec.Params {
		argument, err := newArgument(registry, param, index, &nextPosition)
		if err != nil {
			return nil, err
		}
		if seen[argument.Name()] {
			return nil, fmt.Errorf("duplicate parameter name %q", argument.Name())
		}
		seen[argument.Name()] = true
		arguments = append(arguments, argument)
	}
	slices.SortStableFunc(arguments, CompareArguments)

	return &Command{
		owner:       spec.Owner,
		handler:     spec.Handler,
		prefix:      prefix,
		name:        name,
		description: spec.Description,
		arguments:   arguments,
		pattern:     compilePattern(prefix, name, arguments),
		signature:   newSignature(prefix, name, arguments),
	}, nil
}

// normalizeName trims surrounding whitespace and rejects names that
// would span several tokens.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "", fmt.Errorf("%q contains whitespace", name)
	}
	return name, nil
}

// Owner returns the value the handler runs against, or nil.
func (c *Command) Owner() any { return c.owner }

// Prefix returns the normalized prefix, empty when the command has none.
func (c *Command) Prefix() string { return c.prefix }

// HasPrefix reports whether the command has a prefix.
func (c *Command) HasPrefix() bool { return c.prefix != "" }

// Name returns the normalized command name.
func (c *Command) Name() string { return c.name }

// FullName returns the prefix and name joined by a space.
func (c *Command) FullName() string {
	if c.prefix == "" {
		return c.name
	}
	return c.prefix + " " + c.name
}

// Description returns the command description, possibly empty.
func (c *Command) Description() string { return c.description }

// Arguments returns the arguments sorted Positional, Required, Optional.
// The returned slice is a copy.
func (c *Command) Arguments() []*Argument { return slices.Clone(c.arguments) }

// Argument returns the argument with the given name, or nil.
func (c *Command) Argument(name string) *Argument {
	for _, argument := range c.arguments {
		if argument.name == name {
			return argument
		}
	}
	return nil
}

// Pattern returns the compiled matcher.
func (c *Command) Pattern() *Pattern { return c.pattern }

// Signature returns the suggestion signature.
func (c *Command) Signature() Signature { return c.signature }

// Likeness scores input against the signature; see [Signature.Likeness].
func (c *Command) Likeness(input string) int {
	return c.signature.Likeness(words(input))
}

// String returns the usage template.
func (c *Command) String() string { return c.pattern.String() }

// Call carries one invocation of a handler.
type Call struct {
	Command *Command
	Owner   any

	// Input is the raw line that selected the command.
	Input string

	// Args holds one value per parameter in declaration order. An
	// omitted non-boolean Optional argument is nil.
	Args []any
}

// Present reports whether the parameter at index received a value.
func (c *Call) Present(index int) bool {
	return index >= 0 && index < len(c.Args) && c.Args[index] != nil
}

// String returns the string value at index, or "" when absent.
func (c *Call) String(index int) string { return Arg[string](c, index) }

// Int returns the int value at index, or 0 when absent.
func (c *Call) Int(index int) int { return Arg[int](c, index) }

// Bool returns the boolean value at index.
func (c *Call) Bool(index int) bool { return Arg[bool](c, index) }

// Float64 returns the float64 value at index, or 0 when absent.
func (c *Call) Float64(index int) float64 { return Arg[float64](c, index) }

// Duration returns the duration value at index, or 0 when absent.
func (c *Call) Duration(index int) time.Duration { return Arg[time.Duration](c, index) }

// Strings returns the list value at index, or nil when absent.
func (c *Call) Strings(index int) []string { return Arg[[]string](c, index) }

// Arg returns the value at index as T. It returns the zero value when
// the parameter is absent or holds a different type.
func Arg[T any](call *Call, index int) T {
	var zero T
	if !call.Present(index) {
		return zero
	}
	value, ok := call.Args[index].(T)
	if !ok {
		return zero
	}
	return value
}

func (c *Command) invoke(input string, args []any) error {
	return c.handler(&Call{
		Command: c,
		Owner:   c.owner,
		Input:   input,
		Args:    args,
	})
}
