// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"cmp"
	"fmt"
	"strings"
	"unicode"

	"github.com/bureau-foundation/linebind/lib/convert"
)

// Kind classifies how an argument is located in the input line. The
// numeric order is the sort order of a command's argument list.
type Kind int

const (
	// Unspecified is only meaningful in a [ParamSpec]; it is treated
	// as Positional.
	Unspecified Kind = iota

	// Positional arguments are identified by their position directly
	// after the command name.
	Positional

	// Required arguments are identified by a marker token that must
	// appear in the input, followed by the value token.
	Required

	// Optional arguments are identified by a marker token that may be
	// omitted. Boolean parameters are always Optional and carry no
	// value token.
	Optional
)

func (k Kind) String() string {
	switch k {
	case Unspecified:
		return "unspecified"
	case Positional:
		return "positional"
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps the lower-case names produced by [Kind.String] back to
// a Kind. The empty string maps to Unspecified.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unspecified":
		return Unspecified, nil
	case "positional":
		return Positional, nil
	case "required":
		return Required, nil
	case "optional":
		return Optional, nil
	default:
		return Unspecified, fmt.Errorf("unknown argument kind %q", name)
	}
}

// ParamSpec describes one handler parameter as supplied by the binding
// layer.
type ParamSpec struct {
	// Name is the argument name. For Required and Optional arguments
	// it is also the marker token the user types (e.g. "-verbose").
	Name string

	Kind Kind

	// Type selects the converter. Empty means [convert.String].
	Type convert.Type

	Description string
}

// Argument is one parameter of a [Command]. It is immutable.
type Argument struct {
	name        string
	kind        Kind
	valueType   convert.Type
	description string
	position    int
	index       int
}

// newArgument classifies spec and checks that its type is convertible.
// nextPosition is advanced when the argument turns out to be
// Positional.
func newArgument(registry *convert.Registry, spec ParamSpec, index int, nextPosition *int) (*Argument, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, fmt.Errorf("parameter %d: empty name", index)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return nil, fmt.Errorf("parameter %d: name %q contains whitespace", index, name)
	}

	valueType := spec.Type
	if valueType == "" {
		valueType = convert.String
	}

	argument := &Argument{
		name:        name,
		valueType:   valueType,
		description: spec.Description,
		position:    -1,
		index:       index,
	}

	switch {
	case spec.Kind == Optional || valueType == convert.Bool:
		argument.kind = Optional
	case spec.Kind == Required:
		argument.kind = Required
	case spec.Kind == Positional || spec.Kind == Unspecified:
		argument.kind = Positional
		argument.position = *nextPosition
		*nextPosition++
	default:
		return nil, fmt.Errorf("parameter %s: invalid kind %v", name, spec.Kind)
	}

	if !registry.Has(valueType) {
		return nil, fmt.Errorf("parameter %s: %w", name, &convert.NoConverterError{Type: valueType})
	}
	return argument, nil
}

// Name returns the argument name, which is the marker token for
// Required and Optional arguments.
func (a *Argument) Name() string { return a.name }

// Kind returns the argument's classification.
func (a *Argument) Kind() Kind { return a.kind }

// Type returns the converter tag.
func (a *Argument) Type() convert.Type { return a.valueType }

// Description returns the human-readable description, possibly empty.
func (a *Argument) Description() string { return a.description }

// Position returns the index among positional arguments (offset by one
// when the command has a prefix), or -1 for non-positional arguments.
func (a *Argument) Position() int { return a.position }

// Index returns the parameter's declaration index.
func (a *Argument) Index() int { return a.index }

// IsFlag reports whether the argument is a boolean marker without a
// value token.
func (a *Argument) IsFlag() bool { return a.valueType == convert.Bool }

// String renders the argument as it appears in a usage line.
func (a *Argument) String() string {
	switch {
	case a.kind == Positional:
		return "<" + a.name + ">"
	case a.IsFlag():
		return "[" + a.name + "]"
	case a.kind == Required:
		return a.name + " <" + string(a.valueType) + ">"
	default:
		return "[" + a.name + " <" + string(a.valueType) + ">]"
	}
}

// CompareArguments orders Positional before Required before Optional.
// Used with a stable sort, it preserves declaration order within each
// kind.
func CompareArguments(a, b *Argument) int {
	return cmp.Compare(a.kind, b.kind)
}
