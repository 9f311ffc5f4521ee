// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bureau-foundation/linebind/lib/shell"
)

// Factory produces the owner shared by a controller's handlers.
type Factory func() (any, error)

// Controller groups handlers under a prefix and a shared owner.
type Controller struct {
	// Name identifies the controller in error messages. Defaults to
	// Prefix, or "(default)" when both are empty.
	Name string

	// Prefix is typed before every handler name of the controller.
	// Empty for top-level commands.
	Prefix string

	// Factory produces the owner. Nil means the handlers are ownerless.
	Factory Factory

	Handlers []Handler
}

// Handler is a function with a reflected parameter struct, created by
// [Method] or [Func].
type Handler struct {
	name        string
	description string
	paramsType  reflect.Type
	invoke      func(owner any, params reflect.Value) error
}

// Method describes a handler that runs against the controller's owner.
// The owner must be of type O; a mismatch fails the call rather than
// panicking.
func Method[O any, P any](name, description string, run func(owner O, params *P) error) Handler {
	return Handler{
		name:        name,
		description: description,
		paramsType:  reflect.TypeFor[P](),
		invoke: func(owner any, params reflect.Value) error {
			var typed O
			if owner != nil {
				var ok bool
				typed, ok = owner.(O)
				if !ok {
					return fmt.Errorf("handler %s: owner is %T, want %s", name, owner, reflect.TypeFor[O]())
				}
			}
			return run(typed, params.Interface().(*P))
		},
	}
}

// Func describes a handler that needs no owner.
func Func[P any](name, description string, run func(params *P) error) Handler {
	return Handler{
		name:        name,
		description: description,
		paramsType:  reflect.TypeFor[P](),
		invoke: func(_ any, params reflect.Value) error {
			return run(params.Interface().(*P))
		},
	}
}

// spec reflects the handler's parameter struct and binds it to owner.
func (h Handler) spec(prefix string, owner any) (shell.HandlerSpec, error) {
	if h.invoke == nil {
		return shell.HandlerSpec{}, errors.New("zero Handler; use Method or Func")
	}
	fields, err := describeParams(h.paramsType)
	if err != nil {
		return shell.HandlerSpec{}, err
	}
	return shell.HandlerSpec{
		Owner:       owner,
		Prefix:      prefix,
		Name:        h.name,
		Description: h.description,
		Params:      fields.params,
		Handler: func(call *shell.Call) error {
			params := reflect.New(h.paramsType)
			if err := fields.fill(params.Elem(), call); err != nil {
				return fmt.Errorf("handler %s: %w", h.name, err)
			}
			return h.invoke(call.Owner, params)
		},
	}, nil
}

// Describe turns controllers into handler specs in declaration order.
// Each controller's factory is called once. A controller whose factory
// fails contributes no specs; a handler whose parameter struct cannot
// be described is skipped. Every failure is named in the returned
// error, and the specs that could be described are returned regardless.
func Describe(controllers ...Controller) ([]shell.HandlerSpec, error) {
	var specs []shell.HandlerSpec
	var failures []error

	for _, controller := range controllers {
		name := controller.displayName()

		var owner any
		if controller.Factory != nil {
			var err error
			owner, err = controller.Factory()
			if err != nil {
				failures = append(failures, fmt.Errorf("controller %s: creating owner: %w", name, err))
				continue
			}
		}

		for _, handler := range controller.Handlers {
			spec, err := handler.spec(controller.Prefix, owner)
			if err != nil {
				failures = append(failures, fmt.Errorf("controller %s: handler %q: %w", name, handler.name, err))
				continue
			}
			specs = append(specs, spec)
		}
	}
	return specs, errors.Join(failures...)
}

func (c Controller) displayName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Prefix != "":
		return c.Prefix
	default:
		return "(default)"
	}
}
