// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConverter matches every [NoConverterError] via errors.Is.
	ErrNoConverter = errors.New("no converter registered")

	// ErrConversionFailed matches every [ConversionError] via errors.Is.
	ErrConversionFailed = errors.New("conversion failed")
)

// NoConverterError reports a lookup for a type tag that has no
// registered converter.
type NoConverterError struct {
	Type Type
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("no converter registered for type %q", e.Type)
}

// Is reports whether target is [ErrNoConverter].
func (e *NoConverterError) Is(target error) bool { return target == ErrNoConverter }

// ConversionError reports a token that the registered converter for
// Type could not parse.
type ConversionError struct {
	// Type is the tag the token was converted to.
	Type Type

	// Token is the raw text as the user typed it.
	Token string

	// Err is the converter's own error.
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot convert %q to %s", e.Token, e.Type)
	}
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Token, e.Type, e.Err)
}

// Unwrap returns the converter's error.
func (e *ConversionError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrConversionFailed].
func (e *ConversionError) Is(target error) bool { return target == ErrConversionFailed }
