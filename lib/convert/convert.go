// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"slices"
	"sync"
)

// Type is a tag naming the semantic type a token converts to. The
// builtin tags are declared below; callers may register converters
// under any other tag.
type Type string

const (
	String   Type = "string"
	Bool     Type = "bool"
	Int      Type = "int"
	Int64    Type = "int64"
	Uint     Type = "uint"
	Float64  Type = "float64"
	Duration Type = "duration"
	Strings  Type = "strings"
	UUID     Type = "uuid"
	Bytes    Type = "bytes"
)

// Converter parses token into a value of the type it is registered for.
type Converter func(token string) (any, error)

// Registry maps type tags to converters.
type Registry struct {
	mu         sync.RWMutex
	converters map[Type]Converter
}

// NewRegistry returns a registry preloaded with converters for every
// builtin tag.
func NewRegistry() *Registry {
	registry := NewEmptyRegistry()
	for tag, converter := range builtins() {
		registry.converters[tag] = converter
	}
	return registry
}

// NewEmptyRegistry returns a registry with no converters. [Bool] is
// still available: flags never consult the registry, and an explicit
// Convert to Bool falls back to [strconv.ParseBool].
func NewEmptyRegistry() *Registry {
	return &Registry{converters: make(map[Type]Converter)}
}

// Register associates converter with tag, replacing any previous entry.
// Panics on a nil converter or an empty tag (programming error).
func (r *Registry) Register(tag Type, converter Converter) {
	if tag == "" {
		panic("convert: Register called with an empty type tag")
	}
	if converter == nil {
		panic("convert: Register called with a nil converter for " + string(tag))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[tag] = converter
}

// Has reports whether a token can be converted to tag. It is always
// true for [Bool].
func (r *Registry) Has(tag Type) bool {
	if tag == Bool {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.converters[tag]
	return ok
}

// Convert parses token as tag. A registered [Bool] converter replaces
// the [strconv.ParseBool] fallback.
func (r *Registry) Convert(token string, tag Type) (any, error) {
	r.mu.RLock()
	converter, ok := r.converters[tag]
	r.mu.RUnlock()
	switch {
	case !ok && tag == Bool:
		converter = parseBool
	case !ok:
		return nil, &NoConverterError{Type: tag}
	}

	value, err := converter(token)
	if err != nil {
		return nil, &ConversionError{Type: tag, Token: token, Err: err}
	}
	return value, nil
}

// Types returns the registered tags in lexical order.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]Type, 0, len(r.converters))
	for tag := range r.converters {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
