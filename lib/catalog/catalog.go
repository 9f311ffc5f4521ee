// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/bureau-foundation/linebind/lib/shell"
)

// FormatVersion is the version of the catalog layout. Decoders reject
// catalogs with a different version.
const FormatVersion = 1

// Catalog is the serializable description of a command set.
type Catalog struct {
	Version  int     `json:"version"  cbor:"version"`
	Commands []Entry `json:"commands" cbor:"commands"`
}

// Entry describes one command.
type Entry struct {
	Prefix      string     `json:"prefix,omitempty"      cbor:"prefix,omitempty"`
	Name        string     `json:"name"                  cbor:"name"`
	Description string     `json:"description,omitempty" cbor:"description,omitempty"`
	Usage       string     `json:"usage"                 cbor:"usage"`
	Arguments   []Argument `json:"arguments,omitempty"   cbor:"arguments,omitempty"`
}

// Argument describes one argument of a command.
type Argument struct {
	Name        string `json:"name"                  cbor:"name"`
	Kind        string `json:"kind"                  cbor:"kind"`
	Type        string `json:"type"                  cbor:"type"`
	Description string `json:"description,omitempty" cbor:"description,omitempty"`

	// Position is the token index of a positional argument within the
	// input line, where the command name is token 0 (or 1 after a
	// prefix). Zero for marked arguments.
	Position int `json:"position,omitempty" cbor:"position,omitempty"`
}

// FullName returns the prefix and name separated by a space, or just
// the name when the entry has no prefix.
func (e Entry) FullName() string {
	if e.Prefix == "" {
		return e.Name
	}
	return e.Prefix + " " + e.Name
}

// HasArgument reports whether the entry declares an argument named
// name.
func (e Entry) HasArgument(name string) bool {
	return slices.ContainsFunc(e.Arguments, func(argument Argument) bool {
		return argument.Name == name
	})
}

// New builds a catalog from commands, preserving their order.
func New(commands []*shell.Command) *Catalog {
	catalog := &Catalog{
		Version:  FormatVersion,
		Commands: make([]Entry, 0, len(commands)),
	}
	for _, command := range commands {
		catalog.Commands = append(catalog.Commands, describe(command))
	}
	return catalog
}

// FromDispatcher builds a catalog of every command dispatcher holds.
func FromDispatcher(dispatcher *shell.Dispatcher) *Catalog {
	return New(dispatcher.Commands())
}

func describe(command *shell.Command) Entry {
	entry := Entry{
		Prefix:      command.Prefix(),
		Name:        command.Name(),
		Description: command.Description(),
		Usage:       command.String(),
	}
	for _, argument := range command.Arguments() {
		described := Argument{
			Name:        argument.Name(),
			Kind:        argument.Kind().String(),
			Type:        string(argument.Type()),
			Description: argument.Description(),
		}
		if argument.Kind() == shell.Positional {
			described.Position = argument.Position() + 1
		}
		entry.Arguments = append(entry.Arguments, described)
	}
	return entry
}

// Find returns the entries q selects, in catalog order.
func (c *Catalog) Find(q Query) []Entry {
	var found []Entry
	for _, entry := range c.Commands {
		if q.Matches(entry) {
			found = append(found, entry)
		}
	}
	return found
}

// JSON returns the catalog as indented JSON.
func (c *Catalog) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding catalog as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses a catalog previously written by [Catalog.JSON].
func DecodeJSON(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog JSON: %w", err)
	}
	if err := catalog.checkVersion(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Catalog) checkVersion() error {
	if c.Version != FormatVersion {
		return fmt.Errorf("unsupported catalog version %d (want %d)", c.Version, FormatVersion)
	}
	return nil
}
