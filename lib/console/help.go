// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"github.com/bureau-foundation/linebind/lib/binding"
	"github.com/bureau-foundation/linebind/lib/catalog"
)

// HelpCommand is the name of the builtin help command.
const HelpCommand = "--help"

type helpParams struct {
	Name   string   `arg:"-name"   kind:"optional" desc:"name of command"`
	Prefix string   `arg:"-prefix" kind:"optional" desc:"prefix of command"`
	Args   []string `arg:"-args"   kind:"optional" desc:"args of command, comma separated"`
}

func helpController(session *Session) binding.Controller {
	return binding.Controller{
		Name:    "help",
		Factory: func() (any, error) { return session, nil },
		Handlers: []binding.Handler{
			binding.Method(HelpCommand, "lists all commands", (*Session).help),
		},
	}
}

// help prints every command selected by params. With no filters every
// command is listed.
func (s *Session) help(params *helpParams) error {
	query := catalog.Query{
		Name:      params.Name,
		Prefix:    params.Prefix,
		Arguments: params.Args,
	}
	for _, entry := range s.catalog.Find(query) {
		s.console.Println(s.format.Help(entry))
	}
	return nil
}
