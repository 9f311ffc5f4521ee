// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the linebind command tree.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/linebind/cmd/linebind/cli"
	"github.com/bureau-foundation/linebind/lib/version"
)

// Streams are the process streams commands read from and write to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Stdio returns the process's standard streams.
func Stdio() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Root returns the linebind command tree bound to streams.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name:       "linebind",
		Summary:    "Bind typed handlers to command lines",
		HelpOutput: streams.Err,
		Description: `linebind matches free-text command lines against a set of typed
handlers, converts the arguments and runs the handler. This binary
serves a demo calculator and an in-memory account registry.`,
		Subcommands: []*cli.Command{
			replCommand(streams),
			execCommand(streams),
			catalogCommand(streams),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Fprintf(streams.Out, "linebind %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
