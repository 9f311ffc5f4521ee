// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command linebind runs typed command-line handlers from an interactive
// session or from its arguments.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/linebind/cmd/linebind/commands"
)

func main() {
	if err := run(); err != nil {
		// exec returns an ExitError after the session has already
		// printed why a line failed.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.Root(commands.Stdio()).Execute(os.Args[1:])
}
