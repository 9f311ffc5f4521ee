// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console runs an interactive line-oriented session over a
// [shell.Dispatcher].
//
// A [Console] pairs a line reader with an output and an error writer.
// A [Session] compiles handler specs into a dispatcher, reads lines
// from its console until end of input or the configured exit word,
// and reports failures the way a shell user expects:
//
//   - a line no command accepts prints the usage of the most similar
//     command (when suggestions are enabled) or an unknown-command
//     message;
//   - a line that selects a command but cannot be converted prints the
//     parse error and the command's usage;
//   - an error returned by a handler is printed and the session goes
//     on.
//
// When enabled in the configuration, the session registers a builtin
// --help command that lists commands, optionally filtered by -name,
// -prefix and -args.
//
// Output styling uses lipgloss. Whether escape sequences are emitted
// follows the configured color mode: "auto" asks the terminal, "always"
// forces 256 colors, "never" emits plain text.
package console
