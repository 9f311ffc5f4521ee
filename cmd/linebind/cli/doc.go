// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the linebind
// binary: named commands with pflag flag sets, nested subcommands,
// generated help, and typo suggestions for unknown subcommands and
// flags.
//
// This is the outer command line of the binary, parsed once from
// os.Args. Lines typed inside a session are matched by lib/shell, not
// by this package.
package cli
