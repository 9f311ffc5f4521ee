// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell binds described handlers to free-text input lines.
//
// A handler is described by a [HandlerSpec]: an optional prefix (group
// token), a name, a description, the owner value the handler runs
// against, and one [ParamSpec] per parameter in declaration order.
// [NewCommand] turns a spec into an immutable [Command], classifying each
// parameter into an [Argument] and compiling, in the same step, the
// [Pattern] that decides whether a line invokes the command and the
// [Signature] used to rank suggestions.
//
// Input lines are split into tokens with shell quoting rules, so a value
// containing spaces can be written as "two words". A line invokes a
// command when it consists of:
//
//	[prefix] name <positional>... (marker [value])...
//
// Positional values are taken strictly by position. Markers for Required
// and Optional arguments follow in any order; each appears at most once,
// every Required marker must appear, and boolean markers carry no value.
//
// The [Dispatcher] holds the compiled commands in registration order.
// [Dispatcher.Match] returns the first command whose pattern accepts the
// line, [Dispatcher.Suggest] ranks commands by how many distinct tokens
// the line shares with their signature, and [Dispatcher.Accept] matches,
// parses and invokes in one call. Values reach the handler through a
// [Call] in the order the parameters were declared, not the order the
// arguments are matched in.
//
// Every table is built once at startup and never mutated afterwards.
// Matching and parsing allocate per call and hold no locks, so a
// Dispatcher may be shared between goroutines, but handlers run on the
// caller's goroutine with no timeout.
package shell
