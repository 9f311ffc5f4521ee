// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package convert maps value type tags to functions that parse a single
// text token into a typed Go value.
//
// A [Registry] is populated once at startup and is read-only afterwards.
// Lookups are exact: a token destined for [Int64] is never handed to the
// [Int] converter, and there is no notion of a type hierarchy. Parameters
// of type [Bool] never reach the registry during parsing because the
// presence of their flag token is the value.
//
// Two error types distinguish the failure modes:
//
//   - [NoConverterError]: no converter is registered for the tag. This is
//     a build-time condition and surfaces when a command is described.
//   - [ConversionError]: a converter exists but rejected the token. This
//     is a per-input condition the user can correct.
package convert
