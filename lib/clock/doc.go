// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the time operations linebind handlers and
// sessions use, so that tests control time instead of waiting on it.
//
// Production code takes a [Clock] and is given [Real]. Tests pass
// [Fake], whose Sleep returns at once after advancing the fake time by
// the requested duration, so a handler that pauses for a minute runs
// instantly and deterministically.
package clock
