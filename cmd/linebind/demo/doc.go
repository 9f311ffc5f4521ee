// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package demo holds the handlers the linebind binary serves: a small
// calculator at the top level and an in-memory account registry under
// the "user" prefix. They exist to exercise every argument kind and
// most builtin converters from a real session.
package demo
