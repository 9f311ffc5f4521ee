// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for linebind sessions.
//
// Configuration is loaded from a single file specified by either the
// LINEBIND_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery and no search path. Values
// not present in the file keep their [Default].
//
// Files are YAML. Files ending in .json or .jsonc may additionally carry
// // and /* */ comments and trailing commas, which are stripped before
// decoding (JSON is a subset of YAML, so one decoder serves both).
//
// This package depends on no other linebind packages.
package config
