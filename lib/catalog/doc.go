// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog describes a compiled command set as plain data.
//
// A [Catalog] is built from a [shell.Dispatcher] (or any slice of
// commands) and lists every command in registration order with its
// usage template and arguments. It serves three consumers:
//
//   - the console's help command, which filters entries with a [Query]
//     and renders them;
//   - the catalog subcommand of the linebind binary, which writes the
//     catalog as indented JSON or as CBOR;
//   - tooling that needs to know whether two builds expose the same
//     commands, which compares [Catalog.Digest] values.
//
// CBOR output uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same command set always produces identical bytes and therefore an
// identical digest. The digest is a BLAKE3 keyed hash over those bytes
// under a fixed domain key.
package catalog
