// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

// Query selects catalog entries. Empty fields select everything; set
// fields must all hold.
type Query struct {
	// Name must equal the entry's name.
	Name string

	// Prefix must equal the entry's prefix.
	Prefix string

	// Arguments must all be declared by the entry.
	Arguments []string
}

// Matches reports whether entry satisfies every set field of q.
func (q Query) Matches(entry Entry) bool {
	if q.Name != "" && entry.Name != q.Name {
		return false
	}
	if q.Prefix != "" && entry.Prefix != q.Prefix {
		return false
	}
	for _, name := range q.Arguments {
		if !entry.HasArgument(name) {
			return false
		}
	}
	return true
}
