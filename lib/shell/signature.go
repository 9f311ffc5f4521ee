// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"iter"
	"slices"
)

// Signature is the set of token sequences a command is recognized by
// when ranking suggestions: the prefix (if any) and name, followed by
// every ordering of the command's Required and Optional marker names.
// Positional argument names are not part of it since users never type
// them.
//
// Every sequence holds the same tokens, so the set is represented by
// its head and marker list and enumerated on demand.
type Signature struct {
	head    []string
	markers []string
}

func newSignature(prefix, name string, arguments []*Argument) Signature {
	var signature Signature
	if prefix != "" {
		signature.head = append(signature.head, prefix)
	}
	signature.head = append(signature.head, name)
	for _, argument := range arguments {
		if argument.Kind() != Positional {
			signature.markers = append(signature.markers, argument.Name())
		}
	}
	return signature
}

// Sequences yields every token sequence in the signature. The number of
// sequences is the factorial of the marker count. Each yielded slice is
// a fresh copy.
func (s Signature) Sequences() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		markers := slices.Clone(s.markers)
		emit := func() bool {
			sequence := make([]string, 0, len(s.head)+len(markers))
			sequence = append(sequence, s.head...)
			return yield(append(sequence, markers...))
		}
		if !emit() {
			return
		}

		// Heap's algorithm, iterative form.
		counters := make([]int, len(markers))
		for i := 1; i < len(markers); {
			if counters[i] < i {
				if i%2 == 0 {
					markers[0], markers[i] = markers[i], markers[0]
				} else {
					markers[counters[i]], markers[i] = markers[i], markers[counters[i]]
				}
				if !emit() {
					return
				}
				counters[i]++
				i = 1
			} else {
				counters[i] = 0
				i++
			}
		}
	}
}

// Tokens returns the distinct tokens shared by every sequence, head
// first.
func (s Signature) Tokens() []string {
	tokens := make([]string, 0, len(s.head)+len(s.markers))
	for _, token := range slices.Concat(s.head, s.markers) {
		if !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Likeness returns the size of the intersection between the distinct
// words and the signature's token set. Since every sequence carries the
// same set, this equals the maximum over all sequences. No length
// normalization or partial token matching is applied.
func (s Signature) Likeness(words []string) int {
	present := make(map[string]struct{}, len(words))
	for _, word := range words {
		present[word] = struct{}{}
	}
	score := 0
	for _, token := range s.Tokens() {
		if _, ok := present[token]; ok {
			score++
		}
	}
	return score
}
