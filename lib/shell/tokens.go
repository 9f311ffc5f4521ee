// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// shellSpecial lists the runes go-shellwords would otherwise interpret.
// Each is escaped before parsing so it reaches the token unchanged.
const shellSpecial = "\\'`$&|;<>()"

// Tokenize splits an input line on whitespace. Double quotes group a
// value that contains spaces, and \" stands for a literal double quote.
// No other character is special: backslashes, apostrophes and shell
// operators are kept as typed. An unterminated double quote is an
// error.
func Tokenize(input string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	tokens, err := parser.Parse(escapeLiterals(input))
	if err != nil {
		return nil, fmt.Errorf("tokenizing input: unterminated double quote: %w", err)
	}
	return tokens, nil
}

// escapeLiterals backslash-escapes every rune the shell parser would
// treat specially except the double quote, leaving \" as the one
// escape sequence users can type.
func escapeLiterals(input string) string {
	var builder strings.Builder
	builder.Grow(len(input) + len(input)/4)
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes) && runes[i+1] == '"':
			builder.WriteString(`\"`)
			i++
		case strings.ContainsRune(shellSpecial, r):
			builder.WriteByte('\\')
			builder.WriteRune(r)
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// words splits input on whitespace only. Suggestion scoring uses plain
// words so that even a line Tokenize rejects can still be ranked.
func words(input string) []string {
	return strings.Fields(input)
}
