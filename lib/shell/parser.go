// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import "github.com/bureau-foundation/linebind/lib/convert"

// Parser converts a matched line into a command's typed argument list.
type Parser struct {
	registry *convert.Registry
}

// NewParser returns a parser that converts tokens with registry.
func NewParser(registry *convert.Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse extracts one value per argument of command from input and
// returns them in declaration order. Positional values are taken by
// position; Required and Optional values follow their marker. A missing
// Optional argument yields nil (false for flags); a missing Required
// argument or any conversion failure yields a *[ParseError] and no
// values.
func (p *Parser) Parse(command *Command, input string) ([]any, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, &ParseError{Command: command, Input: input, Err: err}
	}
	fitted, ok := command.pattern.bind(tokens, false)
	if !ok {
		return nil, &ParseError{Command: command, Input: input, Err: errPatternMismatch}
	}

	values := make([]any, len(command.arguments))
	next := 0
	for _, argument := range command.arguments {
		var token string
		switch argument.kind {
		case Positional:
			token = fitted.positional[next]
			next++
		default:
			value, present := fitted.markers[argument.name]
			switch {
			case argument.IsFlag():
				values[argument.index] = present
				continue
			case !present && argument.kind == Required:
				return nil, &ParseError{Command: command, Argument: argument, Input: input, Err: ErrMissingArgument}
			case !present:
				continue
			}
			token = value
		}

		converted, err := p.registry.Convert(token, argument.valueType)
		if err != nil {
			return nil, &ParseError{Command: command, Argument: argument, Input: input, Err: err}
		}
		values[argument.index] = converted
	}
	return values, nil
}
