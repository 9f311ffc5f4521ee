// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import "strings"

// Pattern decides whether a tokenized line invokes a command. It is
// compiled once per command from the command's sorted arguments.
type Pattern struct {
	prefix     string
	name       string
	positional int

	// markers maps each Required/Optional marker token to its argument.
	markers map[string]*Argument

	// required lists Required marker tokens in argument order.
	required []string

	template string
}

// bound is the result of fitting a token list to a pattern: the
// positional value tokens in order, and the value token (empty for
// flags) of every marker present.
type bound struct {
	positional []string
	markers    map[string]string
}

func compilePattern(prefix, name string, arguments []*Argument) *Pattern {
	pattern := &Pattern{
		prefix:  prefix,
		name:    name,
		markers: make(map[string]*Argument),
	}

	var template []string
	if prefix != "" {
		template = append(template, prefix)
	}
	template = append(template, name)

	for _, argument := range arguments {
		template = append(template, argument.String())
		switch argument.Kind() {
		case Positional:
			pattern.positional++
		case Required:
			pattern.required = append(pattern.required, argument.Name())
			pattern.markers[argument.Name()] = argument
		case Optional:
			pattern.markers[argument.Name()] = argument
		}
	}
	pattern.template = strings.Join(template, " ")
	return pattern
}

// Match reports whether tokens invoke the pattern's command.
func (p *Pattern) Match(tokens []string) bool {
	_, ok := p.bind(tokens, true)
	return ok
}

// MatchString tokenizes input and reports whether it invokes the
// pattern's command. A line that cannot be tokenized never matches.
func (p *Pattern) MatchString(input string) bool {
	tokens, err := Tokenize(input)
	if err != nil {
		return false
	}
	return p.Match(tokens)
}

// String returns a usage template such as "calc add <x> <y> [-verbose]".
func (p *Pattern) String() string { return p.template }

// bind fits tokens to the pattern. With requireAll false, missing
// Required markers are tolerated so that the parser can name them.
func (p *Pattern) bind(tokens []string, requireAll bool) (*bound, bool) {
	index := 0
	if p.prefix != "" {
		if len(tokens) == 0 || tokens[0] != p.prefix {
			return nil, false
		}
		index++
	}
	if index >= len(tokens) || tokens[index] != p.name {
		return nil, false
	}
	index++

	if len(tokens)-index < p.positional {
		return nil, false
	}
	result := &bound{
		positional: tokens[index : index+p.positional],
		markers:    make(map[string]string),
	}
	index += p.positional

	for index < len(tokens) {
		marker := tokens[index]
		argument, ok := p.markers[marker]
		if !ok {
			return nil, false
		}
		if _, seen := result.markers[marker]; seen {
			return nil, false
		}
		if argument.IsFlag() {
			result.markers[marker] = ""
			index++
			continue
		}
		if index+1 >= len(tokens) {
			return nil, false
		}
		result.markers[marker] = tokens[index+1]
		index += 2
	}

	if requireAll {
		for _, marker := range p.required {
			if _, ok := result.markers[marker]; !ok {
				return nil, false
			}
		}
	}
	return result, true
}
