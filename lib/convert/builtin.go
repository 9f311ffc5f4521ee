// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// builtins returns a fresh map of the converters installed by
// [NewRegistry].
func builtins() map[Type]Converter {
	return map[Type]Converter{
		String: func(token string) (any, error) {
			return token, nil
		},
		Bool: parseBool,
		Int: func(token string) (any, error) {
			return strconv.Atoi(token)
		},
		Int64: func(token string) (any, error) {
			return strconv.ParseInt(token, 10, 64)
		},
		Uint: func(token string) (any, error) {
			value, err := strconv.ParseUint(token, 10, 0)
			if err != nil {
				return nil, err
			}
			return uint(value), nil
		},
		Float64: func(token string) (any, error) {
			return strconv.ParseFloat(token, 64)
		},
		Duration: func(token string) (any, error) {
			return time.ParseDuration(token)
		},
		Strings: parseList,
		UUID: func(token string) (any, error) {
			return uuid.Parse(token)
		},
		Bytes: func(token string) (any, error) {
			return humanize.ParseBytes(token)
		},
	}
}

func parseBool(token string) (any, error) {
	return strconv.ParseBool(token)
}

// parseList splits a comma-separated token into its trimmed elements.
// Empty elements are rejected so that "a,,b" is reported rather than
// silently collapsed.
func parseList(token string) (any, error) {
	if token == "" {
		return []string{}, nil
	}
	parts := strings.Split(token, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty list element")
		}
		parts[i] = part
	}
	return parts, nil
}
