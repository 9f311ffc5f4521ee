// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binding describes Go functions as [shell.HandlerSpec] values.
//
// A handler's parameters are declared as the tagged fields of a struct,
// in the same manner flags are declared for the bureau CLI:
//
//	type addParams struct {
//	    X       int  `arg:"x" desc:"first operand"`
//	    Y       int  `arg:"y" desc:"second operand"`
//	    Verbose bool `arg:"-verbose" desc:"print the working"`
//	}
//
//	calc := binding.Controller{
//	    Prefix:  "calc",
//	    Factory: func() (any, error) { return &Calculator{}, nil },
//	    Handlers: []binding.Handler{
//	        binding.Method("add", "add two integers",
//	            func(c *Calculator, p *addParams) error { ... }),
//	    },
//	}
//	specs, err := binding.Describe(calc)
//
// # Struct tags
//
//   - arg:"name": the argument name; for markers this is the token the
//     user types ("-verbose"). Fields without an arg tag are skipped.
//   - kind:"positional|required|optional": defaults to positional.
//     Boolean fields are always optional flags.
//   - type:"tag": the [convert.Type] to parse with. Defaults from the
//     field's Go type: string, bool, int, int64, uint, float64,
//     [time.Duration], []string and [uuid.UUID]. Other field types need
//     an explicit tag whose converter yields a value assignable or
//     convertible to the field (for example uint64 with type:"bytes").
//   - desc:"text": the argument description shown in help.
//
// Embedded structs are flattened, so common parameter groups can be
// shared between handlers.
//
// A [Controller] groups handlers under one prefix and one owner. Its
// [Factory] is called exactly once, when the controller is described;
// the owner it returns is handed to every handler of the controller.
package binding
