// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bureau-foundation/linebind/lib/binding"
	"github.com/bureau-foundation/linebind/lib/clock"
)

// Calculator prints the results of arithmetic commands.
type Calculator struct {
	out   io.Writer
	clock clock.Clock
}

type addParams struct {
	X       int  `arg:"x" desc:"first addend"`
	Y       int  `arg:"y" desc:"second addend"`
	Verbose bool `arg:"-verbose" desc:"print the whole equation"`
}

type divideParams struct {
	Dividend  float64 `arg:"dividend"`
	Divisor   float64 `arg:"divisor"`
	Precision int     `arg:"-precision" kind:"optional" desc:"digits after the decimal point (default 2)"`
}

type sumParams struct {
	Values []string `arg:"values" desc:"comma separated integers"`
}

type waitParams struct {
	Duration time.Duration `arg:"-for" kind:"required" desc:"how long to wait, such as 250ms"`
}

// CalculatorController returns the calculator's top-level commands.
// wait pauses on clk.
func CalculatorController(out io.Writer, clk clock.Clock) binding.Controller {
	return binding.Controller{
		Name:    "calculator",
		Factory: func() (any, error) { return &Calculator{out: out, clock: clk}, nil },
		Handlers: []binding.Handler{
			binding.Method("add", "add two integers", (*Calculator).add),
			binding.Method("div", "divide two numbers", (*Calculator).divide),
			binding.Method("sum", "add a list of integers", (*Calculator).sum),
			binding.Method("wait", "pause the session", (*Calculator).wait),
		},
	}
}

func (c *Calculator) add(params *addParams) error {
	result := params.X + params.Y
	if params.Verbose {
		fmt.Fprintf(c.out, "%d + %d = %d\n", params.X, params.Y, result)
		return nil
	}
	fmt.Fprintln(c.out, result)
	return nil
}

func (c *Calculator) divide(params *divideParams) error {
	if params.Divisor == 0 {
		return errors.New("division by zero")
	}
	precision := 2
	if params.Precision > 0 {
		precision = params.Precision
	}
	fmt.Fprintf(c.out, "%.*f\n", precision, params.Dividend/params.Divisor)
	return nil
}

func (c *Calculator) sum(params *sumParams) error {
	total := 0
	for _, value := range params.Values {
		number, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value %q is not an integer", value)
		}
		total += number
	}
	fmt.Fprintln(c.out, total)
	return nil
}

func (c *Calculator) wait(params *waitParams) error {
	c.clock.Sleep(params.Duration)
	fmt.Fprintf(c.out, "waited %s\n", params.Duration)
	return nil
}
