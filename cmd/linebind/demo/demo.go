// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"io"

	"github.com/bureau-foundation/linebind/lib/binding"
	"github.com/bureau-foundation/linebind/lib/clock"
	"github.com/bureau-foundation/linebind/lib/shell"
)

// Specs describes every demo handler, writing results to out.
func Specs(out io.Writer) ([]shell.HandlerSpec, error) {
	return binding.Describe(
		CalculatorController(out, clock.Real()),
		AccountsController(NewAccounts(out, nil)),
	)
}
