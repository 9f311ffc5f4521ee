// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExit(t *testing.T) {
	err := fmt.Errorf("running exec: %w", Exit(3))

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("errors.As(%v) = false, want an *ExitError", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", exitErr.ExitCode())
	}
	if got := exitErr.Error(); got != "exit status 3" {
		t.Errorf("Error() = %q, want %q", got, "exit status 3")
	}
}
