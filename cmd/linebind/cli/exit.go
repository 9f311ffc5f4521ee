// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError ends the process with Code and no further message. Return
// it from Run once the failure has already been shown to the user, as
// exec does after the session prints a parse or handler error; any
// other error is printed by main.
type ExitError struct {
	Code int
}

// Exit returns an *ExitError for code.
func Exit(code int) error {
	return &ExitError{Code: code}
}

// Error is only seen if a caller prints the error anyway.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode implements the interface main checks before printing.
func (e *ExitError) ExitCode() int {
	return e.Code
}
