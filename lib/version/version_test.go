// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	saved := [4]string{GitCommit, GitDirty, BuildTime, Version}
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime, Version = saved[0], saved[1], saved[2], saved[3]
	})

	GitCommit, GitDirty, BuildTime, Version = "abc1234", "false", "2026-10-01T12:00:00Z", "1.2.0"
	if got, want := Info(), "1.2.0 (abc1234, 2026-10-01T12:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got, want := Info(), "1.2.0 (abc1234-dirty, 2026-10-01T12:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()+"\n") {
		t.Errorf("Full() = %q, want it to start with Info()", full)
	}
	if !strings.Contains(full, "Go: go") {
		t.Errorf("Full() = %q, want the Go version", full)
	}
}
