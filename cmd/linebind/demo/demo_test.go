// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bureau-foundation/linebind/lib/binding"
	"github.com/bureau-foundation/linebind/lib/clock"
	"github.com/bureau-foundation/linebind/lib/config"
	"github.com/bureau-foundation/linebind/lib/console"
	"github.com/bureau-foundation/linebind/lib/convert"
)

var (
	adaID = uuid.MustParse("6f1c2f44-8a4e-4f43-9d55-0d8c1f7b2a10")
	bobID = uuid.MustParse("0b9d3e21-5c7a-4e8f-8a61-3f2d9c4b7e05")
)

// sequentialIDs returns a generator yielding ids in order.
func sequentialIDs(ids ...uuid.UUID) func() uuid.UUID {
	next := 0
	return func() uuid.UUID {
		id := ids[next%len(ids)]
		next++
		return id
	}
}

// runScript feeds script to a session over the demo handlers and
// returns what it wrote to stdout and stderr.
func runScript(t *testing.T, script string) (string, string) {
	t.Helper()
	out, errOut, _ := runScriptWithClock(t, script)
	return out, errOut
}

func runScriptWithClock(t *testing.T, script string) (string, string, *clock.FakeClock) {
	t.Helper()
	var out, errOut bytes.Buffer
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	specs, err := binding.Describe(
		CalculatorController(&out, fake),
		AccountsController(NewAccounts(&out, sequentialIDs(adaID, bobID))),
	)
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}

	cfg := config.Default()
	cfg.Prompt = ""
	cfg.Color = "never"
	session, err := console.NewSession(convert.NewRegistry(), specs,
		console.New(strings.NewReader(script), &out, &errOut), cfg, nil)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String(), errOut.String(), fake
}

func TestSpecs_AllHandlersDescribe(t *testing.T) {
	specs, err := Specs(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("Specs() error: %v", err)
	}
	if len(specs) != 10 {
		t.Errorf("got %d specs, want 10", len(specs))
	}
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"add 3 4", "7\n"},
		{"add 3 4 -verbose", "3 + 4 = 7\n"},
		{"div 1 3", "0.33\n"},
		{"div 1 3 -precision 4", "0.3333\n"},
		{"sum 1,2,3,4", "10\n"},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			out, errOut := runScript(t, test.line+"\n")
			if out != test.want {
				t.Errorf("output = %q, want %q", out, test.want)
			}
			if errOut != "" {
				t.Errorf("error output = %q", errOut)
			}
		})
	}
}

func TestCalculator_WaitUsesClock(t *testing.T) {
	out, errOut, fake := runScriptWithClock(t, "wait -for 90s\nwait -for 250ms\n")

	if out != "waited 1m30s\nwaited 250ms\n" {
		t.Errorf("output = %q", out)
	}
	if errOut != "" {
		t.Errorf("error output = %q", errOut)
	}
	want := []time.Duration{90 * time.Second, 250 * time.Millisecond}
	if got := fake.Sleeps(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sleeps() = %v, want %v", got, want)
	}
}

func TestCalculator_Errors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"div 1 0", "error: div: division by zero"},
		{"sum 1,x", `value "x" is not an integer`},
		{"add one 2", "error: add: argument x:"},
		{"wait", "error: wait: argument -for: missing required argument"},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, errOut := runScript(t, test.line+"\n")
			if !strings.Contains(errOut, test.want) {
				t.Errorf("error output = %q, want it to contain %q", errOut, test.want)
			}
		})
	}
}

func TestAccounts(t *testing.T) {
	script := strings.Join([]string{
		"user create ada -role admin -quota 10MB -admin",
		"user create bob -role dev",
		"user tag bob -tags ops,oncall",
		"user show ada",
		"user find " + bobID.String(),
		"user show bob",
		"user delete ada",
		"user list",
	}, "\n")

	out, errOut := runScript(t, script)
	if errOut != "" {
		t.Fatalf("error output = %q", errOut)
	}

	want := strings.Join([]string{
		"created ada (" + adaID.String() + ")",
		"created bob (" + bobID.String() + ")",
		"ada id=" + adaID.String() + " role=admin quota=10 MB admin=true",
		"bob id=" + bobID.String() + " role=dev quota=unlimited admin=false tags=ops,oncall",
		"bob id=" + bobID.String() + " role=dev quota=unlimited admin=false tags=ops,oncall",
		"deleted ada",
		"bob",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestAccounts_Errors(t *testing.T) {
	_, errOut := runScript(t, "user create ada -role dev\nuser create ada -role dev\nuser show carol\n")

	for _, want := range []string{`account "ada" already exists`, `no account "carol"`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("error output = %q, want it to contain %q", errOut, want)
		}
	}
}

func TestAccounts_MissingRoleSuggestsUsage(t *testing.T) {
	_, errOut := runScript(t, "user create ada\n")

	if !strings.Contains(errOut, "argument -role: missing required argument") {
		t.Errorf("error output = %q, want missing -role", errOut)
	}
	if !strings.Contains(errOut, "usage: user create <login> -role <string> [-quota <bytes>] [-admin]") {
		t.Errorf("error output = %q, want usage line", errOut)
	}
}
