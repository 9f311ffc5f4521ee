// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/linebind/cmd/linebind/cli"
	"github.com/bureau-foundation/linebind/lib/config"
)

var errNoLines = errors.New("no command lines given")

func execCommand(streams Streams) *cli.Command {
	var flags sessionFlags
	var keepGoing bool
	return &cli.Command{
		Name:    "exec",
		Summary: "Run command lines given as arguments",
		Description: `Run each argument as one command line, in order. Quote each line so
the shell passes it as a single argument. Execution stops at the first
line that fails unless --keep-going is set; the exit code is 1 when any
line failed.`,
		Usage: "linebind exec [flags] <line>...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("exec", pflag.ContinueOnError)
			flagSet.SetInterspersed(false)
			flags.register(flagSet)
			flagSet.BoolVar(&keepGoing, "keep-going", false, "run every line even after a failure")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Add two numbers", Command: `linebind exec "add 3 4 -verbose"`},
			{Command: `linebind exec "user create ada -role admin" "user show ada"`},
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return errNoLines
			}
			session, _, err := flags.openSession(streams, strings.NewReader(""), func(cfg *config.Config) {
				cfg.Prompt = ""
			})
			if err != nil {
				return err
			}

			failed := false
			for _, line := range args {
				if err := session.Accept(line); err != nil {
					failed = true
					if !keepGoing {
						break
					}
				}
			}
			if failed {
				return cli.Exit(1)
			}
			return nil
		},
	}
}
