// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/linebind/cmd/linebind/cli"
)

func replCommand(streams Streams) *cli.Command {
	var flags sessionFlags
	return &cli.Command{
		Name:    "repl",
		Summary: "Start an interactive session",
		Description: `Read command lines until end of input or the exit word and run each
one. Type --help for the list of commands.`,
		Usage: "linebind repl [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("repl", pflag.ContinueOnError)
			flags.register(flagSet)
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Start a session with a custom config", Command: "linebind repl --config ~/.config/linebind.yaml"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			session, logger, err := flags.openSession(streams, streams.In, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			logger.Debug("session started", "commands", len(session.Dispatcher().Commands()))
			err = session.Run(ctx)
			if errors.Is(err, context.Canceled) {
				// Leave the shell prompt on a fresh line after ^C.
				fmt.Fprintln(streams.Out)
				logger.Debug("session interrupted")
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		},
	}
}
