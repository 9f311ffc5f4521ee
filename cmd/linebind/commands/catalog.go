// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/linebind/cmd/linebind/cli"
)

func catalogCommand(streams Streams) *cli.Command {
	var flags sessionFlags
	var format string
	return &cli.Command{
		Name:    "catalog",
		Summary: "Describe the available commands",
		Description: `Write the command set as JSON or deterministic CBOR, or print its
BLAKE3 digest. Two builds with the same digest accept the same command
lines.`,
		Usage: "linebind catalog [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&format, "format", "json", "output format: json, cbor, or digest")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Compare two builds", Command: "linebind catalog --format digest"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			session, _, err := flags.openSession(streams, strings.NewReader(""), nil)
			if err != nil {
				return err
			}
			catalog := session.Catalog()

			var output []byte
			switch format {
			case "json":
				output, err = catalog.JSON()
			case "cbor":
				output, err = catalog.CBOR()
			case "digest":
				digest, digestErr := catalog.Digest()
				output, err = []byte(digest.String()+"\n"), digestErr
			default:
				return fmt.Errorf("unknown format %q (want json, cbor, or digest)", format)
			}
			if err != nil {
				return err
			}
			_, err = streams.Out.Write(output)
			return err
		},
	}
}
