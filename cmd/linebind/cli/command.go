// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the command tree.
type Command struct {
	// Name is typed by the user to select the command.
	Name string

	// Summary is the one-line description listed by the parent.
	Summary string

	// Description is the longer text of the command's own help.
	Description string

	// Usage overrides the synthesized usage line.
	Usage string

	Examples []Example

	// Flags builds the command's flag set. It is called on each parse,
	// so it must return a fresh set bound to the caller's variables.
	Flags func() *pflag.FlagSet

	// Subcommands are selected by the first non-flag argument.
	Subcommands []*Command

	// Run receives the arguments left after flag parsing. When both
	// Run and Subcommands are set, Run handles input that names no
	// subcommand.
	Run func(args []string) error

	// HelpOutput receives help text. Defaults to os.Stderr.
	HelpOutput io.Writer

	parent *Command
}

// Example is a command line shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args against the tree rooted at c and runs the
// selected command.
func (c *Command) Execute(args []string) error {
	// Help wins over everything else, including unknown flags that
	// follow it.
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}

	// A leading word selects a subcommand. Unknown words fall through
	// to Run when there is one, since exec takes free-form lines.
	if sub, found, err := c.selectSubcommand(args); found || err != nil {
		if err != nil {
			return err
		}
		return sub.Execute(args[1:])
	}

	// A group without its own action needs a subcommand.
	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(c.helpOutput())
		if len(args) == 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	remaining, err := c.parseFlags(args)
	if err != nil {
		return err
	}

	if c.Run == nil {
		c.PrintHelp(c.helpOutput())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(remaining)
}

// selectSubcommand looks up args[0] among the subcommands. found is
// false when args names no subcommand and c can handle them itself.
func (c *Command) selectSubcommand(args []string) (sub *Command, found bool, err error) {
	if len(c.Subcommands) == 0 || len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return nil, false, nil
	}
	name := args[0]
	for _, candidate := range c.Subcommands {
		if candidate.Name == name {
			candidate.parent = c
			return candidate, true, nil
		}
	}
	if c.Run != nil {
		return nil, false, nil
	}

	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return nil, false, c.usageError("unknown command %q (did you mean %q?)", name, suggestion)
	}
	return nil, false, c.usageError("unknown command %q", name)
}

// parseFlags parses args with a fresh flag set and returns the
// positional arguments left over.
func (c *Command) parseFlags(args []string) ([]string, error) {
	if c.Flags == nil {
		return args, nil
	}
	flagSet := c.Flags()

	// pflag would print its own error and the full usage; errors are
	// reported once, by the caller, with a pointer to --help instead.
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		message := err.Error()
		// pflag reports both "unknown flag" and "unknown shorthand
		// flag". The suggestion needs an unparsed set to look names up.
		if strings.Contains(message, "unknown") {
			if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
				return nil, c.usageError("%s (did you mean %s?)", message, suggestion)
			}
		}
		return nil, c.usageError("%s", message)
	}
	return flagSet.Args(), nil
}

// usageError formats a user mistake followed by where to find usage.
func (c *Command) usageError(format string, args ...any) error {
	return fmt.Errorf(format+"\n\nRun '%s --help' for usage.", append(args, c.fullName())...)
}

// PrintHelp writes the command's help to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	// Lead with the longest text available.
	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	// Subcommands, aligned into two columns.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// FlagUsages renders pflag's own columns, defaults included.
	if c.Flags != nil {
		if defaults := c.Flags().FlagUsages(); defaults != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", defaults)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// helpOutput returns the nearest HelpOutput up the tree.
func (c *Command) helpOutput() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.HelpOutput != nil {
			return command.HelpOutput
		}
	}
	return os.Stderr
}

// fullName returns the path from the root, such as "linebind repl".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
