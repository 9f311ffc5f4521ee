// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console reads input lines and writes output and error text.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	err    io.Writer
}

// New returns a console reading lines from in, writing regular output
// to out and error output to errOut.
func New(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		err:    errOut,
	}
}

// Stdio returns a console over the process's standard streams.
func Stdio() *Console {
	return New(os.Stdin, os.Stdout, os.Stderr)
}

// ReadLine returns the next input line without its line terminator. A
// final line lacking a newline is returned before [io.EOF].
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes text to the output without a trailing newline.
func (c *Console) Print(text string) {
	fmt.Fprint(c.out, text)
}

// Println writes text and a newline to the output.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// PrintErr writes text and a newline to the error output.
func (c *Console) PrintErr(text string) {
	fmt.Fprintln(c.err, text)
}

// Out returns the regular output writer.
func (c *Console) Out() io.Writer { return c.out }

// Err returns the error output writer.
func (c *Console) Err() io.Writer { return c.err }

// IsTerminal reports whether the output writer is a terminal.
func (c *Console) IsTerminal() bool {
	return isTerminal(c.out)
}

// Width returns the column count of the output terminal, or 0 when the
// output is not a terminal.
func (c *Console) Width() int {
	file, ok := c.out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
