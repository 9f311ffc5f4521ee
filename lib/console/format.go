// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/linebind/lib/catalog"
	"github.com/bureau-foundation/linebind/lib/shell"
)

// Formatter renders command usage, help listings and errors.
type Formatter struct {
	renderer *lipgloss.Renderer
	theme    Theme

	// width bounds description lines; 0 disables truncation.
	width int
}

// NewFormatter returns a formatter for text written to w. color is
// "auto", "always" or "never". width is the terminal width used to
// truncate descriptions, or 0 for no limit.
func NewFormatter(w io.Writer, color string, width int) *Formatter {
	renderer := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Formatter{renderer: renderer, theme: DefaultTheme, width: width}
}

func (f *Formatter) style(color lipgloss.Color) lipgloss.Style {
	return f.renderer.NewStyle().Foreground(color)
}

func (f *Formatter) truncate(text string, indent int) string {
	if f.width <= 0 || indent >= f.width {
		return text
	}
	return ansi.Truncate(text, f.width-indent, "…")
}

// Usage renders an entry's usage line followed, when present, by its
// description on an indented line.
func (f *Formatter) Usage(entry catalog.Entry) string {
	var builder strings.Builder
	builder.WriteString(f.style(f.theme.Usage).Bold(true).Render(entry.Usage))
	if entry.Description != "" {
		builder.WriteString("\n  ")
		builder.WriteString(f.style(f.theme.Description).Render(f.truncate(entry.Description, 2)))
	}
	return builder.String()
}

// Help renders an entry's usage, description and one line per
// argument.
func (f *Formatter) Help(entry catalog.Entry) string {
	var builder strings.Builder
	builder.WriteString(f.Usage(entry))
	if len(entry.Arguments) == 0 {
		return builder.String()
	}

	var table strings.Builder
	tw := tabwriter.NewWriter(&table, 2, 0, 2, ' ', 0)
	for _, argument := range entry.Arguments {
		fmt.Fprintf(tw, "    %s\t%s\t%s\t%s\n", argument.Name, argument.Kind, argument.Type, argument.Description)
	}
	tw.Flush()

	argumentStyle := f.style(f.theme.Argument)
	for line := range strings.Lines(table.String()) {
		line = strings.TrimRight(line, " \n")
		builder.WriteString("\n")
		builder.WriteString(argumentStyle.Render(f.truncate(line, 0)))
	}
	return builder.String()
}

// Unknown renders the message for a line no command accepts.
func (f *Formatter) Unknown(input string) string {
	return f.style(f.theme.Error).Render(fmt.Sprintf("unknown command: %q", input))
}

// Suggestion renders the closest command offered for an unknown line.
func (f *Formatter) Suggestion(input string, entry catalog.Entry) string {
	hint := f.style(f.theme.Hint).Render(fmt.Sprintf("unknown command %q, did you mean:", input))
	return hint + "\n  " + f.Usage(entry)
}

// ParseError renders a conversion or missing-argument failure together
// with the usage of the command that rejected the line.
func (f *Formatter) ParseError(err *shell.ParseError) string {
	message := f.style(f.theme.Error).Render("error: " + err.Error())
	if err.Command == nil {
		return message
	}
	usage := f.style(f.theme.Faint).Render("usage: " + err.Command.String())
	return message + "\n" + usage
}

// HandlerError renders an error returned by a handler.
func (f *Formatter) HandlerError(command string, err error) string {
	return f.style(f.theme.Error).Render(fmt.Sprintf("error: %s: %v", command, err))
}
