// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for session output. Colors are ANSI
// 256-color codes.
type Theme struct {
	Usage       lipgloss.Color
	Description lipgloss.Color
	Argument    lipgloss.Color
	Faint       lipgloss.Color
	Error       lipgloss.Color
	Hint        lipgloss.Color
}

// DefaultTheme suits a dark terminal background.
var DefaultTheme = Theme{
	Usage:       lipgloss.Color("75"),  // blue
	Description: lipgloss.Color("252"), // near white
	Argument:    lipgloss.Color("114"), // green
	Faint:       lipgloss.Color("245"), // gray
	Error:       lipgloss.Color("196"), // red
	Hint:        lipgloss.Color("220"), // amber
}
