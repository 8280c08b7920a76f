// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for textkit output.
//
// Styles decorate messages on stderr (errors, example hints, status lines)
// and the help title on a terminal. Command results are never styled so
// they stay byte-exact.

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle is used for the help title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// ErrorStyle is used for error messages and failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// SuccessStyle is used for status messages after a successful write
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// DimStyle is used for example hints under validation errors
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray
)

// ApplyColorMode configures lipgloss for the given output.color mode.
func ApplyColorMode(mode string) {
	lipgloss.SetColorProfile(GetColorProfile(mode))
}
