// Package style defines the terminal styles for openmodules output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#107C41", Dark: "#3DD68C"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B58500", Dark: "#E5C07B"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C72E2E", Dark: "#E06C75"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// IsTerminal reports whether stdout is an interactive terminal.
// Non-terminal output is rendered without styling.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render applies a style only when writing to a terminal
func Render(s lipgloss.Style, text string) string {
	if !IsTerminal() {
		return text
	}
	return s.Render(text)
}
