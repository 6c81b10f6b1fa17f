// Package ui holds the terminal styling for exdrill status output.
//
// Styles use ANSI color numbers so they degrade cleanly on limited
// terminals, and lipgloss disables coloring entirely when stdout is not
// a TTY, so captured output in tests and pipes stays plain text.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication.
const (
	ColorSuccess lipgloss.Color = "2" // green
	ColorError   lipgloss.Color = "1" // red
	ColorMuted   lipgloss.Color = "8" // gray (bright black)
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Done renders the task-success marker.
func Done() string {
	return successStyle.Render("Done")
}

// Failed renders the task-failure marker.
func Failed() string {
	return errorStyle.Render("Failed")
}

// Errorf renders an error line for the top-level error printer.
func Errorf(s string) string {
	return errorStyle.Render(s)
}

// Muted renders low-importance detail text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
