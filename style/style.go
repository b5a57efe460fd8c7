// Package style holds lipgloss helpers for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors used across the CLI.
const (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a function rendering its argument in color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Padded renders s left aligned in a cell of width w.
func Padded(s string, w int) string {
	return New().Width(w).Render(s)
}
