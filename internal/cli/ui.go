package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - headings
	colorGray = lipgloss.Color("245") // Gray - labels
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
}

// newStyles creates the styles for a renderer. A renderer writing to
// something other than a terminal renders all styles as plain text.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorCyan),
		label: r.NewStyle().Foreground(colorGray),
		value: r.NewStyle(),
	}
}
