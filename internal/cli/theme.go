package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Match    lipgloss.Style
	Error    lipgloss.Style
}

// NewTheme builds styles for w. Color support is detected from w itself, so
// piped output and test buffers get plain text.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Match:    r.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
