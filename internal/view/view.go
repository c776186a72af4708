package view

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")
var colorPending = lipgloss.Color("#e08dff")
var colorFailed = lipgloss.Color("#e1244c")
var colorHighlight = lipgloss.Color("#407FF8")

// Styles renders the trace fragments. Colors are only emitted when the
// writer is a terminal that supports them.
type Styles struct {
	Success   lipgloss.Style
	Pending   lipgloss.Style
	Failed    lipgloss.Style
	Highlight lipgloss.Style
	Progress  lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Success:   r.NewStyle().Foreground(colorSuccess).Bold(true),
		Pending:   r.NewStyle().Foreground(colorPending).Bold(true),
		Failed:    r.NewStyle().Foreground(colorFailed).Bold(true),
		Highlight: r.NewStyle().Foreground(colorHighlight).Bold(true),
		Progress:  r.NewStyle().Faint(true),
	}
}
