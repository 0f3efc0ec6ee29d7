// Package render draws the seat map shown by the status command.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors match the palette used across seatbook's terminal output.
	ReservedColor = lipgloss.Color("#F87171") // Red
	FreeColor     = lipgloss.Color("#10B981") // Green
	MutedColor    = lipgloss.Color("#9CA3AF") // Gray
	PrimaryColor  = lipgloss.Color("#A78BFA") // Purple
	BorderColor   = lipgloss.Color("#6B7280") // Gray
)

// styles is the set of lipgloss styles bound to one renderer.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	reserved lipgloss.Style
	free     lipgloss.Style
	summary  lipgloss.Style
	box      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		header: r.NewStyle().
			Foreground(MutedColor),
		reserved: r.NewStyle().
			Bold(true).
			Foreground(ReservedColor),
		free: r.NewStyle().
			Foreground(FreeColor),
		summary: r.NewStyle().
			Foreground(MutedColor).
			Italic(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1),
	}
}
