package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the terminal view.
type Styles struct {
	Alive  lipgloss.Style
	Dead   lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles mirrors the GUI palette.
func DefaultStyles() Styles {
	return Styles{
		Alive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D5EF68")),
		Dead:   lipgloss.NewStyle().Foreground(lipgloss.Color("#313131")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#D5EF68")).Background(lipgloss.Color("#212020")),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D5EF68")).
			Padding(1, 2),
	}
}
