package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/simmer/internal/config"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles used by every view.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Selected  lipgloss.Style
	Warning   lipgloss.Style
	Mini      lipgloss.Style
	Accent    lipgloss.Color
}

func newStyle(d config.DisplayConfig) Style {
	accent := lipgloss.Color(d.AccentColor)

	text := lipgloss.Color("#1B1B1B")
	hint := lipgloss.Color("#6C6C6C")

	if d.DarkTheme {
		text = lipgloss.Color("#F2F2F2")
		hint = lipgloss.Color("#8A8A8A")
	}

	return Style{
		Accent:    accent,
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F4A261")),
		Mini: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
