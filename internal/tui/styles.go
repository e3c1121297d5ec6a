package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// styles holds the host-page chrome, resolved from the current theme on
// every render so a theme change restyles the whole screen.
type styles struct {
	screen     lipgloss.Style
	title      lipgloss.Style
	selected   lipgloss.Style
	eventTitle lipgloss.Style
	event      lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		screen: lipgloss.NewStyle().
			Padding(1, 2).
			Background(th.Palette.Surface.Base).
			Foreground(th.Palette.Surface.OnBase),
		title:      th.Typography.Title.Padding(0, 1),
		selected:   lipgloss.NewStyle().Bold(true),
		eventTitle: th.Typography.Emphasis,
		event:      th.Typography.Caption,
	}
}
