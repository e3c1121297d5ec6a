package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// RenderContext carries the theme and layout information components need
// while rendering. Passing it explicitly keeps components free of ambient
// global state.
type RenderContext struct {
	Theme theme.Theme
	Width int
}

// DefaultContext returns a render context with the built-in light theme and
// no width constraint.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.LightTheme()}
}

// ContextFor returns a render context bound to the manager's current theme.
func ContextFor(m *theme.Manager) RenderContext {
	if m == nil {
		return DefaultContext()
	}
	return RenderContext{Theme: m.Theme()}
}

// WithWidth returns a copy of the context constrained to the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the unit of composition for component styling.
type StyleFunc func(lipgloss.Style, theme.Theme) lipgloss.Style

// Style applies a series of modifiers to produce a final style.
func Style(base lipgloss.Style, th theme.Theme, appliers ...StyleFunc) lipgloss.Style {
	for _, applier := range appliers {
		base = applier(base, th)
	}
	return base
}

// Background applies a semantic background colour and its matching
// foreground.
func Background(slot theme.PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		cs := slot(th.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot theme.PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Foreground(slot(th.Palette).Base)
	}
}

// Box draws the component border tinted with the slot's border colour.
func Box(slot theme.PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Border(th.ComponentBorder).BorderForeground(slot(th.Palette).Border)
	}
}

// Padding applies uniform padding from the spacing scale.
func Padding(size theme.SpacingSize) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Padding(0, th.Spacing.Value(size))
	}
}

// Emphasis applies the emphasis typography preset.
func Emphasis() StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Inherit(th.Typography.Emphasis)
	}
}

// Caption applies the caption typography preset.
func Caption() StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Inherit(th.Typography.Caption)
	}
}

// Component ids distinguish timer completions from different instances, the
// same way bubbles ticks carry their owner's id.
var (
	idMu   sync.Mutex
	lastID int
)

func nextID() int {
	idMu.Lock()
	defer idMu.Unlock()
	lastID++
	return lastID
}
