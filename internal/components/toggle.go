package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// TogglePosition anchors the theme toggle in one of four screen corners.
type TogglePosition int

const (
	PositionTopRight TogglePosition = iota
	PositionTopLeft
	PositionBottomLeft
	PositionBottomRight
)

// ParsePosition converts a free-form attribute value into a position.
// Unrecognized values fall back to top-right.
func ParsePosition(s string) TogglePosition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-left":
		return PositionTopLeft
	case "bottom-left":
		return PositionBottomLeft
	case "bottom-right":
		return PositionBottomRight
	default:
		return PositionTopRight
	}
}

func (p TogglePosition) String() string {
	switch p {
	case PositionTopLeft:
		return "top-left"
	case PositionBottomLeft:
		return "bottom-left"
	case PositionBottomRight:
		return "bottom-right"
	default:
		return "top-right"
	}
}

// Anchors returns the horizontal and vertical lipgloss positions for the
// corner.
func (p TogglePosition) Anchors() (lipgloss.Position, lipgloss.Position) {
	switch p {
	case PositionTopLeft:
		return lipgloss.Left, lipgloss.Top
	case PositionBottomLeft:
		return lipgloss.Left, lipgloss.Bottom
	case PositionBottomRight:
		return lipgloss.Right, lipgloss.Bottom
	default:
		return lipgloss.Right, lipgloss.Top
	}
}

// PreferenceStore persists the theme preference between sessions.
type PreferenceStore interface {
	Load() (theme.Mode, bool)
	Save(mode theme.Mode) error
}

// ThemeToggle flips the page-wide colour scheme between light and dark.
//
// The toggle mirrors the injected theme.Manager, which every toggle on a
// screen shares. Activation flips the manager's mode flag, writes the new
// value to the preference store, and emits ThemeChangedMsg for ancestor
// listeners. The persisted preference is read once at construction.
type ThemeToggle struct {
	manager  *theme.Manager
	prefs    PreferenceStore
	position TogglePosition
	mode     theme.Mode
}

// NewThemeToggle creates a toggle bound to the shared manager. When the
// store holds a persisted preference it is applied to the manager before
// first render; absent storage defaults to light.
func NewThemeToggle(manager *theme.Manager, prefs PreferenceStore) ThemeToggle {
	mode := theme.ModeLight
	if prefs != nil {
		if saved, ok := prefs.Load(); ok {
			mode = saved
		}
	}
	if manager != nil {
		manager.SetMode(mode)
	}
	return ThemeToggle{
		manager:  manager,
		prefs:    prefs,
		position: PositionTopRight,
		mode:     mode,
	}
}

// WithPosition sets the corner anchor.
func (t ThemeToggle) WithPosition(position TogglePosition) ThemeToggle {
	t.position = position
	return t
}

// SetPosition applies a free-form position attribute, falling back to
// top-right for unrecognized values.
func (t ThemeToggle) SetPosition(raw string) ThemeToggle {
	t.position = ParsePosition(raw)
	return t
}

// Position returns the current corner anchor.
func (t ThemeToggle) Position() TogglePosition {
	return t.position
}

// Mode returns the toggle's view of the current mode.
func (t ThemeToggle) Mode() theme.Mode {
	return t.mode
}

// Toggle flips the colour scheme. Effects, in order: the shared manager's
// mode flag changes, the new value is written to the preference store, and
// the returned command emits ThemeChangedMsg. The in-memory flip always
// happens before the durable write.
func (t ThemeToggle) Toggle() (ThemeToggle, tea.Cmd) {
	mode := t.mode.Opposite()
	t.mode = mode

	if t.manager != nil {
		t.manager.SetMode(mode)
	}

	var saveErr error
	if t.prefs != nil {
		saveErr = t.prefs.Save(mode)
	}

	return t, func() tea.Msg {
		return ThemeChangedMsg{Theme: mode, SaveErr: saveErr}
	}
}

// Init implements tea.Model conventions; toggles schedule nothing at start.
func (t ThemeToggle) Init() tea.Cmd {
	return nil
}

// Update handles toggle activation via enter or space, mirroring native
// button semantics.
func (t ThemeToggle) Update(msg tea.Msg) (ThemeToggle, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			return t.Toggle()
		}
	}
	return t, nil
}

// View renders the toggle button for the current mode.
func (t ThemeToggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toggle button with the given render context.
func (t ThemeToggle) ViewWithContext(ctx RenderContext) string {
	label := "☾ dark"
	if t.mode == theme.ModeDark {
		label = "☀ light"
	}

	style := Style(lipgloss.NewStyle(), ctx.Theme,
		Background(theme.PaletteSubtle),
		Box(theme.PaletteSubtle),
		Padding(theme.SpacingSizeSmall),
	)
	return style.Render(label)
}

// Place anchors the rendered toggle in its corner of a width × height
// region.
func (t ThemeToggle) Place(ctx RenderContext, width, height int) string {
	h, v := t.position.Anchors()
	return lipgloss.Place(width, height, h, v, t.ViewWithContext(ctx))
}
