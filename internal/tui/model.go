// Package tui hosts the demo application that exercises the glaze
// components inside a single bubbletea program.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KJSDR/glaze/internal/components"
	"github.com/KJSDR/glaze/internal/logger"
	"github.com/KJSDR/glaze/internal/theme"
)

const maxEventLog = 5

// keyMap defines the demo key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Dismiss key.Binding
	Show    key.Binding
	Toggle  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous alert"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next alert"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "dismiss alert"),
		),
		Show: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reopen alerts"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Show, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dismiss, k.Show},
		{k.Toggle, k.Help, k.Quit},
	}
}

// Model is the demo application model. It owns one of each component and an
// event log showing the messages that bubbled up from them.
type Model struct {
	manager *theme.Manager
	log     *logger.Logger

	badges []components.Badge
	alerts []components.Alert
	toggle components.ThemeToggle

	cursor int
	events []string

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel builds the demo model. The toggle reads the persisted theme
// preference during construction, before anything renders.
func NewModel(manager *theme.Manager, prefs components.PreferenceStore, log *logger.Logger) Model {
	badges := []components.Badge{
		components.NewBadge("primary"),
		components.NewBadge("accent").WithVariant(components.BadgeVariantAccent),
		components.NewBadge("subtle").WithVariant(components.BadgeVariantSubtle),
	}

	alerts := []components.Alert{
		components.InfoAlert("Theme tokens loaded with literal fallbacks."),
		components.SuccessAlert("Preferences were written to disk."),
		components.WarningAlert("This alert dismisses with a short exit transition."),
		components.ErrorAlert("Something broke. Dismiss me and watch the event log."),
	}

	return Model{
		manager: manager,
		log:     log,
		badges:  badges,
		alerts:  alerts,
		toggle:  components.NewThemeToggle(manager, prefs),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) pushEvent(event string) {
	m.events = append(m.events, event)
	if len(m.events) > maxEventLog {
		m.events = m.events[len(m.events)-maxEventLog:]
	}
}
