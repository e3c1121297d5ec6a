package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KJSDR/glaze/internal/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case components.ThemeChangedMsg:
		m.pushEvent(fmt.Sprintf("theme-changed: %s", msg.Theme))
		if msg.SaveErr != nil {
			m.log.Error(msg.SaveErr, "failed to persist theme preference")
			m.pushEvent("preference write failed")
		}
		return m, nil

	case components.AlertDismissedMsg:
		m.pushEvent(fmt.Sprintf("alert-dismissed: %s", msg.Variant))
		return m, nil
	}

	// Everything else, notably the alerts' dismiss completion timers, is
	// forwarded to the alert instances.
	return m.forwardToAlerts(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.alerts)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		var cmd tea.Cmd
		m.toggle, cmd = m.toggle.Toggle()
		return m, cmd

	case key.Matches(msg, m.keys.Dismiss):
		if m.cursor < len(m.alerts) {
			var cmd tea.Cmd
			m.alerts[m.cursor], cmd = m.alerts[m.cursor].Dismiss()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Show):
		for i := range m.alerts {
			if m.alerts[i].State() == components.AlertStateClosed {
				m.alerts[i] = m.alerts[i].Show()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) forwardToAlerts(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.alerts {
		var cmd tea.Cmd
		m.alerts[i], cmd = m.alerts[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}
