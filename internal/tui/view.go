package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/components"
)

// View renders the demo screen.
func (m Model) View() string {
	ctx := components.ContextFor(m.manager)
	st := newStyles(ctx.Theme)

	var sections []string

	title := st.title.Render("glaze components")
	toggleRow := m.renderToggleRow(ctx, title)
	sections = append(sections, toggleRow)

	var badgeRow []string
	for _, b := range m.badges {
		badgeRow = append(badgeRow, b.ViewWithContext(ctx))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(badgeRow, " ")))

	for i, a := range m.alerts {
		view := a.ViewWithContext(ctx)
		if view == "" {
			continue
		}
		if i == m.cursor {
			view = st.selected.Render(view)
		}
		sections = append(sections, view)
	}

	if len(m.events) > 0 {
		var log []string
		log = append(log, st.eventTitle.Render("events"))
		for _, event := range m.events {
			log = append(log, st.event.Render("· "+event))
		}
		sections = append(sections, strings.Join(log, "\n"))
	}

	sections = append(sections, m.help.View(m.keys))

	return st.screen.Render(strings.Join(sections, "\n\n"))
}

// renderToggleRow puts the toggle on the title line, anchored left or right
// according to its position attribute.
func (m Model) renderToggleRow(ctx components.RenderContext, title string) string {
	toggle := m.toggle.ViewWithContext(ctx)
	width := m.width - 4
	if width < lipgloss.Width(title)+lipgloss.Width(toggle) {
		return title + " " + toggle
	}

	h, _ := m.toggle.Position().Anchors()
	if h == lipgloss.Left {
		return lipgloss.JoinHorizontal(lipgloss.Center, toggle, "  ", title)
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(toggle)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), toggle)
}
