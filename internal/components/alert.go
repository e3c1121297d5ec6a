package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// DismissDuration is the length of the alert's exit transition. The closing
// effect fires once this delay elapses after a dismiss request.
const DismissDuration = 300 * time.Millisecond

// AlertVariant specifies the semantic category of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// ParseAlertVariant converts a free-form attribute value into a variant.
// Unrecognized values fall back to info; there is no error path.
func ParseAlertVariant(s string) AlertVariant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return AlertVariantSuccess
	case "warning":
		return AlertVariantWarning
	case "error":
		return AlertVariantError
	default:
		return AlertVariantInfo
	}
}

func (v AlertVariant) String() string {
	switch v {
	case AlertVariantSuccess:
		return "success"
	case AlertVariantWarning:
		return "warning"
	case AlertVariantError:
		return "error"
	default:
		return "info"
	}
}

func (v AlertVariant) slot() theme.PaletteSlot {
	switch v {
	case AlertVariantSuccess:
		return theme.PaletteSuccess
	case AlertVariantWarning:
		return theme.PaletteWarning
	case AlertVariantError:
		return theme.PaletteDanger
	default:
		return theme.PaletteInfo
	}
}

func (v AlertVariant) icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}

// ParseOpenAttr interprets the open attribute: only the explicit string
// "false" closes the alert, anything else (including absence) leaves it
// open.
func ParseOpenAttr(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) != "false"
}

// AlertState identifies a position in the alert's visibility lifecycle.
type AlertState int

const (
	AlertStateOpen AlertState = iota
	AlertStateDismissing
	AlertStateClosed
)

// AlertOptions defines the construction-time attributes of an alert.
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	// StartClosed creates the alert already hidden, with no exit
	// animation. It corresponds to constructing with the open attribute
	// set to "false".
	StartClosed bool
}

// Alert is a message banner with an open → dismissing → closed lifecycle.
//
// Dismissal is a two-step transition: a dismiss request starts the exit
// animation, and a one-shot timer completes it after DismissDuration,
// emitting AlertDismissedMsg exactly once. Repeat requests while dismissing
// schedule nothing, and a completion that arrives after Show or for a
// different dismiss cycle is ignored.
type Alert struct {
	id      int
	seq     int
	message string
	title   string
	variant AlertVariant

	dismissible bool
	state       AlertState

	dismissKeys key.Binding
}

// NewAlert creates an alert with the given message and options.
func NewAlert(message string, opts AlertOptions) Alert {
	state := AlertStateOpen
	if opts.StartClosed {
		state = AlertStateClosed
	}
	return Alert{
		id:          nextID(),
		message:     message,
		title:       opts.Title,
		variant:     opts.Variant,
		dismissible: opts.Dismissible,
		state:       state,
		dismissKeys: key.NewBinding(key.WithKeys("enter", " ")),
	}
}

// InfoAlert creates an open info alert.
func InfoAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo})
}

// SuccessAlert creates an open, dismissible success alert.
func SuccessAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Dismissible: true})
}

// WarningAlert creates an open, dismissible warning alert.
func WarningAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantWarning, Dismissible: true})
}

// ErrorAlert creates an open, dismissible error alert.
func ErrorAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Dismissible: true})
}

// State returns the current lifecycle state.
func (a Alert) State() AlertState {
	return a.state
}

// Variant returns the current variant.
func (a Alert) Variant() AlertVariant {
	return a.variant
}

// Dismissible reports whether the close control is present.
func (a Alert) Dismissible() bool {
	return a.dismissible
}

// SetVariant applies a free-form variant attribute. Restyling is immediate
// and never touches the lifecycle state.
func (a Alert) SetVariant(raw string) Alert {
	a.variant = ParseAlertVariant(raw)
	return a
}

// SetDismissible toggles the close control. The current lifecycle state is
// unaffected.
func (a Alert) SetDismissible(dismissible bool) Alert {
	a.dismissible = dismissible
	return a
}

// Dismiss requests the dismiss transition. From open it starts the exit
// animation and schedules the one-shot completion timer; from any other
// state it is a no-op, so a second request cannot double-schedule the
// closing effect.
func (a Alert) Dismiss() (Alert, tea.Cmd) {
	if a.state != AlertStateOpen {
		return a, nil
	}

	a.state = AlertStateDismissing
	a.seq++

	id, seq := a.id, a.seq
	return a, tea.Tick(DismissDuration, func(time.Time) tea.Msg {
		return alertDismissCompleteMsg{ID: id, Seq: seq}
	})
}

// Show forces the alert back to fully visible with no animation. Bumping
// the sequence number invalidates any completion timer still in flight.
func (a Alert) Show() Alert {
	a.seq++
	a.state = AlertStateOpen
	return a
}

// Init implements tea.Model conventions; alerts schedule nothing at start.
func (a Alert) Init() tea.Cmd {
	return nil
}

// Update handles close-control activation and the dismiss completion timer.
func (a Alert) Update(msg tea.Msg) (Alert, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.dismissible && key.Matches(msg, a.dismissKeys) {
			return a.Dismiss()
		}
		return a, nil

	case alertDismissCompleteMsg:
		if msg.ID != a.id || msg.Seq != a.seq || a.state != AlertStateDismissing {
			// Stale timer: the alert was shown again, closed through
			// another cycle, or the message belongs to a different
			// instance.
			return a, nil
		}
		a.state = AlertStateClosed
		variant := a.variant
		return a, func() tea.Msg {
			return AlertDismissedMsg{Variant: variant}
		}
	}

	return a, nil
}

// View renders the alert with the default theme.
func (a Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the given render context. Closed
// alerts render nothing.
func (a Alert) ViewWithContext(ctx RenderContext) string {
	if a.state == AlertStateClosed {
		return ""
	}

	slot := a.variant.slot()
	appliers := []StyleFunc{
		Background(slot),
		Box(slot),
		Padding(theme.SpacingSizeSmall),
	}
	if a.state == AlertStateDismissing {
		appliers = append(appliers, func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
			return base.Faint(true)
		})
	}
	style := Style(lipgloss.NewStyle(), ctx.Theme, appliers...)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}

	var lines []string
	if a.title != "" {
		titleStyle := Style(lipgloss.NewStyle(), ctx.Theme, Emphasis())
		lines = append(lines, titleStyle.Render(a.title))
	}

	messageLine := a.variant.icon() + " " + a.message
	if a.dismissible {
		messageLine += "  [✕]"
	}
	lines = append(lines, messageLine)

	return style.Render(strings.Join(lines, "\n"))
}
