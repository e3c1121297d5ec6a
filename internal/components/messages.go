package components

import "github.com/KJSDR/glaze/internal/theme"

// ThemeChangedMsg is emitted after a theme toggle activation. It carries the
// new mode and propagates to the enclosing program like any bubbletea
// message.
type ThemeChangedMsg struct {
	Theme theme.Mode
	// SaveErr reports a failed preference write. The in-memory mode change
	// has already taken effect when it is set.
	SaveErr error
}

// AlertDismissedMsg is emitted exactly once when an alert finishes its
// dismiss transition.
type AlertDismissedMsg struct {
	Variant AlertVariant
}

// alertDismissCompleteMsg fires when an alert's exit transition delay
// elapses. ID and Seq let the owning alert discard deliveries that are
// stale or meant for another instance.
type alertDismissCompleteMsg struct {
	ID  int
	Seq int
}
