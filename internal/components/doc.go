// Package components provides the decorative elements shipped with glaze: a
// badge, a dismissible alert, and a theme toggle.
//
// Components are independent. Each owns its state bundle, parses its
// attributes with silent fallback to documented defaults, and renders
// through the theme token layer so every visual property resolves to a
// named token with a literal fallback. Coordination happens only through
// bubbletea messages that propagate to the enclosing program:
//
//   - ThemeChangedMsg after a toggle activation
//   - AlertDismissedMsg after a dismiss transition completes
//
// The alert's exit transition is the only asynchronous behaviour. Dismissal
// schedules a one-shot timer; completion messages carry the component id and
// a dismiss sequence number, and stale deliveries are ignored.
package components
