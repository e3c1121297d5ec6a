package theme

import "strings"

// Mode identifies the page-wide colour scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode converts a free-form string into a Mode. Unrecognized values
// fall back to ModeLight rather than erroring.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeDark):
		return ModeDark
	case string(ModeLight):
		return ModeLight
	default:
		return ModeLight
	}
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// String returns the persisted representation of the mode.
func (m Mode) String() string {
	return string(m)
}
