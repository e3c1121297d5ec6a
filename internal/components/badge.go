package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantPrimary BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantSubtle
)

// ParseBadgeVariant converts a free-form attribute value into a variant.
// Unrecognized values fall back to primary; there is no error path.
func ParseBadgeVariant(s string) BadgeVariant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accent":
		return BadgeVariantAccent
	case "subtle":
		return BadgeVariantSubtle
	default:
		return BadgeVariantPrimary
	}
}

func (v BadgeVariant) String() string {
	switch v {
	case BadgeVariantAccent:
		return "accent"
	case BadgeVariantSubtle:
		return "subtle"
	default:
		return "primary"
	}
}

func (v BadgeVariant) slot() theme.PaletteSlot {
	switch v {
	case BadgeVariantAccent:
		return theme.PaletteAccent
	case BadgeVariantSubtle:
		return theme.PaletteSubtle
	default:
		return theme.PalettePrimary
	}
}

// Badge is a stateless label classed by its variant. It emits no messages;
// changing the variant only re-derives the rendered style.
type Badge struct {
	label   string
	variant BadgeVariant
}

// NewBadge creates a badge with the given label and the primary variant.
func NewBadge(label string) Badge {
	return Badge{label: label, variant: BadgeVariantPrimary}
}

// WithVariant sets the badge variant.
func (b Badge) WithVariant(variant BadgeVariant) Badge {
	b.variant = variant
	return b
}

// SetVariant applies a free-form variant attribute, falling back to primary
// for unrecognized values.
func (b Badge) SetVariant(raw string) Badge {
	b.variant = ParseBadgeVariant(raw)
	return b
}

// Variant returns the current variant.
func (b Badge) Variant() BadgeVariant {
	return b.variant
}

// Label returns the badge label.
func (b Badge) Label() string {
	return b.label
}

// View renders the badge with the default theme.
func (b Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given render context.
func (b Badge) ViewWithContext(ctx RenderContext) string {
	style := Style(lipgloss.NewStyle(), ctx.Theme,
		Background(b.variant.slot()),
		Padding(theme.SpacingSizeSmall),
		Emphasis(),
	)
	return style.Render(b.label)
}
