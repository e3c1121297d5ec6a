package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour slot with base, on-base, muted, and
// border colours.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Palette describes the semantic colour slots consumed by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Subtle  ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSubtle  PaletteSlot = func(p Palette) ColourSet { return p.Subtle }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant selects a border definition from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Border returns the border definition for a variant. Unknown variants fall
// back to no border.
func (b BorderSet) Border(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantRounded:
		return b.Rounded
	case BorderVariantThick:
		return b.Thick
	case BorderVariantDouble:
		return b.Double
	default:
		return b.None
	}
}

// SpacingSize enumerates supported spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

// SpacingScale maps spacing tokens to cell counts.
type SpacingScale [spacingSizeCount]int

// Value looks up a spacing token. Out-of-range tokens fall back to the
// medium value.
func (s SpacingScale) Value(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		index = int(SpacingSizeMedium)
	}
	return s[index]
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

func (s SpacingScale) isZero() bool {
	for _, value := range s {
		if value != 0 {
			return false
		}
	}
	return true
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

// Theme bundles every token consumed by components. All values in the
// built-in themes are literal fallbacks; configuration may override
// individual slots and anything left empty keeps its literal.
type Theme struct {
	Mode       Mode
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingScale
	Typography TypographyScale

	// ComponentBorder is the border drawn around boxed components such as
	// alerts. Zero value falls back to the normal border.
	ComponentBorder lipgloss.Border
}

// Normalize fills zero-valued token groups with their literal fallbacks so a
// partially specified theme still renders acceptably.
func (t Theme) Normalize() Theme {
	fallback := builtinTheme(t.Mode)
	t.Palette = normalizePalette(t.Palette, fallback.Palette)
	if t.Borders == (BorderSet{}) {
		t.Borders = fallback.Borders
	}
	if t.Spacing.isZero() {
		t.Spacing = fallback.Spacing
	}
	if t.ComponentBorder == (lipgloss.Border{}) {
		t.ComponentBorder = t.Borders.Normal
	}
	t.Typography = defaultTypography(t.Palette)
	return t
}

func normalizePalette(p, fallback Palette) Palette {
	p.Primary = normalizeColourSet(p.Primary, fallback.Primary)
	p.Accent = normalizeColourSet(p.Accent, fallback.Accent)
	p.Subtle = normalizeColourSet(p.Subtle, fallback.Subtle)
	p.Surface = normalizeColourSet(p.Surface, fallback.Surface)
	p.Success = normalizeColourSet(p.Success, fallback.Success)
	p.Warning = normalizeColourSet(p.Warning, fallback.Warning)
	p.Danger = normalizeColourSet(p.Danger, fallback.Danger)
	p.Info = normalizeColourSet(p.Info, fallback.Info)
	p.Neutral = normalizeColourSet(p.Neutral, fallback.Neutral)
	return p
}

func normalizeColourSet(cs, fallback ColourSet) ColourSet {
	if cs.Base == "" {
		cs.Base = fallback.Base
	}
	if cs.OnBase == "" {
		cs.OnBase = fallback.OnBase
	}
	if cs.Muted == "" {
		cs.Muted = fallback.Muted
	}
	if cs.Border == "" {
		cs.Border = fallback.Border
	}
	return cs
}

func builtinTheme(mode Mode) Theme {
	if mode == ModeDark {
		return darkTheme()
	}
	return lightTheme()
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return lightTheme()
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return darkTheme()
}

func lightTheme() Theme {
	cs := func(base, onBase, muted, border string) ColourSet {
		return ColourSet{
			Base:   lipgloss.Color(base),
			OnBase: lipgloss.Color(onBase),
			Muted:  lipgloss.Color(muted),
			Border: lipgloss.Color(border),
		}
	}

	palette := Palette{
		Primary: cs("#2563eb", "#f8fafc", "#1d4ed8", "#1e40af"),
		Accent:  cs("#7c3aed", "#f8fafc", "#6d28d9", "#5b21b6"),
		Subtle:  cs("#e2e8f0", "#334155", "#cbd5e1", "#94a3b8"),
		Surface: cs("#f8fafc", "#0f172a", "#e2e8f0", "#cbd5e1"),
		Success: cs("#16a34a", "#f0fdf4", "#15803d", "#166534"),
		Warning: cs("#d97706", "#451a03", "#b45309", "#92400e"),
		Danger:  cs("#dc2626", "#fef2f2", "#b91c1c", "#991b1b"),
		Info:    cs("#0891b2", "#ecfeff", "#0e7490", "#155e75"),
		Neutral: cs("#64748b", "#f1f5f9", "#475569", "#334155"),
	}

	return Theme{
		Mode:            ModeLight,
		Palette:         palette,
		Borders:         defaultBorders(),
		Spacing:         defaultSpacingScale(),
		Typography:      defaultTypography(palette),
		ComponentBorder: lipgloss.NormalBorder(),
	}
}

func darkTheme() Theme {
	cs := func(base, onBase, muted, border string) ColourSet {
		return ColourSet{
			Base:   lipgloss.Color(base),
			OnBase: lipgloss.Color(onBase),
			Muted:  lipgloss.Color(muted),
			Border: lipgloss.Color(border),
		}
	}

	palette := Palette{
		Primary: cs("#60a5fa", "#0b1120", "#3b82f6", "#1d4ed8"),
		Accent:  cs("#c084fc", "#1e1b4b", "#a855f7", "#7c3aed"),
		Subtle:  cs("#1f2937", "#cbd5e1", "#334155", "#475569"),
		Surface: cs("#0f172a", "#e2e8f0", "#1e293b", "#334155"),
		Success: cs("#4ade80", "#052e16", "#22c55e", "#15803d"),
		Warning: cs("#facc15", "#422006", "#eab308", "#a16207"),
		Danger:  cs("#f87171", "#450a0a", "#ef4444", "#b91c1c"),
		Info:    cs("#22d3ee", "#083344", "#06b6d4", "#0e7490"),
		Neutral: cs("#94a3b8", "#0f172a", "#64748b", "#475569"),
	}

	return Theme{
		Mode:            ModeDark,
		Palette:         palette,
		Borders:         defaultBorders(),
		Spacing:         defaultSpacingScale(),
		Typography:      defaultTypography(palette),
		ComponentBorder: lipgloss.NormalBorder(),
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Body:     base,
		Emphasis: base.Bold(true),
		Caption:  base.Faint(true),
	}
}
