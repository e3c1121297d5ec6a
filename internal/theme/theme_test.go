package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Mode
	}{
		{"dark", "dark", ModeDark},
		{"light", "light", ModeLight},
		{"mixed case", "Dark", ModeDark},
		{"surrounding space", "  dark  ", ModeDark},
		{"empty", "", ModeLight},
		{"unrecognized", "solarized", ModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.input))
		})
	}
}

func TestModeOpposite(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Opposite())
	assert.Equal(t, ModeLight, ModeDark.Opposite())
}

func TestBuiltinThemes(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.Equal(t, ModeLight, light.Mode)
	assert.Equal(t, ModeDark, dark.Mode)

	// Every slot carries a literal fallback value.
	for name, cs := range map[string]ColourSet{
		"light primary": light.Palette.Primary,
		"light subtle":  light.Palette.Subtle,
		"dark primary":  dark.Palette.Primary,
		"dark danger":   dark.Palette.Danger,
	} {
		assert.NotEmpty(t, cs.Base, name)
		assert.NotEmpty(t, cs.OnBase, name)
		assert.NotEmpty(t, cs.Muted, name)
		assert.NotEmpty(t, cs.Border, name)
	}
}

func TestNormalizeFillsEmptySlots(t *testing.T) {
	partial := Theme{
		Mode: ModeLight,
		Palette: Palette{
			Primary: ColourSet{Base: lipgloss.Color("#123456")},
		},
	}

	normalized := partial.Normalize()

	// Overridden value survives.
	assert.Equal(t, lipgloss.Color("#123456"), normalized.Palette.Primary.Base)
	// Everything left empty picks up the built-in literal.
	fallback := LightTheme()
	assert.Equal(t, fallback.Palette.Primary.OnBase, normalized.Palette.Primary.OnBase)
	assert.Equal(t, fallback.Palette.Accent, normalized.Palette.Accent)
	assert.Equal(t, fallback.Spacing, normalized.Spacing)
	assert.Equal(t, fallback.Borders, normalized.Borders)
	assert.Equal(t, fallback.ComponentBorder, normalized.ComponentBorder)
}

func TestSpacingScaleFallback(t *testing.T) {
	scale := defaultSpacingScale()

	assert.Equal(t, 0, scale.Value(SpacingSizeNone))
	assert.Equal(t, scale[SpacingSizeMedium], scale.Value(SpacingSize(99)))
	assert.Equal(t, scale[SpacingSizeMedium], scale.Value(SpacingSize(-1)))
}

func TestBorderSetFallback(t *testing.T) {
	borders := defaultBorders()

	assert.Equal(t, borders.Rounded, borders.Border(BorderVariantRounded))
	assert.Equal(t, borders.None, borders.Border(BorderVariant(42)))
}

func TestManagerDefaults(t *testing.T) {
	m := NewManager()

	assert.Equal(t, ModeLight, m.Mode())
	assert.False(t, m.Dark())
	assert.Equal(t, ModeLight, m.Theme().Mode)
}

func TestManagerSetMode(t *testing.T) {
	m := NewManager()

	m.SetMode(ModeDark)
	assert.True(t, m.Dark())
	assert.Equal(t, ModeDark, m.Theme().Mode)

	// Unrecognized values degrade to the light default.
	m.SetMode(Mode("sepia"))
	assert.Equal(t, ModeLight, m.Mode())
}

func TestManagerToggleRoundTrip(t *testing.T) {
	m := NewManager()

	assert.Equal(t, ModeDark, m.Toggle())
	assert.Equal(t, ModeLight, m.Toggle())
	assert.Equal(t, ModeLight, m.Mode())
}

func TestManagerSetThemes(t *testing.T) {
	m := NewManager()

	custom := Theme{
		Palette: Palette{
			Primary: ColourSet{Base: lipgloss.Color("#ff0000")},
		},
	}
	m.SetThemes(custom, Theme{})

	got := m.Theme()
	require.Equal(t, ModeLight, got.Mode)
	assert.Equal(t, lipgloss.Color("#ff0000"), got.Palette.Primary.Base)
	// Normalization backfilled the rest with literals.
	assert.NotEmpty(t, got.Palette.Accent.Base)

	m.SetMode(ModeDark)
	assert.Equal(t, ModeDark, m.Theme().Mode)
	assert.Equal(t, DarkTheme().Palette.Primary.Base, m.Theme().Palette.Primary.Base)
}
