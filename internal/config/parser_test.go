package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KJSDR/glaze/internal/theme"
	glazeerrors "github.com/KJSDR/glaze/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseMissingFile(t *testing.T) {
	cfg, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, theme.ModeLight, cfg.DefaultMode())
}

func TestParseValidConfig(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
mode: dark
border: rounded
spacing:
  sm: 2
light:
  palette:
    primary:
      base: "#ff0000"
dark:
  palette:
    primary:
      base: "#00ff00"
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, theme.ModeDark, cfg.DefaultMode())
	assert.Equal(t, "rounded", cfg.Border)
	assert.Equal(t, 2, cfg.Spacing.Small)
	assert.Equal(t, "#ff0000", cfg.Light.Palette.Primary.Base)
}

func TestParseMalformedYAML(t *testing.T) {
	path := writeConfig(t, "mode: [broken\n")

	_, err := Parse(path)
	require.Error(t, err)

	var parseErr *glazeerrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseInvalidHexColour(t *testing.T) {
	path := writeConfig(t, `
light:
  palette:
    primary:
      base: "not-a-colour"
`)

	_, err := Parse(path)
	require.Error(t, err)

	var validationErr *glazeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "hex colour")
}

func TestParseInvalidMode(t *testing.T) {
	path := writeConfig(t, "mode: sepia\n")

	_, err := Parse(path)
	require.Error(t, err)

	var validationErr *glazeerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParseInvalidBorderVariant(t *testing.T) {
	path := writeConfig(t, "border: dashed\n")

	_, err := Parse(path)
	require.Error(t, err)

	var validationErr *glazeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "rounded")
}

func TestThemesOverlay(t *testing.T) {
	cfg := &Config{
		Border: "double",
		Spacing: SpacingOverrides{
			Medium: 4,
		},
		Light: ModeOverrides{
			Palette: PaletteOverrides{
				Primary: ColourOverrides{Base: "#ff0000"},
			},
		},
		Dark: ModeOverrides{
			Palette: PaletteOverrides{
				Primary: ColourOverrides{Base: "#00ff00"},
			},
		},
	}

	light, dark := cfg.Themes()

	assert.Equal(t, lipgloss.Color("#ff0000"), light.Palette.Primary.Base)
	assert.Equal(t, lipgloss.Color("#00ff00"), dark.Palette.Primary.Base)
	assert.Equal(t, lipgloss.DoubleBorder(), light.ComponentBorder)
	assert.Equal(t, 4, light.Spacing.Value(theme.SpacingSizeMedium))

	// Untouched slots keep the built-in literal fallbacks.
	assert.Equal(t, theme.LightTheme().Palette.Accent, light.Palette.Accent)
	assert.Equal(t, theme.LightTheme().Palette.Primary.OnBase, light.Palette.Primary.OnBase)
}

func TestThemesEmptyConfig(t *testing.T) {
	cfg := &Config{}

	light, dark := cfg.Themes()

	assert.Equal(t, theme.LightTheme().Palette, light.Palette)
	assert.Equal(t, theme.DarkTheme().Palette, dark.Palette)
	assert.Equal(t, theme.ModeLight, cfg.DefaultMode())
}
