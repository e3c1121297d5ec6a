package config

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KJSDR/glaze/internal/theme"
)

// Themes resolves the configuration into a light/dark theme pair. Slots the
// file leaves empty keep the built-in literal fallbacks.
func (c *Config) Themes() (light, dark theme.Theme) {
	light = overlay(theme.LightTheme(), c)
	dark = overlay(theme.DarkTheme(), c)
	light.Palette = applyPalette(light.Palette, c.Light.Palette)
	dark.Palette = applyPalette(dark.Palette, c.Dark.Palette)
	return light.Normalize(), dark.Normalize()
}

// DefaultMode returns the configured default mode, falling back to light.
func (c *Config) DefaultMode() theme.Mode {
	return theme.ParseMode(c.Mode)
}

func overlay(base theme.Theme, c *Config) theme.Theme {
	base.Spacing = applySpacing(base.Spacing, c.Spacing)
	if border := parseBorderVariant(c.Border); border != nil {
		base.ComponentBorder = *border
	}
	return base
}

func applySpacing(scale theme.SpacingScale, o SpacingOverrides) theme.SpacingScale {
	apply := func(size theme.SpacingSize, value int) {
		if value > 0 {
			scale[size] = value
		}
	}
	apply(theme.SpacingSizeExtraSmall, o.ExtraSmall)
	apply(theme.SpacingSizeSmall, o.Small)
	apply(theme.SpacingSizeMedium, o.Medium)
	apply(theme.SpacingSizeLarge, o.Large)
	apply(theme.SpacingSizeExtraLarge, o.ExtraLarge)
	return scale
}

func applyPalette(p theme.Palette, o PaletteOverrides) theme.Palette {
	p.Primary = applyColours(p.Primary, o.Primary)
	p.Accent = applyColours(p.Accent, o.Accent)
	p.Subtle = applyColours(p.Subtle, o.Subtle)
	p.Surface = applyColours(p.Surface, o.Surface)
	p.Success = applyColours(p.Success, o.Success)
	p.Warning = applyColours(p.Warning, o.Warning)
	p.Danger = applyColours(p.Danger, o.Danger)
	p.Info = applyColours(p.Info, o.Info)
	p.Neutral = applyColours(p.Neutral, o.Neutral)
	return p
}

func applyColours(cs theme.ColourSet, o ColourOverrides) theme.ColourSet {
	if o.Base != "" {
		cs.Base = lipgloss.Color(o.Base)
	}
	if o.OnBase != "" {
		cs.OnBase = lipgloss.Color(o.OnBase)
	}
	if o.Muted != "" {
		cs.Muted = lipgloss.Color(o.Muted)
	}
	if o.Border != "" {
		cs.Border = lipgloss.Color(o.Border)
	}
	return cs
}

func parseBorderVariant(name string) *lipgloss.Border {
	var border lipgloss.Border
	switch strings.ToLower(name) {
	case "normal":
		border = lipgloss.NormalBorder()
	case "rounded":
		border = lipgloss.RoundedBorder()
	case "thick":
		border = lipgloss.ThickBorder()
	case "double":
		border = lipgloss.DoubleBorder()
	default:
		return nil
	}
	return &border
}
