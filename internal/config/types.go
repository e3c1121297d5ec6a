package config

// Config models the optional glaze.yaml theme configuration. Every field is
// optional: anything left empty keeps the built-in literal fallback, so an
// absent or partial file still renders acceptably.
type Config struct {
	Version string `yaml:"version,omitempty" validate:"omitempty,oneof=1.0"`
	Mode    string `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark"`
	Border  string `yaml:"border,omitempty" validate:"omitempty,border_variant"`

	Spacing SpacingOverrides `yaml:"spacing,omitempty"`
	Light   ModeOverrides    `yaml:"light,omitempty"`
	Dark    ModeOverrides    `yaml:"dark,omitempty"`
}

// SpacingOverrides adjusts the spacing scale. Zero values keep the default.
type SpacingOverrides struct {
	ExtraSmall int `yaml:"xs,omitempty" validate:"omitempty,min=0,max=8"`
	Small      int `yaml:"sm,omitempty" validate:"omitempty,min=0,max=8"`
	Medium     int `yaml:"md,omitempty" validate:"omitempty,min=0,max=8"`
	Large      int `yaml:"lg,omitempty" validate:"omitempty,min=0,max=8"`
	ExtraLarge int `yaml:"xl,omitempty" validate:"omitempty,min=0,max=8"`
}

// ModeOverrides carries the palette overrides for one colour scheme.
type ModeOverrides struct {
	Palette PaletteOverrides `yaml:"palette,omitempty"`
}

// PaletteOverrides names the semantic colour slots a file may override.
type PaletteOverrides struct {
	Primary ColourOverrides `yaml:"primary,omitempty"`
	Accent  ColourOverrides `yaml:"accent,omitempty"`
	Subtle  ColourOverrides `yaml:"subtle,omitempty"`
	Surface ColourOverrides `yaml:"surface,omitempty"`
	Success ColourOverrides `yaml:"success,omitempty"`
	Warning ColourOverrides `yaml:"warning,omitempty"`
	Danger  ColourOverrides `yaml:"danger,omitempty"`
	Info    ColourOverrides `yaml:"info,omitempty"`
	Neutral ColourOverrides `yaml:"neutral,omitempty"`
}

// ColourOverrides overrides individual colours within one slot.
type ColourOverrides struct {
	Base   string `yaml:"base,omitempty" validate:"omitempty,hexcolor"`
	OnBase string `yaml:"on_base,omitempty" validate:"omitempty,hexcolor"`
	Muted  string `yaml:"muted,omitempty" validate:"omitempty,hexcolor"`
	Border string `yaml:"border,omitempty" validate:"omitempty,hexcolor"`
}
