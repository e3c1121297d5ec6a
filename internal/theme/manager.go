package theme

import "sync"

// Manager holds the page-wide colour scheme state shared by every component
// on a screen: the current mode flag plus the light and dark themes it
// switches between. Toggles receive a Manager explicitly instead of reaching
// for ambient global state.
type Manager struct {
	mu    sync.RWMutex
	mode  Mode
	light Theme
	dark  Theme
}

// NewManager allocates a Manager seeded with the built-in themes and the
// light mode default.
func NewManager() *Manager {
	return &Manager{
		mode:  ModeLight,
		light: LightTheme(),
		dark:  DarkTheme(),
	}
}

// Mode returns the current mode flag.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Dark reports whether the dark-mode flag is set.
func (m *Manager) Dark() bool {
	return m.Mode() == ModeDark
}

// SetMode sets or clears the dark-mode flag.
func (m *Manager) SetMode(mode Mode) {
	m.mu.Lock()
	m.mode = ParseMode(string(mode))
	m.mu.Unlock()
}

// Toggle flips the mode flag and returns the new mode.
func (m *Manager) Toggle() Mode {
	m.mu.Lock()
	m.mode = m.mode.Opposite()
	mode := m.mode
	m.mu.Unlock()
	return mode
}

// Theme returns the theme for the current mode.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.mode == ModeDark {
		return m.dark
	}
	return m.light
}

// SetThemes replaces the managed theme pair. Both themes are normalized so
// token slots left empty keep their literal fallbacks.
func (m *Manager) SetThemes(light, dark Theme) {
	light.Mode = ModeLight
	dark.Mode = ModeDark
	m.mu.Lock()
	m.light = light.Normalize()
	m.dark = dark.Normalize()
	m.mu.Unlock()
}
