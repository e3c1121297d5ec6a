// Package store persists the page-wide theme preference between sessions.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/KJSDR/glaze/internal/theme"
)

const (
	prefsFileName = "preferences.ini"
	prefsSection  = "appearance"
	themeKey      = "theme"
)

// Store reads and writes the persisted theme preference. A missing or
// unreadable preference never faults: it degrades to the light default.
type Store struct {
	path string
}

// New creates a Store backed by the given preference file path. The parent
// directory is created if needed.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preference directory: %w", err)
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the preference file location under the user config
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, "glaze", prefsFileName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted theme preference. Absent storage or an
// unrecognized value yields the light default with ok=false.
func (s *Store) Load() (theme.Mode, bool) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		return theme.ModeLight, false
	}

	key := cfg.Section(prefsSection).Key(themeKey)
	if key.String() == "" {
		return theme.ModeLight, false
	}
	return theme.ParseMode(key.String()), true
}

// Save writes the theme preference, replacing any previous value. The write
// goes to a temporary file first and is renamed into place.
func (s *Store) Save(mode theme.Mode) error {
	cfg, err := ini.Load(s.path)
	if err != nil {
		cfg = ini.Empty()
	}

	cfg.Section(prefsSection).Key(themeKey).SetValue(mode.String())

	tmpPath := s.path + ".tmp"
	if err := cfg.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write temporary preference file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary preference file: %w", err)
	}
	return nil
}

// Bootstrap loads the persisted preference and applies it to the manager so
// the dark-mode flag is in place before any component renders.
func Bootstrap(s *Store, m *theme.Manager) theme.Mode {
	mode, _ := s.Load()
	m.SetMode(mode)
	return mode
}
