package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/KJSDR/glaze/internal/config"
	"github.com/KJSDR/glaze/internal/logger"
	"github.com/KJSDR/glaze/internal/store"
	"github.com/KJSDR/glaze/internal/theme"
	"github.com/KJSDR/glaze/internal/tui"
)

func runDemo(log *logger.Logger, flags *rootFlags) error {
	if flags.verbose {
		var err error
		log, err = logger.New(logger.Options{Level: "debug", Pretty: true})
		if err != nil {
			return err
		}
	}

	manager, prefs, err := bootstrap(log, flags.configPath)
	if err != nil {
		return err
	}

	model := tui.NewModel(manager, prefs, log.WithComponent("tui"))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if width, height, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		log.Debugf("terminal size %dx%d", width, height)
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

// bootstrap builds the shared theme manager: theme configuration is parsed
// and applied, then the persisted preference sets the dark-mode flag before
// any component renders.
func bootstrap(log *logger.Logger, configPath string) (*theme.Manager, *store.Store, error) {
	manager := theme.NewManager()

	if configPath == "" {
		configPath = "glaze.yaml"
	}
	cfg, err := config.Parse(configPath)
	if err != nil {
		return nil, nil, err
	}
	light, dark := cfg.Themes()
	manager.SetThemes(light, dark)

	prefsPath, err := store.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	prefs, err := store.New(prefsPath)
	if err != nil {
		return nil, nil, err
	}

	// The persisted preference wins; absent storage falls back to the
	// configured default mode.
	if mode, ok := prefs.Load(); ok {
		manager.SetMode(mode)
		log.Debugf("theme preference loaded: %s", mode)
	} else {
		manager.SetMode(cfg.DefaultMode())
	}

	return manager, prefs, nil
}
