package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KJSDR/glaze/internal/logger"
	"github.com/KJSDR/glaze/internal/store"
	"github.com/KJSDR/glaze/internal/theme"
)

func newThemeCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the persisted theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openStore()
			if err != nil {
				return err
			}

			mode, ok := prefs.Load()
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", mode)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}

	cmd.AddCommand(newThemeSetCmd(log))
	return cmd
}

func newThemeSetCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark>",
		Short: "Persist a theme preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openStore()
			if err != nil {
				return err
			}

			// Free-form input degrades to light, matching component
			// attribute handling.
			mode := theme.ParseMode(args[0])
			if err := prefs.Save(mode); err != nil {
				log.Error(err, "failed to persist theme preference")
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}
}

func openStore() (*store.Store, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	return store.New(path)
}
