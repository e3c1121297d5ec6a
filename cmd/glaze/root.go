package main

import (
	"github.com/spf13/cobra"

	"github.com/KJSDR/glaze/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glaze",
		Short:         "Glaze is a classless styling kit for terminal applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the component demo.
			return runDemo(log, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a theme configuration file")

	cmd.AddCommand(newThemeCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
