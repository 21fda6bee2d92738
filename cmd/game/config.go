package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default game.yaml",
		Long: `Print the built-in tuning as YAML. Save it, edit the keys you want to
change and pass the file with --config.

Examples:
  tilerun config > game.yaml
  tilerun play --config game.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		},
	}
}
