package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a level file",
		Long: `Parse a level file and report its size and contents.

A level must have more than 10 rows and more than 200 columns and
contain a player spawn (P).

Examples:
  tilerun check ./mylevel.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.gameConfig()
			if err != nil {
				return err
			}

			path := args[0]
			out := cmd.OutOrStdout()

			grid, err := config.NewLoader(filepath.Dir(path)).LoadLevel(filepath.Base(path), cfg.Level.TileSize)
			if err == nil {
				_, err = system.NewWorld(cfg, grid)
			}
			if err != nil {
				fmt.Fprintf(out, "%s: invalid (%s)\n", path, system.FailureReason(err))
				return err
			}

			fmt.Fprintf(out, "%s: ok\n", path)
			fmt.Fprintf(out, "  size:     %d rows x %d cols\n", grid.Rows, grid.Cols)
			fmt.Fprintf(out, "  blocks:   %d\n", grid.Count(entity.TileBlock))
			fmt.Fprintf(out, "  hazards:  %d\n", grid.Count(entity.TileHazard))
			fmt.Fprintf(out, "  goals:    %d\n", grid.Count(entity.TileGoal))
			fmt.Fprintf(out, "  enemies:  %d\n", grid.Count(entity.TileEnemySpawn))
			fmt.Fprintf(out, "  coins:    %d\n", grid.Count(entity.TileCoinSpawn))
			if grid.Count(entity.TileGoal) == 0 {
				fmt.Fprintln(out, "  warning:  no goal, the level cannot be won")
			}
			return nil
		},
	}
}
