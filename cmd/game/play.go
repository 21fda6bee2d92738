package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/application/game"
	"github.com/younwookim/tilerun/internal/application/scene/playing"
	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

func newPlayCmd(opts *options) *cobra.Command {
	var (
		record   string
		maxDT    float64
		noScores bool
	)

	cmd := &cobra.Command{
		Use:   "play [level]",
		Short: "Play a level",
		Long: `Open a window and play a level (default: level1).

Controls:
  Left/A, Right/D   - Move
  Space/W/Up        - Jump
  X/J/Ctrl          - Fire
  Esc               - Pause
  Enter             - Restart after the session ends
  F5                - Save the recording now

Examples:
  tilerun play
  tilerun play level1 --record run.json
  tilerun play --levels ./levels mylevel`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			cfg, err := opts.gameConfig()
			if err != nil {
				return err
			}

			name := defaultLevel
			if len(args) == 1 {
				name = levelName(args[0])
			}
			grid, err := opts.loadLevel(name, cfg.Level.TileSize)
			if err != nil {
				return err
			}

			sceneOpts := []playing.Option{playing.WithLogger(logger)}
			if cmd.Flags().Changed("record") {
				sceneOpts = append(sceneOpts, playing.WithRecording(record))
			}
			if !noScores {
				store, err := storage.Open(opts.dbPath)
				if err != nil {
					logger.Warn("could not open results database", "err", err)
				} else {
					defer func() { _ = store.Close() }()
					sceneOpts = append(sceneOpts, playing.WithResultStore(store))
				}
			}

			scn, err := playing.New(cfg, grid, name, sceneOpts...)
			if err != nil {
				return err
			}

			g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
			g.SetMaxDT(maxDT)

			ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
			ebiten.SetWindowTitle("tilerun - " + name)
			ebiten.SetTPS(cfg.Display.Framerate)

			return ebiten.RunGame(g)
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "Record input to file, .msgpack for the compact format (--record= for a timestamped name)")
	cmd.Flags().Float64Var(&maxDT, "max-dt", 0, "Clamp the frame delta in seconds (0 = no clamp)")
	cmd.Flags().BoolVar(&noScores, "no-scores", false, "Do not record results in the database")
	return cmd
}
