package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/application/game"
	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/scene/playing"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

func newReplayCmd(opts *options) *cobra.Command {
	var (
		watch bool
		level string
	)

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Re-simulate a recorded session",
		Long: `Re-simulate a recording made with 'tilerun play --record'.

The session runs headless with the recorded frame deltas and the tuning
stored in the recording, then prints the outcome. With --watch it plays
back in a window instead.

Examples:
  tilerun replay run.json
  tilerun replay run.msgpack --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}

			cfg := data.Config
			if cfg == nil {
				if cfg, err = opts.gameConfig(); err != nil {
					return err
				}
			} else if err := cfg.Validate(); err != nil {
				return fmt.Errorf("recording %s: %w", args[0], err)
			}

			name := data.Level
			if level != "" {
				name = levelName(level)
			}
			grid, err := opts.loadLevel(name, cfg.Level.TileSize)
			if err != nil {
				return err
			}

			if watch {
				return watchReplay(cfg, grid, name, data)
			}

			world, err := system.NewWorld(cfg, grid)
			if err != nil {
				return err
			}
			rp := replay.NewReplayer(*data)
			res := replay.NewRunner(logger).Run(world, rp)
			printReplayResult(cmd, name, rp, res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Play back in a window")
	cmd.Flags().StringVar(&level, "level", "", "Override the level stored in the recording")
	return cmd
}

func printReplayResult(cmd *cobra.Command, level string, rp *replay.Replayer, res replay.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level:    %s\n", level)
	if recorded := rp.Level(); recorded != level {
		fmt.Fprintf(out, "Recorded: %s\n", recorded)
	}
	fmt.Fprintf(out, "Outcome:  %s\n", res.Outcome.Status)
	fmt.Fprintf(out, "Points:   %d\n", res.Outcome.Points)
	fmt.Fprintf(out, "Frames:   %d\n", res.Outcome.Frames)
	fmt.Fprintf(out, "Kills:    %d\n", res.Kills)
	fmt.Fprintf(out, "Coins:    %d\n", res.Coins)
	fmt.Fprintf(out, "Hits:     %d\n", res.Hits)
	if res.Exhausted {
		fmt.Fprintf(out, "Recording ended before the session did (%d frames).\n", rp.TotalFrames())
	}
}

func watchReplay(cfg *config.GameConfig, grid *entity.Grid, name string, data *replay.ReplayData) error {
	in := playing.NewReplayInput(replay.NewReplayer(*data), playing.KeyboardInput{})
	scn, err := playing.New(cfg, grid, name, playing.WithInput(in))
	if err != nil {
		return err
	}

	g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("tilerun - replay %s (%d frames)", name, len(data.Frames)))
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}
