package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

func newScoresCmd(opts *options) *cobra.Command {
	var (
		limit    int
		recent   int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "scores [level]",
		Short: "Show best results for a level",
		Long: `Display the best victories recorded for a level (default: level1),
ranked by points and then by the fewest frames.

Examples:
  tilerun scores
  tilerun scores level1 --limit 5
  tilerun scores --recent 10
  tilerun scores level1 --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultLevel
			if len(args) == 1 {
				name = levelName(args[0])
			}

			store, err := storage.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch {
			case clearAll:
				if err := store.Clear(ctx, name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared results for %s\n", name)
				return nil
			case recent > 0:
				results, err := store.Recent(ctx, recent)
				if err != nil {
					return err
				}
				printRecent(cmd, results)
				return nil
			}

			best, err := store.Best(ctx, name, limit)
			if err != nil {
				return err
			}
			stats, err := store.Stats(ctx, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Best results - %s\n\n", name)

			if len(best) == 0 {
				fmt.Fprintln(out, "No victories recorded yet.")
				fmt.Fprintf(out, "\nPlay 'tilerun play %s' to set the first one!\n", name)
				return nil
			}

			fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Points", "Frames", "Time", "Date")
			fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "------", "------", "----", "----")
			for i, r := range best {
				fmt.Fprintf(out, "  %-4d  %-8d  %-8d  %-8s  %s\n",
					i+1, r.Points, r.Frames, fmt.Sprintf("%.1fs", r.Seconds), r.CreatedAt.Local().Format("2006-01-02 15:04"))
			}

			fmt.Fprintf(out, "\nPlayed %d, won %d, high score %d\n", stats.Plays, stats.Victories, stats.HighScore)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of results to show")
	cmd.Flags().IntVar(&recent, "recent", 0, "Show the latest N sessions on any level instead")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete every result for the level")
	cmd.MarkFlagsMutuallyExclusive("recent", "clear")
	return cmd
}

func printRecent(cmd *cobra.Command, results []storage.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Recent sessions")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-8s  %s\n", "Level", "Outcome", "Points", "Time", "Date")
	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-8s  %s\n", "-----", "-------", "------", "----", "----")
	for _, r := range results {
		fmt.Fprintf(out, "  %-16s  %-8s  %-8d  %-8s  %s\n",
			r.Level, r.Status, r.Points, fmt.Sprintf("%.1fs", r.Seconds), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func newLevelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List available levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := opts.levelLoader()
			if err != nil {
				return err
			}
			names, err := loader.LevelNames()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No levels found.")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, levelName(n))
			}
			return nil
		},
	}
}
