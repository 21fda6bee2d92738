// tilerun is a side-scrolling tile platformer.
//
// Usage:
//
//	tilerun play [level]      - Play a level in a window
//	tilerun replay <file>     - Re-simulate a recorded session
//	tilerun check <file>      - Validate a level file
//	tilerun scores [level]    - Show best results for a level
//	tilerun levels            - List bundled levels
//
// Global flags:
//
//	--config <path>     - Custom game.yaml (default: built-in tuning)
//	--levels <dir>      - Load levels from a directory instead of the bundled set
//	--db <path>         - Results database (default: ~/.tilerun/results.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

//go:embed levels/*.txt
var levelFS embed.FS

const defaultLevel = "level1"

// options holds the global flags shared by every subcommand
type options struct {
	configPath string
	levelsDir  string
	dbPath     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tilerun",
		Short: "tilerun - a side-scrolling tile platformer",
		Long: `tilerun is a side-scrolling platformer played on plain-text tile levels.

Run through the level, shoot patrolling enemies, collect coins and
reach the goal. Hazards and enemies cost health and rewind you a
few seconds; falling off the map only rewinds.

Examples:
  tilerun play
  tilerun play level1 --record run.msgpack
  tilerun replay run.msgpack
  tilerun check ./mylevel.txt
  tilerun scores level1
  tilerun config > game.yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a custom game.yaml")
	root.PersistentFlags().StringVar(&opts.levelsDir, "levels", "", "Directory to load levels from (default: bundled levels)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "~/.tilerun/results.db", "Path to results database")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(
		newPlayCmd(opts),
		newReplayCmd(opts),
		newCheckCmd(opts),
		newScoresCmd(opts),
		newLevelsCmd(opts),
		newConfigCmd(),
	)
	return root
}

// logger builds the command logger writing to w.
func (o *options) logger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilerun",
	})
	logger.SetLevel(level)
	return logger, nil
}

// gameConfig loads --config, or the built-in tuning when it is unset.
func (o *options) gameConfig() (*config.GameConfig, error) {
	if o.configPath == "" {
		return config.LoadDefault()
	}
	return config.NewLoader(filepath.Dir(o.configPath)).Load(filepath.Base(o.configPath))
}

// levelLoader reads levels from --levels, or from the bundled set.
func (o *options) levelLoader() (*config.Loader, error) {
	if o.levelsDir != "" {
		return config.NewLoader(o.levelsDir), nil
	}
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled levels: %w", err)
	}
	return config.NewFSLoader(sub), nil
}

// loadLevel resolves a level name such as "level1" or "level1.txt".
func (o *options) loadLevel(name string, tileSize int) (*entity.Grid, error) {
	loader, err := o.levelLoader()
	if err != nil {
		return nil, err
	}
	return loader.LoadLevel(levelFile(name), tileSize)
}

// levelFile adds the .txt extension when missing
func levelFile(name string) string {
	if strings.HasSuffix(name, ".txt") {
		return name
	}
	return name + ".txt"
}

// levelName strips the .txt extension
func levelName(file string) string {
	return strings.TrimSuffix(file, ".txt")
}
