package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeLevel writes a rows x cols level with a floor to dir and returns its path.
// spawn controls whether the player marker is present.
func writeLevel(t *testing.T, dir, name string, rows, cols int, spawn bool) string {
	t.Helper()
	lines := make([]string, rows)
	for r := range lines {
		fill := "."
		if r == rows-1 {
			fill = "B"
		}
		lines[r] = strings.Repeat(fill, cols)
	}
	if spawn {
		lines[rows-2] = "..P" + lines[rows-2][3:]
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestLevelsCmd_ListsBundledLevels(t *testing.T) {
	out, err := run(t, "levels")

	require.NoError(t, err)
	assert.Contains(t, out, "level1")
}

func TestLevelsCmd_Directory(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "alpha.txt", 12, 201, true)
	writeLevel(t, dir, "beta.txt", 12, 201, true)

	out, err := run(t, "levels", "--levels", dir)

	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", out)
}

func TestBundledLevelIsPlayable(t *testing.T) {
	sub := filepath.Join("levels", "level1.txt")
	out, err := run(t, "check", sub)

	require.NoError(t, err)
	assert.Contains(t, out, ": ok")
	assert.Contains(t, out, "enemies:  4")
	assert.NotContains(t, out, "warning")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		rows    int
		cols    int
		spawn   bool
		wantErr error
		wantOut string
	}{
		{"valid", 11, 201, true, nil, ": ok"},
		{"too few rows", 10, 201, true, entity.ErrLevelTooSmall, "level too small"},
		{"too few cols", 11, 200, true, entity.ErrLevelTooSmall, "level too small"},
		{"no spawn", 11, 201, false, entity.ErrNoPlayerSpawn, "missing player spawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLevel(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".txt", tt.rows, tt.cols, tt.spawn)

			out, err := run(t, "check", path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, out, "warning", "level has no goal")
			}
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestCheckCmd_MissingFile(t *testing.T) {
	out, err := run(t, "check", filepath.Join(t.TempDir(), "nope.txt"))

	assert.ErrorIs(t, err, entity.ErrLevelUnreadable)
	assert.Contains(t, out, "unreadable level")
}

func TestReplayCmd_Headless(t *testing.T) {
	rec := replay.NewRecorder("level1", config.Default())
	for i := 0; i < 30; i++ {
		rec.RecordFrame(1.0/60, system.Intents{MoveRight: i > 10})
	}
	path := filepath.Join(t.TempDir(), "run.msgpack")
	require.NoError(t, rec.Save(path))

	out, err := run(t, "replay", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Level:    level1")
	assert.Contains(t, out, "Outcome:  running")
	assert.Contains(t, out, "Frames:   30")
	assert.Contains(t, out, "Recording ended before the session did (30 frames).")
	assert.NotContains(t, out, "Recorded:", "level was not overridden")
}

func TestReplayCmd_LevelOverride(t *testing.T) {
	rec := replay.NewRecorder("old-name", nil)
	rec.RecordFrame(1.0/60, system.Intents{})
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	out, err := run(t, "replay", path, "--level", "level1")

	require.NoError(t, err)
	assert.Contains(t, out, "Level:    level1")
	assert.Contains(t, out, "Recorded: old-name")
}

func TestReplayCmd_UnknownLevel(t *testing.T) {
	rec := replay.NewRecorder("missing-level", nil)
	rec.RecordFrame(1.0/60, system.Intents{})
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	_, err := run(t, "replay", path)

	assert.ErrorIs(t, err, entity.ErrLevelUnreadable)
}

func TestScoresCmd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "results.db")

	out, err := run(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No victories recorded yet.")

	store, err := storage.Open(db)
	require.NoError(t, err)
	for _, r := range []storage.Result{
		{Level: "level1", Status: "victory", Points: 130, Frames: 2400, Seconds: 40},
		{Level: "level1", Status: "victory", Points: 210, Frames: 3100, Seconds: 51.7},
		{Level: "level1", Status: "defeat", Points: 20, Frames: 900},
	} {
		_, err := store.Record(context.Background(), r)
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out, err = run(t, "scores", "level1", "--db", db)
	require.NoError(t, err)

	first := strings.Index(out, "210")
	second := strings.Index(out, "130")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "higher points rank first")
	assert.Contains(t, out, "51.7s")
	assert.Contains(t, out, "Played 3, won 2, high score 210")
}

func TestScoresCmd_RecentAndClear(t *testing.T) {
	db := filepath.Join(t.TempDir(), "results.db")

	out, err := run(t, "scores", "--recent", "5", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet.")

	store, err := storage.Open(db)
	require.NoError(t, err)
	for _, r := range []storage.Result{
		{Level: "level1", Status: "defeat", Points: 20, Frames: 900},
		{Level: "other", Status: "victory", Points: 310, Frames: 1200},
	} {
		_, err := store.Record(context.Background(), r)
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out, err = run(t, "scores", "--recent", "5", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "level1")
	assert.Contains(t, out, "defeat")
	assert.Contains(t, out, "other")
	assert.Contains(t, out, "310")

	out, err = run(t, "scores", "other", "--clear", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared results for other")

	out, err = run(t, "scores", "--recent", "5", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "other")
	assert.Contains(t, out, "level1")

	_, err = run(t, "scores", "--recent", "5", "--clear", "--db", db)
	assert.Error(t, err, "--recent and --clear are exclusive")
}

func TestConfigCmd_PrintsParsableDefaults(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	rec := replay.NewRecorder("level1", nil)
	rec.RecordFrame(1.0/60, system.Intents{})
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	_, err := run(t, "replay", path, "--log-level", "loud")

	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestRootCmd_CustomConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("level:\n  tileSize: 0\n"), 0o644))
	level := writeLevel(t, dir, "l.txt", 11, 201, true)

	_, err := run(t, "check", level, "--config", cfgPath)

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLevelFileNames(t *testing.T) {
	assert.Equal(t, "level1.txt", levelFile("level1"))
	assert.Equal(t, "level1.txt", levelFile("level1.txt"))
	assert.Equal(t, "level1", levelName("level1.txt"))
}
