package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/domain/entity"
)

func TestLoadDefault_MatchesDefault(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 500.0, cfg.Physics.Gravity)
	assert.Equal(t, 200.0, cfg.Physics.MoveSpeed)
	assert.Equal(t, 180, cfg.Player.HistoryFrames)
	assert.Equal(t, 16, cfg.Projectile.Capacity)
	assert.Equal(t, 100, cfg.Enemy.KillBonus)
	assert.False(t, cfg.Player.SeedHistoryWithSpawn)
}

func TestLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(`
physics:
  gravity: 800
player:
  maxHealth: 5
  seedHistoryWithSpawn: true
`)},
	}

	cfg, err := NewFSLoader(fsys).Load("game.yaml")
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Physics.Gravity)
	assert.Equal(t, 5, cfg.Player.MaxHealth)
	assert.True(t, cfg.Player.SeedHistoryWithSpawn)
	assert.Equal(t, 200.0, cfg.Physics.MoveSpeed, "unset keys keep defaults")
	assert.Equal(t, 32, cfg.Level.TileSize)
}

func TestLoader_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown key",
			data:    "physics:\n  gravty: 10\n",
			wantMsg: "gravty",
		},
		{
			name:    "malformed yaml",
			data:    "physics: [",
			wantMsg: "failed to parse",
		},
		{
			name:    "zero capacity",
			data:    "projectile:\n  capacity: 0\n",
			wantErr: ErrInvalidConfig,
			wantMsg: "projectile.capacity",
		},
		{
			name:    "negative tile size",
			data:    "level:\n  tileSize: -4\n",
			wantErr: ErrInvalidConfig,
			wantMsg: "level.tileSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"game.yaml": &fstest.MapFile{Data: []byte(tt.data)}}

			_, err := NewFSLoader(fsys).Load("game.yaml")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoader_LoadMissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}).Load("game.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read game.yaml")
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_LoadLevel(t *testing.T) {
	row := strings.Repeat(".", 205)
	rows := make([]string, 12)
	for i := range rows {
		rows[i] = row
	}
	rows[10] = "P" + strings.Repeat(".", 204)
	rows[11] = strings.Repeat("B", 205)

	fsys := fstest.MapFS{
		"level1.txt": &fstest.MapFile{Data: []byte(strings.Join(rows, "\n"))},
		"small.txt":  &fstest.MapFile{Data: []byte("P....\nBBBBB\n")},
	}
	loader := NewFSLoader(fsys)

	grid, err := loader.LoadLevel("level1.txt", 32)
	require.NoError(t, err)
	assert.Equal(t, 12, grid.Rows)
	assert.Equal(t, 205, grid.Cols)
	assert.Equal(t, entity.TilePlayerSpawn, grid.TileAt(0, 10))

	_, err = loader.LoadLevel("small.txt", 32)
	assert.ErrorIs(t, err, entity.ErrLevelTooSmall)

	_, err = loader.LoadLevel("missing.txt", 32)
	assert.ErrorIs(t, err, entity.ErrLevelUnreadable)

	names, err := loader.LevelNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"level1.txt", "small.txt"}, names)
}
