package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// testLevel is a 12x210 level with a floor, a coin, an enemy and a goal
// along the player's path.
func testLevel(t *testing.T) *entity.Grid {
	t.Helper()

	rows := make([][]byte, 12)
	for r := range rows {
		fill := "."
		if r == 11 {
			fill = "B"
		}
		rows[r] = []byte(strings.Repeat(fill, 210))
	}
	rows[10][5] = 'P'
	rows[10][8] = 'C'
	rows[10][14] = 'M'
	rows[10][30] = 'G'

	var sb strings.Builder
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	grid, err := entity.ParseGrid(strings.NewReader(sb.String()), 32)
	require.NoError(t, err)
	return grid
}

func newWorld(t *testing.T, grid *entity.Grid, cfg *config.GameConfig) *system.World {
	t.Helper()
	w, err := system.NewWorld(cfg, grid)
	require.NoError(t, err)
	return w
}

// script fires early, then walks right with uneven frame deltas.
func script(frame int) (float64, system.Intents) {
	deltas := []float64{1.0 / 60, 1.0 / 58, 1.0 / 62, 1.0 / 45}
	in := system.Intents{MoveRight: frame > 20}
	in.FirePressed = frame == 1 || frame == 40
	in.JumpPressed = frame == 90
	return deltas[frame%len(deltas)], in
}

func recordSession(t *testing.T, grid *entity.Grid, cfg *config.GameConfig, maxFrames int) (*Recorder, system.Outcome) {
	t.Helper()

	w := newWorld(t, grid, cfg)
	rec := NewRecorder("test", cfg)

	var out system.Outcome
	for f := 0; f < maxFrames && !out.Terminal(); f++ {
		dt, in := script(f)
		rec.RecordFrame(dt, in)
		out = w.Step(in, dt)
	}
	return rec, out
}

func TestFrameInput_Intents(t *testing.T) {
	in := system.Intents{MoveRight: true, FirePressed: true}

	fi := NewFrameInput(7, 0.02, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, 0.02, fi.DT)
	assert.Equal(t, in, fi.Intents())
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		filename string
		want     Codec
	}{
		{"run.json", JSONCodec{}},
		{"run.msgpack", MsgpackCodec{}},
		{"RUN.MSGPACK", MsgpackCodec{}},
		{"run.mp", MsgpackCodec{}},
		{"run", JSONCodec{}},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, CodecFor(tt.filename))
		})
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	grid := testLevel(t)
	rec, _ := recordSession(t, grid, config.Default(), 120)

	for _, ext := range []string{".json", ".msgpack"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session"+ext)
			require.NoError(t, rec.Save(path))

			loaded, err := LoadReplay(path)
			require.NoError(t, err)

			want := rec.Data()
			assert.Equal(t, FormatVersion, loaded.Version)
			assert.Equal(t, "test", loaded.Level)
			assert.Equal(t, want.Frames, loaded.Frames)
			require.NotNil(t, loaded.Config)
			assert.Equal(t, *want.Config, *loaded.Config)
		})
	}
}

func TestSaveReplay_NoFrames(t *testing.T) {
	rec := NewRecorder("empty", config.Default())

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorContains(t, err, "no frames")
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("test", nil)
	rec.RecordFrame(0.016, system.Intents{})
	rec.Stop()
	rec.RecordFrame(0.016, system.Intents{MoveLeft: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
	assert.Equal(t, 0, rec.Data().Frames[0].F)
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, DT: 0.016, L: true},
			{F: 1, DT: 0.017, R: true, JP: true},
		},
	}
	rp := NewReplayer(data)
	assert.Equal(t, 2, rp.TotalFrames())

	fi, ok := rp.Next()
	require.True(t, ok)
	assert.True(t, fi.Intents().MoveLeft)

	fi, ok = rp.Next()
	require.True(t, ok)
	assert.Equal(t, 0.017, fi.DT)
	assert.True(t, fi.Intents().JumpPressed)

	_, ok = rp.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, rp.CurrentFrame())

	rp.Reset()
	assert.Equal(t, 0, rp.CurrentFrame())
}

// Replaying the recorded intents and deltas must reproduce the session exactly.
func TestRunner_ReproducesRecordedSession(t *testing.T) {
	grid := testLevel(t)
	cfg := config.Default()
	rec, want := recordSession(t, grid, cfg, 600)
	require.Equal(t, system.StatusVictory, want.Status, "scripted run should reach the goal")

	path := filepath.Join(t.TempDir(), "session.msgpack")
	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)

	var logs bytes.Buffer
	runner := NewRunner(log.New(&logs))
	got := runner.Run(newWorld(t, grid, data.Config), NewReplayer(*data))

	assert.Equal(t, want, got.Outcome)
	assert.False(t, got.Exhausted)
	assert.Equal(t, 1, got.Kills)
	assert.Equal(t, 1, got.Coins)
	assert.Contains(t, logs.String(), "replay finished")
}

func TestRunner_ExhaustedRecording(t *testing.T) {
	grid := testLevel(t)
	data := ReplayData{Frames: []FrameInput{{F: 0, DT: 1.0 / 60}, {F: 1, DT: 1.0 / 60}}}

	got := NewRunner(nil).Run(newWorld(t, grid, config.Default()), NewReplayer(data))

	assert.True(t, got.Exhausted)
	assert.Equal(t, system.StatusRunning, got.Outcome.Status)
	assert.Equal(t, 2, got.Outcome.Frames)
}
