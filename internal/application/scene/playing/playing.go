// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/scene"
	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
	"github.com/younwookim/tilerun/internal/infrastructure/storage"
)

// ResultStore persists finished sessions
type ResultStore interface {
	Record(ctx context.Context, r storage.Result) (int64, error)
}

// Option configures a Playing scene
type Option func(*Playing)

// WithInput replaces the keyboard as the input source
func WithInput(in InputSource) Option {
	return func(p *Playing) { p.input = in }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(p *Playing) { p.logger = logger }
}

// WithRecording records every session to path. An empty path generates a
// timestamped file name.
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.recording = true
		p.recordPath = path
	}
}

// WithResultStore records every finished session in store
func WithResultStore(store ResultStore) Option {
	return func(p *Playing) { p.store = store }
}

// Playing is the main gameplay scene
type Playing struct {
	cfg   *config.GameConfig
	grid  *entity.Grid
	level string

	world   *system.World
	state   state.GameState
	input   InputSource
	logger  *log.Logger
	store   ResultStore
	screenW int
	screenH int

	// player sprite sheet, built on first draw
	atlas *ebiten.Image

	// seconds of simulated time in the current session
	elapsed float64

	// Input recording
	recording  bool
	recordPath string
	recorder   *replay.Recorder
}

// New creates a Playing scene on grid. level names the level in logs,
// recordings and results.
func New(cfg *config.GameConfig, grid *entity.Grid, level string, opts ...Option) (*Playing, error) {
	world, err := system.NewWorld(cfg, grid)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		cfg:     cfg,
		grid:    grid,
		level:   level,
		world:   world,
		state:   state.StatePlaying,
		input:   KeyboardInput{},
		logger:  log.New(io.Discard),
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.recording {
		p.recorder = replay.NewRecorder(level, cfg)
		p.logger.Info("recording enabled", "file", p.recordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	c := p.input.Poll()

	if p.state.Terminal() {
		if c.Restart {
			return nil, p.restart()
		}
		return nil, nil
	}

	if c.Pause {
		p.state = p.state.TogglePause()
		p.logger.Debug("pause toggled", "state", p.state)
	}
	if p.state == state.StatePaused || c.Hold {
		return nil, nil
	}

	if c.Save {
		p.saveRecording()
	}
	if c.HasDT {
		dt = c.DT
	}

	p.step(c.Intents, dt)
	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(in system.Intents, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, in)
	}

	out := p.world.Step(in, dt)
	p.elapsed += max(dt, 0)

	res := p.world.LastResolution()
	if hits := res.HazardHits + res.EnemyContacts; hits > 0 {
		p.logger.Debug("player hit", "frame", out.Frames, "hits", hits, "health", p.world.Player().Health)
	}
	if res.FellOff {
		p.logger.Debug("fell off", "frame", out.Frames)
	}
	if res.Kills > 0 {
		p.logger.Debug("enemy killed", "frame", out.Frames, "kills", res.Kills)
	}

	if out.Terminal() {
		p.finish(out)
	}
}

// finish ends the session: save the recording and store the result.
func (p *Playing) finish(out system.Outcome) {
	p.state = state.FromStatus(out.Status)
	p.logger.Info("session finished",
		"level", p.level,
		"outcome", out.Status,
		"points", out.Points,
		"frames", out.Frames,
	)

	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}

	if p.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := p.store.Record(ctx, storage.Result{
		Level:   p.level,
		Status:  out.Status.String(),
		Points:  out.Points,
		Frames:  out.Frames,
		Seconds: p.elapsed,
	})
	if err != nil {
		p.logger.Error("failed to store result", "err", err)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename("")
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// restart rebuilds the world from the same level.
func (p *Playing) restart() error {
	world, err := system.NewWorld(p.cfg, p.grid)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	p.world = world
	p.state = state.StatePlaying
	p.elapsed = 0

	if r, ok := p.input.(interface{ Rewind() }); ok {
		r.Rewind()
	}
	if p.recording {
		p.recorder = replay.NewRecorder(p.level, p.cfg)
		p.logger.Info("recording restarted")
	}
	p.logger.Info("session restarted", "level", p.level)
	return nil
}

// State returns the current session state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the running simulation
func (p *Playing) World() *system.World {
	return p.world
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("level started", "level", p.level, "rows", p.grid.Rows, "cols", p.grid.Cols)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

var _ scene.Scene = (*Playing)(nil)
