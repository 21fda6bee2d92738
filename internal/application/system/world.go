package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// World owns every piece of simulation state for one session.
// It is not safe for concurrent use.
type World struct {
	cfg  *config.GameConfig
	grid *entity.Grid

	spawn       entity.Vec2
	player      *entity.Player
	enemies     *entity.EnemyRoster
	projectiles *entity.ProjectilePool
	coins       *entity.CoinRoster
	history     *entity.HistoryBuffer

	controller *PlayerController
	physics    *PhysicsSystem
	resolver   *CollisionResolver

	frame   int
	outcome Outcome
	last    Resolution
}

// NewWorld populates a world from the grid's markers.
// Enemy and coin capacity equal their marker counts.
func NewWorld(cfg *config.GameConfig, grid *entity.Grid) (*World, error) {
	if grid == nil {
		return nil, fmt.Errorf("new world: %w", entity.ErrLevelUnreadable)
	}

	spawn, ok := grid.FindMarker(entity.TilePlayerSpawn)
	if !ok {
		return nil, fmt.Errorf("new world: %w", entity.ErrNoPlayerSpawn)
	}

	w := &World{
		cfg:         cfg,
		grid:        grid,
		spawn:       spawn,
		player:      entity.NewPlayer(spawn, cfg.Player.Width, cfg.Player.Height, cfg.Player.MaxHealth),
		projectiles: entity.NewProjectilePool(cfg.Projectile.Capacity),
		history:     entity.NewHistoryBuffer(cfg.Player.HistoryFrames),
		controller:  NewPlayerController(cfg),
		physics:     NewPhysicsSystem(&cfg.Physics),
		resolver:    NewCollisionResolver(cfg),
	}

	if cfg.Player.SeedHistoryWithSpawn {
		w.history.Fill(spawn)
	}

	w.spawnEnemies()
	w.spawnCoins()

	return w, nil
}

func (w *World) spawnEnemies() {
	markers := w.grid.Markers(entity.TileEnemySpawn)
	w.enemies = entity.NewEnemyRoster(len(markers))

	ec := w.cfg.Enemy
	for _, pos := range markers {
		w.enemies.Spawn(entity.NewEnemy(pos, ec.Width, ec.Height, ec.Speed, ec.PatrolOffset, ec.Health))
	}
}

// spawnCoins centres each coin in its marker cell.
func (w *World) spawnCoins() {
	markers := w.grid.Markers(entity.TileCoinSpawn)
	w.coins = entity.NewCoinRoster(len(markers))

	cc := w.cfg.Coin
	ts := float64(w.grid.TileSize)
	for _, pos := range markers {
		at := entity.Vec2{X: pos.X + (ts-cc.Width)/2, Y: pos.Y + (ts-cc.Height)/2}
		w.coins.Spawn(entity.NewCoin(at, cc.Width, cc.Height, cc.Value))
	}
}

// softReset sends the player back to the oldest retained history position.
func (w *World) softReset() {
	w.player.SoftReset(w.history.Oldest())
}

// Player returns the player. Callers must not keep it across a restart.
func (w *World) Player() *entity.Player { return w.player }

// Grid returns the level grid
func (w *World) Grid() *entity.Grid { return w.grid }

// Enemies returns the enemy roster
func (w *World) Enemies() *entity.EnemyRoster { return w.enemies }

// Projectiles returns the projectile pool
func (w *World) Projectiles() *entity.ProjectilePool { return w.projectiles }

// Coins returns the coin roster
func (w *World) Coins() *entity.CoinRoster { return w.coins }

// History returns the player position history
func (w *World) History() *entity.HistoryBuffer { return w.history }

// Spawn returns the player spawn point
func (w *World) Spawn() entity.Vec2 { return w.spawn }

// Config returns the config the world was built with
func (w *World) Config() *config.GameConfig { return w.cfg }

// Frame returns the number of frames stepped so far
func (w *World) Frame() int { return w.frame }

// Outcome returns the current session outcome
func (w *World) Outcome() Outcome { return w.outcome }

// LastResolution returns what happened during the most recent step
func (w *World) LastResolution() Resolution { return w.last }

// Failure reasons for a session that cannot start.
const (
	ReasonUnreadable = "unreadable level"
	ReasonTooSmall   = "level too small"
	ReasonNoSpawn    = "missing player spawn"
	ReasonUnknown    = "unknown"
)

// FailureReason maps a load or NewWorld error to a stable reason string.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrLevelUnreadable):
		return ReasonUnreadable
	case errors.Is(err, entity.ErrLevelTooSmall):
		return ReasonTooSmall
	case errors.Is(err, entity.ErrNoPlayerSpawn):
		return ReasonNoSpawn
	default:
		return ReasonUnknown
	}
}
