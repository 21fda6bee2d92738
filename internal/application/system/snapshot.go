package system

import "github.com/younwookim/tilerun/internal/domain/entity"

// PlayerView is the renderer's copy of the player
type PlayerView struct {
	Pos         entity.Vec2
	Box         entity.AABB
	Frame       entity.AnimFrame
	FacingRight bool
	Grounded    bool
	Shooting    bool
	Health      int
	MaxHealth   int
	Points      int
}

// EnemyView is an active enemy
type EnemyView struct {
	Slot   int
	Pos    entity.Vec2
	Box    entity.AABB
	Health int
}

// ProjectileView is a projectile in flight
type ProjectileView struct {
	Slot int
	Box  entity.AABB
}

// CoinView is a coin still in the level
type CoinView struct {
	Slot int
	Pos  entity.Vec2
	Box  entity.AABB
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Only active entities are included. Grid is shared and must not be modified.
type Snapshot struct {
	Frame       int
	Outcome     Outcome
	Grid        *entity.Grid
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Coins       []CoinView
}

// Snapshot captures the current world state
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Frame:   w.frame,
		Outcome: w.outcome,
		Grid:    w.grid,
		Player: PlayerView{
			Pos:         p.Pos,
			Box:         p.Box(),
			Frame:       p.Frame,
			FacingRight: p.FacingRight,
			Grounded:    p.Grounded,
			Shooting:    p.Shooting,
			Health:      p.Health,
			MaxHealth:   w.cfg.Player.MaxHealth,
			Points:      p.Points,
		},
	}

	for i := 0; i < w.enemies.Cap(); i++ {
		e := w.enemies.At(i)
		if e.Active {
			snap.Enemies = append(snap.Enemies, EnemyView{Slot: i, Pos: e.Pos, Box: e.Box(), Health: e.Health})
		}
	}
	for i := 0; i < w.projectiles.Cap(); i++ {
		pr := w.projectiles.At(i)
		if pr.Active {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Slot: i, Box: pr.Box})
		}
	}
	for i := 0; i < w.coins.Cap(); i++ {
		c := w.coins.At(i)
		if c.Active {
			snap.Coins = append(snap.Coins, CoinView{Slot: i, Pos: c.Pos, Box: c.Box()})
		}
	}

	return snap
}
