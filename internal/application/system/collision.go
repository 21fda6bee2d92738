package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// Resolution counts what the resolver did during one frame.
type Resolution struct {
	HazardHits         int
	EnemyContacts      int
	ProjectileHits     int
	Kills              int
	ProjectilesStopped int
	CoinsCollected     int
	PointsGained       int
	GoalReached        bool

	// Filled in by Step after the resolver runs.
	FellOff           bool
	ProjectilesCulled int
	Fired             bool
}

// CollisionResolver applies tile and entity collisions in a fixed order:
// player/tile, player/enemy, projectile/enemy, projectile/tile, player/coin.
// Damage and score semantics depend on that order.
type CollisionResolver struct {
	killBonus int
}

// NewCollisionResolver creates a resolver from the game config
func NewCollisionResolver(cfg *config.GameConfig) *CollisionResolver {
	return &CollisionResolver{killBonus: cfg.Enemy.KillBonus}
}

// Resolve runs every collision phase against w
func (r *CollisionResolver) Resolve(w *World) Resolution {
	var res Resolution
	r.playerVsTiles(w, &res)
	r.playerVsEnemies(w, &res)
	r.projectilesVsEnemies(w, &res)
	r.projectilesVsTiles(w, &res)
	r.playerVsCoins(w, &res)
	return res
}

// playerVsTiles scans the whole grid in row-major order. Blocks push the
// player out, hazards damage and soft reset, the goal ends the session.
// The scan continues after a soft reset using the new position.
func (r *CollisionResolver) playerVsTiles(w *World, res *Resolution) {
	p := w.player
	g := w.grid
	p.Grounded = false

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			kind := g.Cells[row][col]
			if kind != entity.TileBlock && kind != entity.TileHazard && kind != entity.TileGoal {
				continue
			}
			tile := g.TileBox(col, row)

			switch kind {
			case entity.TileBlock:
				c, ok := entity.Overlap(p.Box(), tile)
				if !ok {
					continue
				}
				p.Pos = p.Pos.Add(c)
				if c.X != 0 {
					p.Vel.X = 0
				}
				if c.Y != 0 {
					p.Vel.Y = 0
				}
				if c.Y < 0 {
					p.Grounded = true
				}

			case entity.TileHazard:
				if !p.Box().Intersects(tile) {
					continue
				}
				p.Damage(1)
				w.softReset()
				res.HazardHits++

			case entity.TileGoal:
				if p.Box().Intersects(tile) {
					res.GoalReached = true
				}
			}
		}
	}
}

// playerVsEnemies damages the player once per overlapping enemy.
// There is no invulnerability window.
func (r *CollisionResolver) playerVsEnemies(w *World, res *Resolution) {
	p := w.player
	for i := 0; i < w.enemies.Cap(); i++ {
		e := w.enemies.At(i)
		if !e.Active || !p.Box().Intersects(e.Box()) {
			continue
		}
		p.Damage(1)
		p.Frame = entity.FrameHit
		w.softReset()
		res.EnemyContacts++
	}
}

// projectilesVsEnemies lets each projectile hit at most one enemy.
func (r *CollisionResolver) projectilesVsEnemies(w *World, res *Resolution) {
	for i := 0; i < w.projectiles.Cap(); i++ {
		shot := w.projectiles.At(i)
		if !shot.Active {
			continue
		}
		for j := 0; j < w.enemies.Cap(); j++ {
			e := w.enemies.At(j)
			if !e.Active || !shot.Box.Intersects(e.Box()) {
				continue
			}
			if e.TakeDamage(shot.Damage) {
				res.Kills++
			}
			w.player.Points += r.killBonus
			res.PointsGained += r.killBonus
			res.ProjectileHits++
			shot.Deactivate()
			break
		}
	}
}

// projectilesVsTiles stops projectiles at the first block they touch.
// Only the cells under the projectile are checked.
func (r *CollisionResolver) projectilesVsTiles(w *World, res *Resolution) {
	g := w.grid
	for i := 0; i < w.projectiles.Cap(); i++ {
		shot := w.projectiles.At(i)
		if !shot.Active {
			continue
		}

		col0, row0, col1, row1 := g.CellRange(shot.Box)
	scan:
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				if g.TileAt(col, row) != entity.TileBlock {
					continue
				}
				if shot.Box.Intersects(g.TileBox(col, row)) {
					shot.Deactivate()
					res.ProjectilesStopped++
					break scan
				}
			}
		}
	}
}

func (r *CollisionResolver) playerVsCoins(w *World, res *Resolution) {
	p := w.player
	for i := 0; i < w.coins.Cap(); i++ {
		c := w.coins.At(i)
		if !c.Active || !p.Box().Intersects(c.Box()) {
			continue
		}
		v := c.Collect()
		p.Points += v
		res.PointsGained += v
		res.CoinsCollected++
	}
}
