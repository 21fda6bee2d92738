package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// PlayerController turns intents into player velocity, jumps and shots.
type PlayerController struct {
	physics    config.PhysicsConfig
	player     config.PlayerConfig
	projectile config.ProjectileConfig
}

// NewPlayerController creates a controller from the game config
func NewPlayerController(cfg *config.GameConfig) *PlayerController {
	return &PlayerController{
		physics:    cfg.Physics,
		player:     cfg.Player,
		projectile: cfg.Projectile,
	}
}

// Apply updates the player for this frame's intents. Returns true if a
// projectile was fired.
func (c *PlayerController) Apply(p *entity.Player, pool *entity.ProjectilePool, in Intents, dt float64) bool {
	c.handleMovement(p, in)
	c.handleJump(p, in)

	// Age the current window first so a shot fired now gets the full duration.
	p.UpdateShooting(dt)

	if !in.FirePressed {
		return false
	}
	return c.fire(p, pool)
}

// handleMovement sets horizontal velocity. Right wins when both are held.
func (c *PlayerController) handleMovement(p *entity.Player, in Intents) {
	switch {
	case in.MoveRight:
		p.Vel.X = c.physics.MoveSpeed
		p.FacingRight = true
	case in.MoveLeft:
		p.Vel.X = -c.physics.MoveSpeed
		p.FacingRight = false
	default:
		p.Vel.X = 0
	}
	p.Moving = p.Vel.X != 0
}

func (c *PlayerController) handleJump(p *entity.Player, in Intents) {
	if !in.JumpPressed || !p.Grounded {
		return
	}
	p.Vel.Y = -c.physics.JumpImpulse
	p.Grounded = false
}

// fire spawns a projectile from the facing edge. A full pool makes the
// shot a no-op, including the shooting pose.
func (c *PlayerController) fire(p *entity.Player, pool *entity.ProjectilePool) bool {
	w, h := c.projectile.Width, c.projectile.Height
	shot := entity.NewProjectile(p.MuzzlePos(w, h), w, h, p.FacingRight, c.projectile.Speed, c.projectile.Damage)
	if _, ok := pool.Spawn(shot); !ok {
		return false
	}
	p.StartShooting(c.player.ShootDuration)
	return true
}
