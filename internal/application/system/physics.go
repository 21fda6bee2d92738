package system

import (
	"github.com/younwookim/tilerun/internal/domain/entity"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// PhysicsSystem integrates velocities with a variable frame delta.
// Collisions are left to the CollisionResolver.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// ApplyGravity accelerates the player downward. It runs every frame,
// grounded or not; the resolver cancels it against the floor.
func (s *PhysicsSystem) ApplyGravity(player *entity.Player, dt float64) {
	player.Vel.Y += s.config.Gravity * dt
}

// Integrate moves the player and every active projectile by velocity * dt
func (s *PhysicsSystem) Integrate(player *entity.Player, projectiles *entity.ProjectilePool, dt float64) {
	player.Pos = player.Pos.Add(player.Vel.Scale(dt))
	projectiles.Move(dt)
}
