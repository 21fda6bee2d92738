package entity

// Player is the player-controlled character.
// Pos is authoritative; the bounding box is derived from it.
type Player struct {
	Pos  Vec2
	Vel  Vec2
	W, H float64

	Grounded    bool
	FacingRight bool
	Moving      bool

	Shooting   bool
	ShootTimer float64 // seconds left in the shooting window

	Health int
	Points int

	Frame     AnimFrame
	AnimTimer float64
}

// NewPlayer creates a player at the given world position facing right
func NewPlayer(pos Vec2, w, h float64, health int) *Player {
	return &Player{
		Pos:         pos,
		W:           w,
		H:           h,
		FacingRight: true,
		Health:      health,
		Frame:       FrameIdle,
	}
}

// Box returns the bounding box at the current position
func (p *Player) Box() AABB {
	return AABB{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Damage removes amount health, never going below zero.
func (p *Player) Damage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// IsDead returns true once health has reached zero
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// SoftReset moves the player to pos and stops it.
func (p *Player) SoftReset(pos Vec2) {
	p.Pos = pos
	p.Vel = Vec2{}
}

// StartShooting opens the shooting window. Calls while the window is open
// leave the timer alone.
func (p *Player) StartShooting(duration float64) {
	if p.Shooting {
		return
	}
	p.Shooting = true
	p.ShootTimer = duration
}

// UpdateShooting counts the shooting window down and clears it when it ends.
func (p *Player) UpdateShooting(dt float64) {
	if !p.Shooting {
		return
	}
	p.ShootTimer -= dt
	if p.ShootTimer <= 0 {
		p.ShootTimer = 0
		p.Shooting = false
	}
}

// UpdateAnimation advances the animation timer and, once it passes interval,
// selects the next frame for the current state.
func (p *Player) UpdateAnimation(dt, interval float64) {
	p.AnimTimer += dt
	if p.AnimTimer < interval {
		return
	}
	p.AnimTimer = 0
	p.Frame = NextFrame(p.Frame, p.Grounded, p.Moving, p.Shooting)
}

// MuzzlePos returns the top-left corner of a projectile of size w x h fired
// from the facing edge of the player's box.
func (p *Player) MuzzlePos(w, h float64) Vec2 {
	box := p.Box()
	y := box.Y + box.H/2 - h/2
	if p.FacingRight {
		return Vec2{X: box.Right(), Y: y}
	}
	return Vec2{X: box.X - w, Y: y}
}
