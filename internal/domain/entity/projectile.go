package entity

// Projectile is a straight-flying shot fired by the player.
type Projectile struct {
	Box    AABB
	Vel    Vec2
	Damage int
	Active bool
}

// NewProjectile creates a projectile at pos travelling horizontally in the
// facing direction.
func NewProjectile(pos Vec2, w, h float64, facingRight bool, speed float64, damage int) Projectile {
	dir := 1.0
	if !facingRight {
		dir = -1.0
	}
	return Projectile{
		Box:    AABB{X: pos.X, Y: pos.Y, W: w, H: h},
		Vel:    Vec2{X: dir * speed},
		Damage: damage,
		Active: true,
	}
}

// Move advances the projectile by its velocity
func (p *Projectile) Move(dt float64) {
	if !p.Active {
		return
	}
	p.Box = p.Box.Translate(p.Vel.Scale(dt))
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}

// ProjectilePool is a fixed-capacity slot array of projectiles.
type ProjectilePool struct {
	slots []Projectile
}

// NewProjectilePool creates a pool with capacity inactive slots
func NewProjectilePool(capacity int) *ProjectilePool {
	return &ProjectilePool{slots: make([]Projectile, capacity)}
}

// Spawn places p in the first inactive slot. A full pool drops the request
// and returns false.
func (pp *ProjectilePool) Spawn(p Projectile) (int, bool) {
	for i := range pp.slots {
		if !pp.slots[i].Active {
			p.Active = true
			pp.slots[i] = p
			return i, true
		}
	}
	return -1, false
}

// At returns the slot at index i
func (pp *ProjectilePool) At(i int) *Projectile {
	return &pp.slots[i]
}

// Cap returns the number of slots
func (pp *ProjectilePool) Cap() int {
	return len(pp.slots)
}

// ActiveCount returns the number of projectiles in flight
func (pp *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range pp.slots {
		if pp.slots[i].Active {
			n++
		}
	}
	return n
}

// Move advances every active projectile
func (pp *ProjectilePool) Move(dt float64) {
	for i := range pp.slots {
		pp.slots[i].Move(dt)
	}
}

// Cull deactivates projectiles that left the window centred on center with
// the given half extents. Returns how many were removed.
func (pp *ProjectilePool) Cull(center Vec2, halfW, halfH float64) int {
	window := AABB{X: center.X - halfW, Y: center.Y - halfH, W: 2 * halfW, H: 2 * halfH}
	n := 0
	for i := range pp.slots {
		p := &pp.slots[i]
		if p.Active && !window.Intersects(p.Box) {
			p.Deactivate()
			n++
		}
	}
	return n
}
