package entity

// Enemy is a patrolling enemy. It walks between MinX and MaxX at a constant speed.
type Enemy struct {
	Pos  Vec2
	Vel  Vec2
	W, H float64

	MinX, MaxX float64

	Health int
	Active bool
}

// NewEnemy creates an active enemy whose patrol starts at the spawn point and
// extends patrolOffset to the right.
func NewEnemy(pos Vec2, w, h, speed, patrolOffset float64, health int) Enemy {
	return Enemy{
		Pos:    pos,
		Vel:    Vec2{X: speed},
		W:      w,
		H:      h,
		MinX:   pos.X,
		MaxX:   pos.X + patrolOffset,
		Health: health,
		Active: true,
	}
}

// Box returns the bounding box at the current position
func (e *Enemy) Box() AABB {
	return AABB{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// TakeDamage applies damage and deactivates the enemy once health is gone.
// Returns true if the hit killed it.
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	if e.Health <= 0 {
		e.Active = false
		return true
	}
	return false
}

// Patrol turns the enemy around at its bounds and then moves it.
// The bound check happens before the move, so the enemy can overshoot a
// bound by one frame's displacement.
func (e *Enemy) Patrol(dt float64) {
	if !e.Active {
		return
	}
	speed := e.Vel.X
	if speed < 0 {
		speed = -speed
	}
	if e.Pos.X <= e.MinX {
		e.Vel.X = speed
	} else if e.Pos.X >= e.MaxX {
		e.Vel.X = -speed
	}
	e.Pos.X += e.Vel.X * dt
}

// EnemyRoster is a fixed-capacity slot array of enemies.
type EnemyRoster struct {
	slots []Enemy
}

// NewEnemyRoster creates a roster with capacity inactive slots
func NewEnemyRoster(capacity int) *EnemyRoster {
	return &EnemyRoster{slots: make([]Enemy, capacity)}
}

// Spawn places e in the first inactive slot. Returns the slot index, or
// false when the roster is full.
func (r *EnemyRoster) Spawn(e Enemy) (int, bool) {
	for i := range r.slots {
		if !r.slots[i].Active {
			e.Active = true
			r.slots[i] = e
			return i, true
		}
	}
	return -1, false
}

// At returns the slot at index i
func (r *EnemyRoster) At(i int) *Enemy {
	return &r.slots[i]
}

// Cap returns the number of slots
func (r *EnemyRoster) Cap() int {
	return len(r.slots)
}

// ActiveCount returns the number of active enemies
func (r *EnemyRoster) ActiveCount() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].Active {
			n++
		}
	}
	return n
}

// Update moves every active enemy along its patrol
func (r *EnemyRoster) Update(dt float64) {
	for i := range r.slots {
		r.slots[i].Patrol(dt)
	}
}
