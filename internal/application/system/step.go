package system

// Status is the state of a session
type Status int

const (
	StatusRunning Status = iota
	StatusVictory
	StatusDefeat
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Outcome is the result of a step. Points is meaningful once the session
// has ended; Frames counts every step taken.
type Outcome struct {
	Status Status
	Points int
	Frames int
}

// Terminal reports whether the session is over
func (o Outcome) Terminal() bool {
	return o.Status != StatusRunning
}

// Step advances the simulation by dt seconds.
//
// A negative dt is treated as zero. Once the session has ended, Step
// returns the final outcome and leaves the world untouched.
func (w *World) Step(in Intents, dt float64) Outcome {
	if w.outcome.Terminal() {
		return w.outcome
	}
	if dt < 0 {
		dt = 0
	}

	p := w.player
	pre := p.Pos

	w.physics.ApplyGravity(p, dt)
	fired := w.controller.Apply(p, w.projectiles, in, dt)
	w.physics.Integrate(p, w.projectiles, dt)

	res := w.resolver.Resolve(w)
	res.Fired = fired

	if p.Pos.Y > w.grid.Bottom() {
		w.softReset()
		res.FellOff = true
	}

	w.enemies.Update(dt)

	pc := w.cfg.Projectile
	res.ProjectilesCulled = w.projectiles.Cull(p.Pos, pc.CullHalfWidth, pc.CullHalfHeight)

	w.history.Record(pre)
	p.UpdateAnimation(dt, w.cfg.Player.AnimInterval)

	w.frame++
	w.last = res
	w.outcome = Outcome{Status: StatusRunning, Points: p.Points, Frames: w.frame}

	switch {
	case res.GoalReached:
		w.outcome.Status = StatusVictory
	case p.IsDead():
		w.outcome.Status = StatusDefeat
	}
	return w.outcome
}
