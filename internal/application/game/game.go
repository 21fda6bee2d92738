// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilerun/internal/application/scene"
)

// defaultDT is used for the first frame, before any delta can be measured.
const defaultDT = 1.0 / 60.0

// Game implements ebiten.Game and manages Scene transitions.
//
// Each Update passes the wall-clock time since the previous Update to the
// scene, so simulation speed follows real time even when frames are late.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now   func() time.Time
	last  time.Time
	fixed float64 // when > 0, used instead of the measured delta
	maxDT float64 // when > 0, measured deltas are clamped to this
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDelta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameDelta returns the seconds elapsed since the previous call.
func (g *Game) frameDelta() float64 {
	now := g.now()
	defer func() { g.last = now }()

	if g.fixed > 0 {
		return g.fixed
	}
	if g.last.IsZero() {
		return defaultDT
	}

	dt := now.Sub(g.last).Seconds()
	if g.maxDT > 0 && dt > g.maxDT {
		dt = g.maxDT
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time used for updates. Zero restores the measured delta.
func (g *Game) SetDT(dt float64) {
	g.fixed = dt
}

// SetMaxDT clamps measured deltas, e.g. after the window was dragged.
// Zero disables the clamp.
func (g *Game) SetMaxDT(dt float64) {
	g.maxDT = dt
}

// SetClock replaces the time source. Useful for testing.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
