// Package scene holds the contract between the ebiten game loop and the
// screens it shows.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by game.Game. Update returning a non-nil
// Scene switches to it; OnExit runs on the old screen, then OnEnter on the
// new one. A non-nil error ends the run.
type Scene interface {
	// Update advances the screen by dt seconds of measured (or replayed) time.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	OnEnter()
	OnExit()
}
