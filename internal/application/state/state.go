package state

import "github.com/younwookim/tilerun/internal/application/system"

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the session has ended and only a restart can follow
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateStageClear
}

// TogglePause flips between Playing and Paused. Other states are returned unchanged.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}

// FromStatus maps a simulation status to the session state
func FromStatus(st system.Status) GameState {
	switch st {
	case system.StatusVictory:
		return StateStageClear
	case system.StatusDefeat:
		return StateGameOver
	default:
		return StatePlaying
	}
}
