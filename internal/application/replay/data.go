package replay

import (
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/infrastructure/config"
)

// FormatVersion is written into every saved replay
const FormatVersion = "2.0"

// FrameInput records the intents and frame delta of a single frame.
// The delta is needed because the simulation uses a variable timestep.
type FrameInput struct {
	F  int     `json:"f" msgpack:"f"`                       // Frame number
	DT float64 `json:"dt" msgpack:"dt"`                     // Frame delta in seconds
	L  bool    `json:"l,omitempty" msgpack:"l,omitempty"`   // MoveLeft
	R  bool    `json:"r,omitempty" msgpack:"r,omitempty"`   // MoveRight
	JP bool    `json:"jp,omitempty" msgpack:"jp,omitempty"` // JumpPressed
	FP bool    `json:"fp,omitempty" msgpack:"fp,omitempty"` // FirePressed
}

// NewFrameInput packs one frame for recording
func NewFrameInput(frame int, dt float64, in system.Intents) FrameInput {
	return FrameInput{
		F:  frame,
		DT: dt,
		L:  in.MoveLeft,
		R:  in.MoveRight,
		JP: in.JumpPressed,
		FP: in.FirePressed,
	}
}

// Intents unpacks the recorded intents
func (fi FrameInput) Intents() system.Intents {
	return system.Intents{
		MoveLeft:    fi.L,
		MoveRight:   fi.R,
		JumpPressed: fi.JP,
		FirePressed: fi.FP,
	}
}

// ReplayData contains all data needed to replay a game session.
// Config holds the tuning the session ran with; a nil Config replays with
// the defaults.
type ReplayData struct {
	Version   string             `json:"version" msgpack:"version"`
	Level     string             `json:"level" msgpack:"level"`
	StartTime string             `json:"startTime" msgpack:"startTime"`
	Config    *config.GameConfig `json:"config,omitempty" msgpack:"config,omitempty"`
	Frames    []FrameInput       `json:"frames" msgpack:"frames"`
}
