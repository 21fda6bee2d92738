package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilerun/internal/application/replay"
	"github.com/younwookim/tilerun/internal/application/system"
)

// Controls is one frame of input: the simulation intents plus the
// scene-level keys.
type Controls struct {
	Intents system.Intents

	Pause   bool // toggle pause
	Restart bool // start over after the session ended
	Save    bool // write the recording now

	// DT replaces the measured frame delta when HasDT is set. A recorded
	// delta of zero is still a delta.
	DT    float64
	HasDT bool
	// Hold skips the simulation step for this frame.
	Hold bool
}

// InputSource produces the controls for each frame
type InputSource interface {
	Poll() Controls
}

// KeyboardInput reads controls from the keyboard.
//
//	Left/A, Right/D    move
//	Space/W/Up         jump
//	X/J/Ctrl           fire
//	Escape             pause
//	Enter/Space        restart after the session ended
//	F5                 save recording
type KeyboardInput struct{}

// Poll implements InputSource
func (KeyboardInput) Poll() Controls {
	return Controls{
		Intents: system.Intents{
			MoveLeft:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
			MoveRight:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
			JumpPressed: anyJustPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp),
			FirePressed: anyJustPressed(ebiten.KeyX, ebiten.KeyJ, ebiten.KeyControlLeft, ebiten.KeyControlRight),
		},
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ReplayInput feeds a recorded session back through the scene. Escape
// still pauses playback; no recorded frame is consumed while paused.
type ReplayInput struct {
	rp       *replay.Replayer
	keyboard InputSource
	paused   bool
}

// NewReplayInput plays rp. keyboard supplies the pause key and may be nil.
func NewReplayInput(rp *replay.Replayer, keyboard InputSource) *ReplayInput {
	return &ReplayInput{rp: rp, keyboard: keyboard}
}

// Poll implements InputSource
func (r *ReplayInput) Poll() Controls {
	var c Controls
	if r.keyboard != nil {
		k := r.keyboard.Poll()
		c.Pause = k.Pause
		c.Restart = k.Restart
	}
	if c.Pause {
		r.paused = !r.paused
	}
	if r.paused {
		c.Hold = true
		return c
	}

	fi, ok := r.rp.Next()
	if !ok {
		c.Hold = true
		return c
	}
	c.Intents = fi.Intents()
	c.DT = fi.DT
	c.HasDT = true
	return c
}

// Rewind starts playback from the first frame again
func (r *ReplayInput) Rewind() {
	r.rp.Reset()
	r.paused = false
}
