package entity

import "image"

// AnimFrame indexes the player's sprite atlas, a single row of fixed-width frames.
type AnimFrame int

const (
	FrameIdle      AnimFrame = 0
	FrameRun1      AnimFrame = 1
	FrameRun2      AnimFrame = 2
	FrameRun3      AnimFrame = 3
	FrameJump      AnimFrame = 5
	FrameShootRun1 AnimFrame = 6
	FrameShootRun2 AnimFrame = 7
	FrameShootRun3 AnimFrame = 8
	FrameShootIdle AnimFrame = 7
	FrameShootJump AnimFrame = 10
	FrameHit       AnimFrame = 11
)

// AtlasFrameCount is the number of frames in the player atlas.
const AtlasFrameCount = 12

var (
	runCycle      = [...]AnimFrame{FrameRun1, FrameRun2, FrameRun3}
	shootRunCycle = [...]AnimFrame{FrameShootRun1, FrameShootRun2, FrameShootRun3}
)

// AtlasRect returns the sub-rectangle of the frame inside the atlas.
func (f AnimFrame) AtlasRect(frameW, frameH int) image.Rectangle {
	x := int(f) * frameW
	return image.Rect(x, 0, x+frameW, frameH)
}

// NextFrame picks the frame that follows cur for the given movement state.
// Moving on the ground steps through the three-frame run cycle; every other
// state maps to a single frame.
func NextFrame(cur AnimFrame, grounded, moving, shooting bool) AnimFrame {
	if !grounded {
		if shooting {
			return FrameShootJump
		}
		return FrameJump
	}

	if !moving {
		if shooting {
			return FrameShootIdle
		}
		return FrameIdle
	}

	cycle := runCycle
	if shooting {
		cycle = shootRunCycle
	}
	for i, f := range cycle {
		if f == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
