package playing

import "github.com/younwookim/tilerun/internal/domain/entity"

// cameraOffset centres the view on target and clamps it to the world.
// A world smaller than the screen pins the camera at the origin.
func cameraOffset(target entity.AABB, screenW, screenH int, worldW, worldH float64) (float64, float64) {
	x := target.X + target.W/2 - float64(screenW)/2
	y := target.Y + target.H/2 - float64(screenH)/2

	x = clamp(x, 0, worldW-float64(screenW))
	y = clamp(y, 0, worldH-float64(screenH))
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
