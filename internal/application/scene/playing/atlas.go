package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
)

var (
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorPlayerHit = color.RGBA{255, 255, 255, 255}
	colorShooting  = color.RGBA{160, 230, 120, 255}
	colorFacing    = color.RGBA{20, 60, 20, 255}
	colorMuzzle    = color.RGBA{255, 240, 120, 255}
)

// newPlayerAtlas draws a placeholder sprite sheet for the player: one row
// of frameW x frameH frames in AnimFrame order, all facing right.
// Indices with no named frame stay transparent.
func newPlayerAtlas(frameW, frameH int) *ebiten.Image {
	atlas := ebiten.NewImage(frameW*entity.AtlasFrameCount, frameH)
	fw, fh := float64(frameW), float64(frameH)

	for i := 0; i < entity.AtlasFrameCount; i++ {
		f := entity.AnimFrame(i)
		x0 := float64(f.AtlasRect(frameW, frameH).Min.X)

		body, stride, shooting, ok := frameLook(f)
		if !ok {
			continue
		}

		legH := fh / 4
		ebitenutil.DrawRect(atlas, x0+fw*0.2, 0, fw*0.6, fh-legH, body)

		// legs: stride shifts them apart, 0 tucks them together
		legW := fw / 5
		mid := x0 + fw/2
		ebitenutil.DrawRect(atlas, mid-legW-stride*fw/8, fh-legH, legW, legH, body)
		ebitenutil.DrawRect(atlas, mid+stride*fw/8, fh-legH, legW, legH, body)

		ebitenutil.DrawRect(atlas, x0+fw*0.6, fh*0.15, fw/8, fh/8, colorFacing)
		if shooting {
			ebitenutil.DrawRect(atlas, x0+fw*0.8, fh*0.4, fw*0.2, fh/10, colorMuzzle)
		}
	}
	return atlas
}

// frameLook describes how a frame is drawn. ok is false for unused indices.
func frameLook(f entity.AnimFrame) (body color.Color, stride float64, shooting, ok bool) {
	switch f {
	case entity.FrameIdle:
		return colorPlayer, 0.5, false, true
	case entity.FrameRun1:
		return colorPlayer, 0, false, true
	case entity.FrameRun2:
		return colorPlayer, 1, false, true
	case entity.FrameRun3:
		return colorPlayer, 2, false, true
	case entity.FrameJump:
		return colorPlayer, -0.5, false, true
	case entity.FrameShootRun1:
		return colorShooting, 0, true, true
	case entity.FrameShootRun2: // shared with FrameShootIdle
		return colorShooting, 1, true, true
	case entity.FrameShootRun3:
		return colorShooting, 2, true, true
	case entity.FrameShootJump:
		return colorShooting, -0.5, true, true
	case entity.FrameHit:
		return colorPlayerHit, 0.5, false, true
	}
	return nil, 0, false, false
}

// playerSprite cuts frame f out of the atlas
func playerSprite(atlas *ebiten.Image, f entity.AnimFrame, frameW, frameH int) *ebiten.Image {
	return atlas.SubImage(f.AtlasRect(frameW, frameH)).(*ebiten.Image)
}

// spriteOptions scales a frameW x frameH sprite onto the player's box,
// mirrored when the player faces left.
func spriteOptions(pv system.PlayerView, frameW, frameH int, camX, camY float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	if !pv.FacingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(frameW), 0)
	}
	op.GeoM.Scale(pv.Box.W/float64(frameW), pv.Box.H/float64(frameH))
	op.GeoM.Translate(pv.Box.X-camX, pv.Box.Y-camY)
	return op
}
