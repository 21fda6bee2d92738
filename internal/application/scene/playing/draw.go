package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/tilerun/internal/application/state"
	"github.com/younwookim/tilerun/internal/application/system"
	"github.com/younwookim/tilerun/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorBlock      = color.RGBA{80, 80, 100, 255}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorGoal       = color.RGBA{80, 200, 220, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorProjectile = color.RGBA{255, 240, 120, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.world.Snapshot()
	camX, camY := cameraOffset(snap.Player.Box, p.screenW, p.screenH, snap.Grid.Width(), snap.Grid.Bottom())

	p.drawTiles(screen, snap.Grid, camX, camY)
	for _, c := range snap.Coins {
		drawBox(screen, c.Box, camX, camY, colorCoin)
	}
	for _, e := range snap.Enemies {
		drawBox(screen, e.Box, camX, camY, colorEnemy)
	}
	for _, pr := range snap.Projectiles {
		drawBox(screen, pr.Box, camX, camY, colorProjectile)
	}
	p.drawPlayer(screen, snap.Player, camX, camY)

	p.drawUI(screen, snap)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nPoints: %d\n\nPress Enter to restart", snap.Outcome.Points))
	case state.StateStageClear:
		p.drawOverlay(screen, color.RGBA{0, 80, 40, 180},
			fmt.Sprintf("STAGE CLEAR\n\nPoints: %d\nFrames: %d\n\nPress Enter to play again",
				snap.Outcome.Points, snap.Outcome.Frames))
	}
}

// drawTiles draws only the cells inside the camera view.
func (p *Playing) drawTiles(screen *ebiten.Image, g *entity.Grid, camX, camY float64) {
	view := entity.AABB{X: camX, Y: camY, W: float64(p.screenW), H: float64(p.screenH)}
	col0, row0, col1, row1 := g.CellRange(view)

	for row := max(row0, 0); row <= row1 && row < g.Rows; row++ {
		for col := max(col0, 0); col <= col1 && col < g.Cols; col++ {
			var c color.Color
			switch g.Cells[row][col] {
			case entity.TileBlock:
				c = colorBlock
			case entity.TileHazard:
				c = colorHazard
			case entity.TileGoal:
				c = colorGoal
			default:
				continue
			}
			drawBox(screen, g.TileBox(col, row), camX, camY, c)
		}
	}
}

// drawPlayer draws the player's current animation frame from the atlas.
func (p *Playing) drawPlayer(screen *ebiten.Image, pv system.PlayerView, camX, camY float64) {
	fw, fh := p.cfg.Player.FrameWidth, p.cfg.Player.FrameHeight
	if p.atlas == nil {
		p.atlas = newPlayerAtlas(fw, fh)
	}
	screen.DrawImage(playerSprite(p.atlas, pv.Frame, fw, fh), spriteOptions(pv, fw, fh, camX, camY))
}

func drawBox(screen *ebiten.Image, b entity.AABB, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, c)
}

func (p *Playing) drawUI(screen *ebiten.Image, snap system.Snapshot) {
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	if snap.Player.MaxHealth > 0 {
		ratio := float64(snap.Player.Health) / float64(snap.Player.MaxHealth)
		ebitenutil.DrawRect(screen, barX, barY, barW*max(ratio, 0), barH, colorHealthFG)
	}

	status := fmt.Sprintf("Points: %d  Frame: %d", snap.Player.Points, snap.Frame)
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | X/J: Fire | ESC: Pause | F5: Save replay")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), bg)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
