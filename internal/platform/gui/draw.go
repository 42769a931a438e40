package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/touch-breakout/internal/core"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
)

var (
	backgroundColor = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	paddleColor     = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ballColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	deathLineColor  = color.RGBA{0x60, 0x60, 0x70, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// palette maps cell colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {0xe5, 0x39, 0x35, 0xff},
	core.ColorOrange:  {0xfb, 0x8c, 0x00, 0xff},
	core.ColorYellow:  {0xfd, 0xd8, 0x35, 0xff},
	core.ColorGreen:   {0x43, 0xa0, 0x47, 0xff},
	core.ColorCyan:    {0x00, 0xac, 0xc1, 0xff},
	core.ColorBlue:    {0x1e, 0x88, 0xe5, 0xff},
	core.ColorMagenta: {0x8e, 0x24, 0xaa, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:    {0x75, 0x75, 0x75, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return paddleColor
}

// Draw renders the playfield.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	geo := a.game.Geometry()
	fillRect(screen, core.NewRectF(0, geo.DeathLine(), geo.ScreenW, 2), deathLineColor)

	for _, b := range a.game.Bricks() {
		if b.Alive {
			fillRect(screen, b.Bounds, rgba(core.RowColor(b.Row)))
		}
	}

	paddle := a.game.Paddle()
	fillRect(screen, paddle.Bounds(), paddleColor)

	ball := a.game.Ball()
	fillRect(screen, ball.Bounds(), ballColor)

	s := a.game.Session()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   Lives: %d", s.Score, s.Lives), 16, 16)

	switch {
	case a.game.Phase() == breakout.PhaseGameOver:
		drawOverlay(screen, geo, "GAME OVER", "Tap to play again")
	case a.game.Phase() == breakout.PhaseCleared:
		drawOverlay(screen, geo, fmt.Sprintf("BOARD CLEARED  Score: %d", s.Score), "Tap to play again")
	case a.paused:
		drawOverlay(screen, geo, "PAUSED", "Tap to resume")
	}
}

func fillRect(dst *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawOverlay(dst *ebiten.Image, geo breakout.Geometry, title, hint string) {
	const boxH = 120
	y := geo.ScreenH/2 - boxH/2
	fillRect(dst, core.NewRectF(0, y, geo.ScreenW, boxH), overlayColor)

	// DebugPrint glyphs are 6x16 pixels.
	ebitenutil.DebugPrintAt(dst, title, int(geo.ScreenW/2)-len(title)*3, int(y)+32)
	ebitenutil.DebugPrintAt(dst, hint, int(geo.ScreenW/2)-len(hint)*3, int(y)+72)
}
