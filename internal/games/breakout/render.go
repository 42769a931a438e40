package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/touch-breakout/internal/core"
)

// Visual characters for terminal rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	DeathChar  = '·'
)

// Render draws the current state into a terminal screen buffer, scaling
// playfield units to cells. Row 0 carries the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	sx := float64(dst.Width()) / g.geo.ScreenW
	sy := float64(dst.Height()) / g.geo.ScreenH

	g.renderDeathLine(dst, sy)
	g.renderBricks(dst, sx, sy)
	g.renderPaddle(dst, sx, sy)
	g.renderBall(dst, sx, sy)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// cellSpan maps a playfield interval to a half-open cell range of at least one cell.
func cellSpan(from, to, scale float64) (int, int) {
	start := int(math.Floor(from*scale + 0.5))
	end := int(math.Floor(to * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (g *Game) renderDeathLine(dst *core.Screen, sy float64) {
	y := int(g.geo.DeathLine() * sy)
	if y >= dst.Height() {
		y = dst.Height() - 1
	}
	for x := range dst.Width() {
		dst.SetColored(x, y, DeathChar, core.ColorGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen, sx, sy float64) {
	for i := range g.grid.Bricks {
		b := &g.grid.Bricks[i]
		if !b.Alive {
			continue
		}
		x0, x1 := cellSpan(b.Bounds.X, b.Bounds.Right(), sx)
		y0, y1 := cellSpan(b.Bounds.Y, b.Bounds.Bottom(), sy)
		dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), BrickChar, core.RowColor(b.Row))
	}
}

func (g *Game) renderPaddle(dst *core.Screen, sx, sy float64) {
	x0, x1 := cellSpan(g.paddle.X, g.paddle.X+g.paddle.W, sx)
	y := int(g.paddle.Y * sy)
	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorWhite)
	}
}

func (g *Game) renderBall(dst *core.Screen, sx, sy float64) {
	b := g.ball.Bounds()
	x := int((b.X + b.W/2) * sx)
	y := int((b.Y + b.H/2) * sy)
	dst.SetColored(x, y, BallChar, core.ColorYellow)
}

// renderHUD draws the score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.session.Score))
	livesText := fmt.Sprintf("Lives: %d", g.session.Lives)
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)
}

// renderOverlay draws end-of-session messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", "R: new game  |  B: home")
	case PhaseCleared:
		drawCenteredBox(dst, "BOARD CLEARED", fmt.Sprintf("Score: %d  |  R: new game", g.session.Score))
	case PhaseIdle:
		drawCenteredBox(dst, "BREAKOUT", "R: new game")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
