// Package breakout implements the single-screen brick breaker game loop:
// ball integration, paddle tracking, collision resolution, and session
// bookkeeping. It has no UI dependencies; hosts feed it input frames and
// read snapshots back.
package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/touch-breakout/internal/core"
)

// ErrInvalidGrid is returned when a brick grid has non-positive dimensions.
var ErrInvalidGrid = errors.New("breakout: invalid brick grid")

// Brick is a single brick. Its bounds never change; Alive flips to false once.
type Brick struct {
	Row, Col int
	Bounds   core.RectF
	Alive    bool
}

// Grid is a rows x cols brick layout stored in row-major order.
type Grid struct {
	Rows, Cols int
	Bricks     []Brick
}

// SetupBricks lays out a rows x cols grid. Each cell is the brick size plus
// the margin on every side; the grid is centered horizontally in the screen
// width and starts at geo.BrickTop. The result depends only on its arguments.
func SetupBricks(rows, cols int, geo Geometry) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	cellW := geo.CellW()
	cellH := geo.CellH()

	offsetX := (geo.ScreenW - float64(cols)*cellW) / 2
	if offsetX < 0 {
		offsetX = 0
	}

	grid := &Grid{
		Rows:   rows,
		Cols:   cols,
		Bricks: make([]Brick, 0, rows*cols),
	}
	for row := range rows {
		for col := range cols {
			x := offsetX + float64(col)*cellW + geo.BrickMargin
			y := geo.BrickTop + float64(row)*cellH + geo.BrickMargin
			grid.Bricks = append(grid.Bricks, Brick{
				Row:    row,
				Col:    col,
				Bounds: core.NewRectF(x, y, geo.BrickW, geo.BrickH),
				Alive:  true,
			})
		}
	}
	return grid, nil
}

// Brick returns the brick at (row, col).
// Out-of-range indices are a programming error and panic.
func (g *Grid) Brick(row, col int) *Brick {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		panic(fmt.Sprintf("breakout: brick (%d, %d) outside %dx%d grid", row, col, g.Rows, g.Cols))
	}
	return &g.Bricks[row*g.Cols+col]
}

// CountAlive returns the number of bricks still standing.
func (g *Grid) CountAlive() int {
	count := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// firstHit scans bricks in row-major order and returns the first alive brick
// touching box, or nil. Scanning stops at the first match.
func (g *Grid) firstHit(box core.RectF) *Brick {
	for i := range g.Bricks {
		b := &g.Bricks[i]
		if b.Alive && b.Bounds.Touches(box) {
			return b
		}
	}
	return nil
}
