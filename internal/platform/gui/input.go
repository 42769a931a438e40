package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is everything read from Ebitengine for one Update call.
// Pointer positions are in playfield units, since Layout reports the
// playfield as the logical screen.
type input struct {
	drags   []float64
	tapped  bool // A new touch or click this frame
	left    bool
	right   bool
	restart bool
	pause   bool
	back    bool
}

// reader reads Ebitengine input state, reusing its buffers across frames.
type reader struct {
	touches []ebiten.TouchID
	fresh   []ebiten.TouchID
	drags   []float64
}

func (r *reader) read() input {
	in := input{}

	r.drags = r.drags[:0]
	r.touches = ebiten.AppendTouchIDs(r.touches[:0])
	for _, id := range r.touches {
		x, _ := ebiten.TouchPosition(id)
		r.drags = append(r.drags, float64(x))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		r.drags = append(r.drags, float64(x))
	}
	in.drags = r.drags

	r.fresh = inpututil.AppendJustPressedTouchIDs(r.fresh[:0])
	in.tapped = len(r.fresh) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	in.left = inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
	in.right = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
	in.restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)

	return in
}
