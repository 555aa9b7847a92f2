package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"knightmaze/model"
)

// Input is one frame of player intent, whatever device it came from.
type Input struct {
	Controls model.Controls
	// ToggleView, Confirm and Quit fire once per key press.
	ToggleView bool
	Confirm    bool
	Quit       bool
}

// pollKeyboard reads the ebiten keyboard state. Movement keys count while
// held, the rest only on the frame they go down.
func pollKeyboard() Input {
	var in Input

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Controls.Forward = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Controls.Backward = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Controls.Left = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Controls.Right = true
	}

	in.ToggleView = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return in
}
