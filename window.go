package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// windowGame presents a Game in an ebiten window.
type windowGame struct {
	game   *Game
	menus  *Menus
	screen *ebiten.Image
	debug  bool
}

func runWindow(g *Game) error {
	menus, err := NewMenus()
	if err != nil {
		return err
	}

	w := g.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetTPS(w.TPS)

	wg := &windowGame{
		game:   g,
		menus:  menus,
		screen: ebiten.NewImage(w.Width, w.Height),
		debug:  g.cfg.Log.Level == "debug",
	}
	return ebiten.RunGame(wg)
}

// Update - runs the state machine on the polled keyboard.
// Update is called every tick (1/60 [s] by default).
func (wg *windowGame) Update() error {
	in := pollKeyboard()
	if in.Quit {
		return ebiten.Termination
	}

	if err := wg.game.Update(in); err != nil {
		return err
	}
	wg.menus.Update(wg.game.State())
	return nil
}

// Draw copies the framebuffer onto the screen while playing and shows the
// menus otherwise.
func (wg *windowGame) Draw(screen *ebiten.Image) {
	if wg.game.State() != Playing {
		wg.menus.Draw(screen, wg.game.State())
		return
	}

	wg.game.Render()
	wg.screen.WritePixels(wg.game.Framebuffer().Pixels())
	screen.DrawImage(wg.screen, nil)

	fps := fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS())
	if wg.debug {
		p := wg.game.World().Player
		fps += fmt.Sprintf("\nTPS: %0.2f\npos: %0.1f, %0.1f", ebiten.ActualTPS(), p.Pos.X, p.Pos.Y)
	}
	ebitenutil.DebugPrintAt(screen, fps, 10, 50)
}

// Layout keeps the logical screen the size of the framebuffer.
func (wg *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return wg.game.Framebuffer().Width(), wg.game.Framebuffer().Height()
}
