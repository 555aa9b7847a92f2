package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"knightmaze/engine"
	"knightmaze/logger"
)

type action int

const (
	actForward action = iota
	actBackward
	actLeft
	actRight
	actToggleView
	actConfirm
	actQuit
)

// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held for holdTicks frames after its last event.
const holdTicks = 4

// halfBlock paints the top pixel as foreground and the bottom one as
// background, giving two pixels per terminal cell.
const halfBlock = '▀'

func actionForKey(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return actForward, true
	case tcell.KeyDown:
		return actBackward, true
	case tcell.KeyLeft:
		return actLeft, true
	case tcell.KeyRight:
		return actRight, true
	case tcell.KeyEnter:
		return actConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actForward, true
		case 's', 'S':
			return actBackward, true
		case 'a', 'A':
			return actLeft, true
		case 'd', 'D':
			return actRight, true
		case 'm', 'M':
			return actToggleView, true
		case 'q':
			return actQuit, true
		}
	}
	return 0, false
}

// keyState turns the terminal's press events into held keys.
type keyState struct {
	held    map[action]int
	pressed mapset.Set[action]
}

func newKeyState() *keyState {
	return &keyState{
		held:    make(map[action]int),
		pressed: mapset.New[action](),
	}
}

func (k *keyState) press(a action) {
	k.pressed.Put(a)
	k.held[a] = holdTicks
}

// frame builds this frame's Input and ages held keys. One-shot actions fire
// only on the frame their key event arrived.
func (k *keyState) frame() Input {
	active := mapset.New[action]()
	for a, ticks := range k.held {
		if ticks <= 0 {
			delete(k.held, a)
			continue
		}
		active.Put(a)
		k.held[a] = ticks - 1
	}

	in := Input{
		ToggleView: k.pressed.Has(actToggleView),
		Confirm:    k.pressed.Has(actConfirm),
		Quit:       k.pressed.Has(actQuit),
	}
	in.Controls.Forward = active.Has(actForward)
	in.Controls.Backward = active.Has(actBackward)
	in.Controls.Left = active.Has(actLeft)
	in.Controls.Right = active.Has(actRight)

	k.pressed = mapset.New[action]()
	return in
}

// present scales fb down to the screen with nearest neighbour sampling, two
// pixel rows per cell.
func present(screen tcell.Screen, fb *engine.Framebuffer) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	pixelRows := rows * 2

	for cy := 0; cy < rows; cy++ {
		topY := (cy * 2) * fb.Height() / pixelRows
		bottomY := (cy*2 + 1) * fb.Height() / pixelRows
		for cx := 0; cx < cols; cx++ {
			x := cx * fb.Width() / cols
			top, bottom := fb.At(x, topY), fb.At(x, bottomY)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// drawMenu prints the menu text for s centered on the screen.
func drawMenu(screen tcell.Screen, s State) {
	screen.Clear()
	text, ok := menuScreens[s]
	if !ok {
		return
	}
	cols, rows := screen.Size()
	lines := []string{text.title, "", text.subtitle, "", text.hint}
	y := rows/2 - len(lines)/2
	for i, line := range lines {
		x := (cols - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		for j, r := range []rune(line) {
			screen.SetContent(x+j, y+i, r, nil, tcell.StyleDefault.Bold(i == 0))
		}
	}
}

func runTerminal(g *Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	log := logger.For("terminal")
	cols, rows := screen.Size()
	log.WithField("size", [2]int{cols, rows}).Info("terminal backend started")

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tps := g.cfg.Window.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	keys := newKeyState()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := actionForKey(ev); ok {
					keys.press(a)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			in := keys.frame()
			if in.Quit {
				return nil
			}
			if err := g.Update(in); err != nil {
				return err
			}
			if g.State() == Playing {
				g.Render()
				present(screen, g.Framebuffer())
			} else {
				drawMenu(screen, g.State())
			}
			screen.Show()
		}
	}
}
