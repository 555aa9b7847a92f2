package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type screenText struct {
	title    string
	subtitle string
	hint     string
	bg       color.NRGBA
}

// menuScreens is the text shown for each non-playing state.
var menuScreens = map[State]screenText{
	MainMenu: {
		title:    "Knight Maze",
		subtitle: "Find the princess. Avoid the goblins.",
		hint:     "WASD / arrows to move, M to switch views, ENTER to start",
		bg:       color.NRGBA{20, 20, 40, 255},
	},
	Win: {
		title:    "You rescued the princess!",
		subtitle: "The maze is yours.",
		hint:     "ENTER to play again, ESC to quit",
		bg:       color.NRGBA{20, 60, 20, 255},
	},
	GameOver: {
		title:    "Game Over",
		subtitle: "The goblins got you.",
		hint:     "ENTER to try again, ESC to quit",
		bg:       color.NRGBA{70, 10, 10, 255},
	},
}

// Menus holds one ebitenui tree per menu state.
type Menus struct {
	screens map[State]*ebitenui.UI
}

func loadFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse menu font")
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func NewMenus() (*Menus, error) {
	titleFace, err := loadFace(48)
	if err != nil {
		return nil, err
	}
	bodyFace, err := loadFace(22)
	if err != nil {
		return nil, err
	}

	m := &Menus{screens: make(map[State]*ebitenui.UI, len(menuScreens))}
	for state, text := range menuScreens {
		m.screens[state] = buildScreen(text, titleFace, bodyFace)
	}
	return m, nil
}

func buildScreen(text screenText, titleFace, bodyFace font.Face) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(text.bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	lines := []struct {
		s    string
		face font.Face
		c    color.Color
	}{
		{text.title, titleFace, color.White},
		{text.subtitle, bodyFace, color.NRGBA{220, 220, 220, 255}},
		{text.hint, bodyFace, color.NRGBA{255, 215, 0, 255}},
	}
	for _, l := range lines {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(l.s, l.face, l.c),
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		))
	}

	root.AddChild(column)
	return &ebitenui.UI{Container: root}
}

func (m *Menus) Update(s State) {
	if ui, ok := m.screens[s]; ok {
		ui.Update()
	}
}

func (m *Menus) Draw(screen *ebiten.Image, s State) {
	if ui, ok := m.screens[s]; ok {
		ui.Draw(screen)
	}
}
