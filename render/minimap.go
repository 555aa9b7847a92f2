package render

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"

	"knightmaze/maze"
	"knightmaze/model"
)

const (
	DefaultMinimapCellSize = 20
	markerSize             = 4
)

// Minimap is a scaled down copy of the grid with position markers.
type Minimap struct {
	CellSize int
	// Anchor is the screen position of the map's top left corner.
	Anchor       geom.Vector2
	WallColor    color.RGBA
	PlayerColor  color.RGBA
	SpriteColors map[rune]color.RGBA
}

func NewMinimap(anchor geom.Vector2) *Minimap {
	return &Minimap{
		CellSize:    DefaultMinimapCellSize,
		Anchor:      anchor,
		WallColor:   color.RGBA{85, 107, 47, 255},
		PlayerColor: color.RGBA{0, 0, 0, 255},
		SpriteColors: map[rune]color.RGBA{
			'g': {200, 30, 30, 255},
			'p': {255, 105, 180, 255},
		},
	}
}

// Draw paints the map cells and then a marker for the viewer and every sprite.
func (mm *Minimap) Draw(dst Canvas, m maze.Maze, worldBlockSize int, pose model.Pose, sprites []*model.Sprite) {
	ax, ay := int(mm.Anchor.X), int(mm.Anchor.Y)
	drawCells(dst, m, ax, ay, mm.CellSize, mm.WallColor)

	for _, s := range sprites {
		c, ok := mm.SpriteColors[s.TextureKey]
		if !ok {
			c = color.RGBA{255, 255, 255, 255}
		}
		mm.marker(dst, s.Pos, worldBlockSize, c)
	}
	mm.marker(dst, pose.Pos, worldBlockSize, mm.PlayerColor)
}

// ToScreen converts a world position to minimap pixels.
func (mm *Minimap) ToScreen(p geom.Vector2, worldBlockSize int) (int, int) {
	scale := float64(mm.CellSize) / float64(worldBlockSize)
	return int(mm.Anchor.X + p.X*scale), int(mm.Anchor.Y + p.Y*scale)
}

func (mm *Minimap) marker(dst Canvas, p geom.Vector2, worldBlockSize int, c color.RGBA) {
	x, y := mm.ToScreen(p, worldBlockSize)
	fillRect(dst, x-markerSize/2, y-markerSize/2, markerSize, markerSize, c)
}

func drawCells(dst Canvas, m maze.Maze, x0, y0, cellSize int, c color.RGBA) {
	for j, row := range m {
		for i, cell := range row {
			if cell == maze.Empty {
				continue
			}
			fillRect(dst, x0+i*cellSize, y0+j*cellSize, cellSize, cellSize, c)
		}
	}
}
