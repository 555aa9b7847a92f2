package render

import (
	"image/color"

	"knightmaze/maze"
	"knightmaze/model"
)

// DebugRays is how many rays the top-down view traces across the FOV.
const DebugRays = 5

// TopDown is the 2D debug view: the grid at full block size, the viewer and
// a fan of traced rays.
type TopDown struct {
	Caster      Caster
	Background  color.RGBA
	WallColor   color.RGBA
	PlayerColor color.RGBA
	SpriteColor color.RGBA
}

func NewTopDown(c Caster) *TopDown {
	return &TopDown{
		Caster:      c,
		Background:  color.RGBA{0, 0, 0, 255},
		WallColor:   color.RGBA{85, 107, 47, 255},
		PlayerColor: color.RGBA{255, 0, 0, 255},
		SpriteColor: color.RGBA{255, 255, 0, 255},
	}
}

// RenderMaze draws the debug view. Rays are plotted straight into dst.
func (td *TopDown) RenderMaze(dst Canvas, m maze.Maze, pose model.Pose, blockSize int, sprites []*model.Sprite) {
	fillRect(dst, 0, 0, dst.Width(), dst.Height(), td.Background)
	drawCells(dst, m, 0, 0, blockSize, td.WallColor)

	for _, s := range sprites {
		fillRect(dst, int(s.Pos.X)-markerSize/2, int(s.Pos.Y)-markerSize/2, markerSize, markerSize, td.SpriteColor)
	}

	for i := 0; i < DebugRays; i++ {
		a := pose.A - pose.FOV/2 + pose.FOV*(float64(i)/DebugRays)
		td.Caster.Cast(m, pose, a, blockSize, dst)
	}
	dst.SetPixel(int(pose.Pos.X), int(pose.Pos.Y), td.PlayerColor)
}
