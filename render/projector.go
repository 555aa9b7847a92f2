package render

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"knightmaze/caster"
	"knightmaze/maze"
	"knightmaze/model"
)

const DefaultProjectionConstant = 120

// minSlabDistance keeps a ray that starts against a wall from producing an
// infinite slab.
const minSlabDistance = 1e-3

type Projector struct {
	Caster Caster
	// ProjectionConstant scales perceived wall height.
	ProjectionConstant float64
	Sky                color.RGBA
	Ground             color.RGBA
}

func NewProjector(c Caster) *Projector {
	return &Projector{
		Caster:             c,
		ProjectionConstant: DefaultProjectionConstant,
		Sky:                color.RGBA{130, 130, 130, 255},
		Ground:             color.RGBA{139, 0, 0, 255},
	}
}

// ColumnAngle is the absolute cast angle of screen column col.
func ColumnAngle(pose model.Pose, col, width int) float64 {
	return pose.A - pose.FOV/2 + pose.FOV*(float64(col)/float64(width))
}

// Slab returns the rows [top, bottom) a wall at distance covers on a screen
// screenHeight pixels tall, centered on the midline and clipped to the screen.
func Slab(screenHeight int, distance, constant float64) (top, bottom int) {
	half := float64(screenHeight) / 2
	height := (half / math.Max(distance, minSlabDistance)) * constant

	top = int(math.Round(geom.Clamp(half-height/2, 0, float64(screenHeight))))
	bottom = int(math.Round(geom.Clamp(half+height/2, 0, float64(screenHeight))))
	return top, bottom
}

// Render3D paints sky and ground, then one textured wall slab per column.
func (p *Projector) Render3D(dst Canvas, m maze.Maze, pose model.Pose, blockSize int, tex TextureProvider) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	fillRect(dst, 0, 0, w, h/2, p.Sky)
	fillRect(dst, 0, h/2, w, h-h/2, p.Ground)

	for col := 0; col < w; col++ {
		hit := p.Caster.Cast(m, pose, ColumnAngle(pose, col, w), blockSize, nil)
		if !hit.Hit() {
			continue
		}
		p.drawColumn(dst, col, hit, tex)
	}
}

func (p *Projector) drawColumn(dst Canvas, col int, hit caster.Intersect, tex TextureProvider) {
	top, bottom := Slab(dst.Height(), hit.Distance, p.ProjectionConstant)
	span := bottom - top
	if span <= 0 {
		return
	}

	texW, texH, ok := tex.Size(hit.Impact)
	if !ok {
		texW, texH = 1, 1
	}
	tx := hit.TextureX(texW)

	for y := top; y < bottom; y++ {
		ty := (y - top) * texH / span
		dst.SetPixel(col, y, tex.PixelColor(hit.Impact, tx, ty))
	}
}
