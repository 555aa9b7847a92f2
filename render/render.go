// Package render turns ray casts into pixels: the first-person projection,
// billboarded sprites, the mini-map, the top-down debug view and the HUD.
// Everything is written through a Canvas so the same code feeds the window
// and the terminal backends.
package render

import (
	"image/color"

	"knightmaze/caster"
	"knightmaze/maze"
	"knightmaze/model"
)

// Canvas is the pixel grid a frame is drawn into.
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.RGBA)
}

// TextureProvider hands out texels by key. Renderers never write to it.
type TextureProvider interface {
	PixelColor(key rune, x, y int) color.RGBA
	Size(key rune) (width, height int, ok bool)
}

// Caster is the ray query shared by every view.
type Caster interface {
	Cast(m maze.Maze, pose model.Pose, angle float64, blockSize int, plot caster.Plotter) caster.Intersect
}

func fillRect(dst Canvas, x, y, w, h int, c color.RGBA) {
	for dy := y; dy < y+h; dy++ {
		for dx := x; dx < x+w; dx++ {
			dst.SetPixel(dx, dy, c)
		}
	}
}

// blit copies a texture rectangle to dst scaled by an integer factor,
// skipping transparent texels. A fill with non-zero alpha paints the
// texture's silhouette in that color instead.
func blit(dst Canvas, tex TextureProvider, key rune, x0, y0, scale int, fill color.RGBA) {
	w, h, ok := tex.Size(key)
	if !ok || scale <= 0 {
		return
	}
	for ty := 0; ty < h*scale; ty++ {
		for tx := 0; tx < w*scale; tx++ {
			c := tex.PixelColor(key, tx/scale, ty/scale)
			if c.A == 0 {
				continue
			}
			if fill.A != 0 {
				c = fill
			}
			dst.SetPixel(x0+tx, y0+ty, c)
		}
	}
}
