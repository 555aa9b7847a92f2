// Package engine owns pixel storage: the per-frame framebuffer every renderer
// writes into, and the textures they sample from.
package engine

import (
	"image/color"
)

// Framebuffer is an RGBA pixel grid, 4 bytes per pixel, rows top to bottom.
// SetPixel is the only way pixels are written and it ignores anything
// outside the buffer.
type Framebuffer struct {
	pixels []byte
	width  int
	height int
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	index := (y*fb.width + x) * 4
	fb.pixels[index] = c.R
	fb.pixels[index+1] = c.G
	fb.pixels[index+2] = c.B
	fb.pixels[index+3] = c.A
}

// At returns the color at (x, y), transparent black outside the buffer.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return color.RGBA{}
	}
	index := (y*fb.width + x) * 4
	return color.RGBA{fb.pixels[index], fb.pixels[index+1], fb.pixels[index+2], fb.pixels[index+3]}
}

// Clear paints the whole buffer opaque black.
func (fb *Framebuffer) Clear() {
	fb.FillRect(0, 0, fb.width, fb.height, color.RGBA{0, 0, 0, 255})
}

func (fb *Framebuffer) FillRect(x, y, width, height int, c color.RGBA) {
	for dy := y; dy < y+height; dy++ {
		for dx := x; dx < x+width; dx++ {
			fb.SetPixel(dx, dy, c)
		}
	}
}

// Pixels exposes the raw RGBA bytes for presentation, e.g. ebiten WritePixels.
func (fb *Framebuffer) Pixels() []byte {
	return fb.pixels
}
