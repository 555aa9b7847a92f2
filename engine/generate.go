package engine

import (
	"image"
	"image/color"
	"math"
)

const (
	WallTextureSize   = 64
	GoblinFrameSize   = 64
	GoblinFrames      = 4
	PrincessFrameSize = 64
)

// Generate draws a stand-in texture for key. Walls get a pattern per key,
// sprites and HUD icons get simple figures on a transparent background.
func Generate(key rune) *image.RGBA {
	switch key {
	case '#':
		return bricks(color.RGBA{150, 60, 45, 255}, color.RGBA{90, 85, 80, 255})
	case '+':
		return bricks(color.RGBA{70, 80, 140, 255}, color.RGBA{40, 40, 60, 255})
	case '|':
		return planks(color.RGBA{130, 90, 50, 255})
	case '-':
		return bricks(color.RGBA{60, 110, 60, 255}, color.RGBA{40, 60, 40, 255})
	case 'g':
		return goblin()
	case 'p':
		return princess()
	case 's':
		return sword()
	case 'h':
		return heart()
	}
	return checker(key)
}

func bricks(brick, mortar color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, WallTextureSize, WallTextureSize))
	const rowH, brickW = 16, 32
	for y := 0; y < WallTextureSize; y++ {
		row := y / rowH
		shift := (row % 2) * brickW / 2
		for x := 0; x < WallTextureSize; x++ {
			c := brick
			if y%rowH == 0 || (x+shift)%brickW == 0 {
				c = mortar
			} else {
				// slight vertical shading so columns are distinguishable
				c = shade(c, 1-0.15*float64(y%rowH)/rowH)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func planks(wood color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, WallTextureSize, WallTextureSize))
	const plankW = 16
	for y := 0; y < WallTextureSize; y++ {
		for x := 0; x < WallTextureSize; x++ {
			c := wood
			if x%plankW == 0 {
				c = shade(wood, 0.5)
			} else if (y+x*7)%23 == 0 {
				c = shade(wood, 0.8)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func checker(key rune) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, WallTextureSize, WallTextureSize))
	base := color.RGBA{
		R: uint8(80 + int(key)*37%150),
		G: uint8(80 + int(key)*71%150),
		B: uint8(80 + int(key)*13%150),
		A: 255,
	}
	for y := 0; y < WallTextureSize; y++ {
		for x := 0; x < WallTextureSize; x++ {
			c := base
			if (x/8+y/8)%2 == 0 {
				c = shade(base, 0.7)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// goblin lays GoblinFrames walk frames side by side.
func goblin() *image.RGBA {
	const s = GoblinFrameSize
	img := image.NewRGBA(image.Rect(0, 0, s*GoblinFrames, s))
	skin := color.RGBA{70, 150, 50, 255}
	eye := color.RGBA{230, 30, 30, 255}
	cloth := color.RGBA{100, 70, 40, 255}

	for f := 0; f < GoblinFrames; f++ {
		ox := f * s
		swing := int(6 * math.Sin(float64(f)*math.Pi/2))

		fillEllipse(img, ox+32, 18, 11, 11, skin)
		img.SetRGBA(ox+27, 16, eye)
		img.SetRGBA(ox+37, 16, eye)
		fillRect(img, ox+22, 28, 20, 20, cloth)
		// arms
		fillRect(img, ox+16, 30+swing, 6, 14, skin)
		fillRect(img, ox+42, 30-swing, 6, 14, skin)
		// legs
		fillRect(img, ox+24+swing/2, 48, 6, 15, skin)
		fillRect(img, ox+34-swing/2, 48, 6, 15, skin)
	}
	return img
}

func princess() *image.RGBA {
	const s = PrincessFrameSize
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	hair := color.RGBA{240, 200, 60, 255}
	face := color.RGBA{250, 210, 180, 255}
	dress := color.RGBA{230, 100, 170, 255}

	fillEllipse(img, 32, 12, 9, 9, hair)
	fillEllipse(img, 32, 14, 6, 7, face)
	for y := 22; y < s; y++ {
		half := 4 + (y-22)/2
		fillRect(img, 32-half, y, half*2, 1, dress)
	}
	return img
}

func sword() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	blade := color.RGBA{200, 200, 215, 255}
	hilt := color.RGBA{120, 80, 30, 255}
	for i := 4; i < 22; i++ {
		fillRect(img, i, 27-i, 3, 3, blade)
	}
	fillRect(img, 4, 20, 10, 3, hilt)
	fillRect(img, 6, 22, 3, 7, hilt)
	return img
}

func heart() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	red := color.RGBA{220, 30, 50, 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			// implicit heart curve scaled to the icon
			fx := (float64(x) - 7.5) / 7
			fy := (7.5 - float64(y)) / 7
			a := fx*fx + fy*fy - 1
			if a*a*a-fx*fx*fy*fy*fy <= 0 {
				img.SetRGBA(x, y, red)
			}
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dy := y; dy < y+h; dy++ {
		for dx := x; dx < x+w; dx++ {
			if image.Pt(dx, dy).In(img.Rect) {
				img.SetRGBA(dx, dy, c)
			}
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / float64(rx)
			ny := float64(dy) / float64(ry)
			if nx*nx+ny*ny <= 1 {
				fillRect(img, cx+dx, cy+dy, 1, 1, c)
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
