package render

import "image/color"

const (
	SwordKey = 's'
	HeartKey = 'h'
)

// HUD overlays the held sword and the remaining lives.
type HUD struct {
	SwordScale int
	HeartScale int
	Margin     int
	// LostHeart paints the silhouette of every life already lost.
	LostHeart color.RGBA
}

func NewHUD() *HUD {
	return &HUD{
		SwordScale: 5,
		HeartScale: 2,
		Margin:     10,
		LostHeart:  color.RGBA{60, 60, 60, 255},
	}
}

// DrawSword anchors the sword to the bottom left corner.
func (h *HUD) DrawSword(dst Canvas, tex TextureProvider) {
	_, sh, ok := tex.Size(SwordKey)
	if !ok {
		return
	}
	blit(dst, tex, SwordKey, h.Margin, dst.Height()-sh*h.SwordScale, h.SwordScale, color.RGBA{})
}

// DrawLives draws a row of maxLives hearts along the top left edge, the
// first lives of them in color.
func (h *HUD) DrawLives(dst Canvas, tex TextureProvider, lives, maxLives int) {
	w, _, ok := tex.Size(HeartKey)
	if !ok {
		return
	}
	step := w*h.HeartScale + h.Margin/2
	for i := 0; i < max(lives, maxLives); i++ {
		fill := color.RGBA{}
		if i >= lives {
			fill = h.LostHeart
		}
		blit(dst, tex, HeartKey, h.Margin+i*step, h.Margin, h.HeartScale, fill)
	}
}
