package engine

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"knightmaze/logger"
)

// Missing is returned for texels of textures that were never registered.
var Missing = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// TextureManager maps cell identifiers and sprite keys to RGBA images.
// Renderers only read from it.
type TextureManager struct {
	textures map[rune]*image.RGBA
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		textures: make(map[rune]*image.RGBA),
	}
}

// Add registers img under key, replacing any previous texture.
func (t *TextureManager) Add(key rune, img image.Image) {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		t.textures[key] = rgba
		return
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	t.textures[key] = rgba
}

func (t *TextureManager) LoadFile(key rune, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open texture %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decode texture %q", path)
	}
	t.Add(key, img)
	return nil
}

// LoadDir loads files (key to file name) from dir. A texture that cannot be
// read is replaced by its generated fallback, so a missing asset never stops
// the game.
func (t *TextureManager) LoadDir(dir string, files map[rune]string) {
	log := logger.For("textures")
	for key, name := range files {
		path := filepath.Join(dir, name)
		if err := t.LoadFile(key, path); err != nil {
			log.WithField("key", string(key)).WithError(err).Warn("using generated texture")
			t.Add(key, Generate(key))
			continue
		}
		log.WithField("key", string(key)).Debugf("loaded %s", path)
	}
}

// Size returns the dimensions of the texture registered under key.
func (t *TextureManager) Size(key rune) (width, height int, ok bool) {
	img, ok := t.textures[key]
	if !ok {
		return 0, 0, false
	}
	return img.Rect.Dx(), img.Rect.Dy(), true
}

// PixelColor returns the texel at (x, y). Coordinates wrap around the
// texture so callers never index outside it.
func (t *TextureManager) PixelColor(key rune, x, y int) color.RGBA {
	img, ok := t.textures[key]
	if !ok {
		return Missing
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return Missing
	}
	x = ((x % w) + w) % w
	y = ((y % h) + h) % h
	return img.RGBAAt(x, y)
}
