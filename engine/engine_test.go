package engine

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferSetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	red := color.RGBA{255, 0, 0, 255}

	fb.SetPixel(1, 2, red)
	if got := fb.At(1, 2); got != red {
		t.Errorf("At(1, 2) = %v, want %v", got, red)
	}

	// out of range writes are dropped
	for _, p := range []image.Point{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		fb.SetPixel(p.X, p.Y, red)
	}
	count := 0
	for i := 0; i < len(fb.Pixels()); i += 4 {
		if fb.Pixels()[i] == 255 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d red pixels, want 1", count)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	black := color.RGBA{0, 0, 0, 255}
	fb.SetPixel(0, 0, color.RGBA{255, 255, 255, 255})

	fb.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := fb.At(x, y); got != black {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, black)
			}
		}
	}
}

func TestFramebufferFillRectClips(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	c := color.RGBA{1, 2, 3, 255}
	fb.FillRect(2, 2, 10, 10, c)

	if fb.At(3, 3) != c || fb.At(2, 2) != c {
		t.Error("rect interior not filled")
	}
	if fb.At(1, 1) == c {
		t.Error("pixel outside rect filled")
	}
}

func TestTextureManagerPixelColor(t *testing.T) {
	tm := NewTextureManager()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	blue := color.RGBA{0, 0, 255, 255}
	img.SetRGBA(1, 0, blue)
	tm.Add('#', img)

	tests := []struct {
		name string
		key  rune
		x, y int
		want color.RGBA
	}{
		{"Texel", '#', 1, 0, blue},
		{"Wraps positive", '#', 3, 2, blue},
		{"Wraps negative", '#', -1, 0, blue},
		{"Unknown key", 'Q', 0, 0, Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tm.PixelColor(tt.key, tt.x, tt.y); got != tt.want {
				t.Errorf("PixelColor(%q, %d, %d) = %v, want %v", tt.key, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTextureManagerSize(t *testing.T) {
	tm := NewTextureManager()
	tm.Add('g', Generate('g'))

	w, h, ok := tm.Size('g')
	if !ok || w != GoblinFrameSize*GoblinFrames || h != GoblinFrameSize {
		t.Errorf("Size('g') = %d, %d, %v", w, h, ok)
	}
	if _, _, ok := tm.Size('z'); ok {
		t.Error("Size('z') reported a texture that was never added")
	}
}

func TestTextureManagerAddOffsetImage(t *testing.T) {
	tm := NewTextureManager()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	green := color.RGBA{0, 255, 0, 255}
	src.SetRGBA(2, 2, green)

	tm.Add('+', src.SubImage(image.Rect(2, 2, 4, 4)))
	if got := tm.PixelColor('+', 0, 0); got != green {
		t.Errorf("PixelColor('+', 0, 0) = %v, want %v", got, green)
	}
}

func TestTextureManagerLoadDir(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	white := color.RGBA{255, 255, 255, 255}
	img.SetRGBA(0, 0, white)

	f, err := os.Create(filepath.Join(dir, "wall.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tm := NewTextureManager()
	tm.LoadDir(dir, map[rune]string{
		'#': "wall.png",
		'h': "missing.png",
	})

	if w, h, _ := tm.Size('#'); w != 8 || h != 4 {
		t.Errorf("Size('#') = %d, %d, want 8, 4", w, h)
	}
	if got := tm.PixelColor('#', 0, 0); got != white {
		t.Errorf("PixelColor('#', 0, 0) = %v, want %v", got, white)
	}
	if _, _, ok := tm.Size('h'); !ok {
		t.Error("missing file did not fall back to a generated texture")
	}
}

func TestLoadFileErrors(t *testing.T) {
	tm := NewTextureManager()
	if err := tm.LoadFile('#', filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("LoadFile() on a missing file returned nil error")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tm.LoadFile('#', bad); err == nil {
		t.Error("LoadFile() on garbage returned nil error")
	}
}

func TestGenerateSpritesHaveTransparency(t *testing.T) {
	for _, key := range []rune{'g', 'p', 's', 'h'} {
		img := Generate(key)
		if img.RGBAAt(0, 0).A != 0 {
			t.Errorf("Generate(%q) corner is opaque", key)
		}
	}
	for _, key := range []rune{'#', '+', '|', '-', 'X'} {
		img := Generate(key)
		if img.RGBAAt(0, 0).A != 255 {
			t.Errorf("Generate(%q) wall texel is not opaque", key)
		}
	}
}
