package render

import (
	"math"
	"sort"

	"knightmaze/maze"
	"knightmaze/model"
)

const (
	DefaultSpriteMinDistance = 50
	DefaultSpriteMaxDistance = 1000
	DefaultSpriteSize        = 40
	DefaultCullDivisor       = 2.9
)

// Billboarder draws sprites as screen aligned quads. There is no depth
// buffer: a sprite is either fully in front of the wall along its bearing or
// skipped, and overlapping sprites are ordered farthest first.
type Billboarder struct {
	Caster Caster
	// MinDistance and MaxDistance bound the Euclidean range sprites are drawn at.
	MinDistance float64
	MaxDistance float64
	// SizeConstant scales the on-screen size of a sprite.
	SizeConstant float64
	// CullDivisor narrows the visible cone to fov/CullDivisor either side.
	CullDivisor float64
}

func NewBillboarder(c Caster) *Billboarder {
	return &Billboarder{
		Caster:       c,
		MinDistance:  DefaultSpriteMinDistance,
		MaxDistance:  DefaultSpriteMaxDistance,
		SizeConstant: DefaultSpriteSize,
		CullDivisor:  DefaultCullDivisor,
	}
}

// Billboard is where a visible sprite lands on screen.
type Billboard struct {
	Sprite *model.Sprite
	// Distance is the Euclidean distance from the viewer.
	Distance float64
	// Angle is the bearing relative to the view direction, in (-π, π].
	Angle   float64
	Size    float64
	CenterX float64
}

// NormalizeAngle folds a into (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Place decides whether s is visible from pose and where it goes on a
// screen of the given size.
func (b *Billboarder) Place(m maze.Maze, pose model.Pose, s *model.Sprite, blockSize, screenW, screenH int) (Billboard, bool) {
	dx, dy := s.Pos.X-pose.Pos.X, s.Pos.Y-pose.Pos.Y
	bearing := math.Atan2(dy, dx)
	diff := NormalizeAngle(bearing - pose.A)

	if math.Abs(diff) > pose.FOV/b.CullDivisor {
		return Billboard{}, false
	}

	d := math.Hypot(dx, dy)
	if d <= 0 || d < b.MinDistance || d > b.MaxDistance {
		return Billboard{}, false
	}

	// wall distances are measured along the view direction, so compare the
	// sprite on the same terms
	wall := b.Caster.Cast(m, pose, bearing, blockSize, nil)
	if wall.Hit() && d*math.Cos(diff) >= wall.Distance {
		return Billboard{}, false
	}

	return Billboard{
		Sprite:   s,
		Distance: d,
		Angle:    diff,
		Size:     (float64(screenH) / d) * b.SizeConstant,
		CenterX:  ((diff / pose.FOV) + 0.5) * float64(screenW),
	}, true
}

// Draw places and rasterizes every sprite, farthest first, and returns how
// many were drawn.
func (b *Billboarder) Draw(dst Canvas, m maze.Maze, pose model.Pose, sprites []*model.Sprite, blockSize int, tex TextureProvider) int {
	w, h := dst.Width(), dst.Height()

	visible := make([]Billboard, 0, len(sprites))
	for _, s := range sprites {
		if bb, ok := b.Place(m, pose, s, blockSize, w, h); ok {
			visible = append(visible, bb)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Distance > visible[j].Distance
	})

	for _, bb := range visible {
		rasterize(dst, bb, tex)
	}
	return len(visible)
}

// rasterize maps each destination pixel of the clipped quad back to a texel
// of the sprite's current frame.
func rasterize(dst Canvas, bb Billboard, tex TextureProvider) {
	size := int(bb.Size)
	if size <= 0 {
		return
	}
	s := bb.Sprite

	left := int(bb.CenterX - bb.Size/2)
	top := int(float64(dst.Height())/2 - bb.Size/2)

	startX, endX := max(left, 0), min(left+size, dst.Width())
	startY, endY := max(top, 0), min(top+size, dst.Height())

	for x := startX; x < endX; x++ {
		tx := s.FrameX + (x-left)*s.FrameW/size
		for y := startY; y < endY; y++ {
			ty := s.FrameY + (y-top)*s.FrameH/size
			c := tex.PixelColor(s.TextureKey, tx, ty)
			if c.A == 0 {
				continue
			}
			dst.SetPixel(x, y, c)
		}
	}
}
