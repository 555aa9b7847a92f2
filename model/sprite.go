package model

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Sprite is a billboard in the world. The frame rectangle selects the
// current animation cell inside the texture atlas named by TextureKey.
type Sprite struct {
	Pos        geom.Vector2
	TextureKey rune
	FrameX     int
	FrameY     int
	FrameW     int
	FrameH     int

	// Frames is the number of animation cells laid out left to right from
	// the first frame. FrameTicks is how many updates each one is held.
	Frames     int
	FrameTicks int

	firstX int
	ticks  int
}

func NewSprite(x, y float64, frameX, frameY int, key rune, frameW, frameH int) *Sprite {
	return &Sprite{
		Pos:        geom.Vector2{X: x, Y: y},
		TextureKey: key,
		FrameX:     frameX,
		FrameY:     frameY,
		FrameW:     frameW,
		FrameH:     frameH,
		Frames:     1,
		FrameTicks: 1,
		firstX:     frameX,
	}
}

// Spawn clones a template sprite at a new position.
func (s *Sprite) Spawn(x, y float64) (*Sprite, error) {
	clone := &Sprite{}
	if err := copier.Copy(clone, s); err != nil {
		return nil, errors.Wrap(err, "cloning sprite template")
	}
	clone.Pos = geom.Vector2{X: x, Y: y}
	clone.firstX = s.firstX
	clone.ticks = 0
	clone.FrameX = s.firstX
	return clone, nil
}

// Animate advances the frame origin through the strip once every FrameTicks calls.
func (s *Sprite) Animate() {
	if s.Frames <= 1 {
		return
	}
	ticks := s.FrameTicks
	if ticks < 1 {
		ticks = 1
	}

	s.ticks++
	frame := (s.ticks / ticks) % s.Frames
	s.FrameX = s.firstX + frame*s.FrameW
}

// MoveToward steps the sprite speed units toward target, never overshooting.
func (s *Sprite) MoveToward(target geom.Vector2, speed float64) {
	dist := geom.Distance(s.Pos.X, s.Pos.Y, target.X, target.Y)
	if dist == 0 {
		return
	}
	if dist <= speed {
		s.Pos = target
		return
	}
	s.Pos.X += (target.X - s.Pos.X) / dist * speed
	s.Pos.Y += (target.Y - s.Pos.Y) / dist * speed
}
