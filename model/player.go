package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

type Player struct {
	Pose
	Lives int
	// MaxLives is the life count the session started with.
	MaxLives int
	start    Pose
}

// NewPlayer places the player at (x, y) facing angle. The pose is kept so
// the player can be sent back there after losing a life.
func NewPlayer(x, y, angle, fov float64, lives int) *Player {
	p := &Player{
		Pose: Pose{
			Pos: geom.Vector2{X: x, Y: y},
			A:   angle,
			FOV: fov,
		},
		Lives:    lives,
		MaxLives: lives,
	}
	p.start = p.Pose

	return p
}

// Respawn moves the player back to the spawn position, keeping the heading.
func (p *Player) Respawn() {
	p.Pos = p.start.Pos
}

func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

func (p *Player) IsDead() bool {
	return p.Lives <= 0
}
