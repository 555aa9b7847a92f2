package model

import (
	"math"

	"knightmaze/maze"
)

// Controls is the per-frame input the movement step consumes.
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Movement resolves proposed motion against the grid.
type Movement struct {
	// Speed is the distance covered per frame in world units.
	Speed float64
	// RotationSpeed is the heading change per frame in radians.
	RotationSpeed float64
}

func DefaultMovement() Movement {
	return Movement{
		Speed:         5.0,
		RotationSpeed: math.Pi / 25.0,
	}
}

// Apply turns first, then moves along the (possibly new) heading.
// It reports whether the position changed.
func (m Movement) Apply(p *Pose, c Controls, grid maze.Maze, blockSize int) bool {
	if c.Right {
		Rotate(p, m.RotationSpeed)
	}
	if c.Left {
		Rotate(p, -m.RotationSpeed)
	}

	moved := false
	if c.Backward {
		moved = m.Step(p, -m.Speed, grid, blockSize) || moved
	}
	if c.Forward {
		moved = m.Step(p, m.Speed, grid, blockSize) || moved
	}
	return moved
}

// Step moves the pose distance units along its heading, negative for backwards.
func (m Movement) Step(p *Pose, distance float64, grid maze.Maze, blockSize int) bool {
	dx, dy := p.Dir()
	return TryMove(p, dx*distance, dy*distance, grid, blockSize)
}

// TryMove applies the displacement only when the destination cell is open.
// There is no sliding along walls and no partial step.
func TryMove(p *Pose, dx, dy float64, grid maze.Maze, blockSize int) bool {
	nx, ny := p.Pos.X+dx, p.Pos.Y+dy
	if !grid.IsOpenAt(nx, ny, blockSize) {
		return false
	}
	p.Pos.X, p.Pos.Y = nx, ny
	return true
}

// Rotate is never blocked.
func Rotate(p *Pose, angle float64) {
	p.A += angle
}
