// Package caster walks rays through the maze grid in fixed linear steps and
// reports the first wall each one strikes.
package caster

import (
	"image/color"
	"math"

	"knightmaze/maze"
	"knightmaze/model"
)

const (
	DefaultStepFraction = 0.01
	DefaultMaxCells     = 64
)

// Plotter receives the points a debug ray passes through.
type Plotter interface {
	SetPixel(x, y int, c color.RGBA)
}

// Intersect is the result of one cast.
type Intersect struct {
	// Distance is measured along the view direction, so walls do not bulge
	// at the screen edges. Callers comparing depths must use the same measure.
	Distance float64
	// Impact is the cell struck, maze.Empty when the ray left the grid or ran
	// out of range.
	Impact rune
	// Offset is the position across the struck face in [0, 1).
	Offset float64
}

// Hit reports whether the ray stopped on a wall.
func (i Intersect) Hit() bool {
	return i.Impact != maze.Empty
}

// TextureX scales Offset to a texture column of a texture width texels wide.
func (i Intersect) TextureX(width int) int {
	if width <= 0 {
		return 0
	}
	tx := int(i.Offset * float64(width))
	if tx >= width {
		tx = width - 1
	}
	if tx < 0 {
		tx = 0
	}
	return tx
}

type Caster struct {
	// StepFraction is the stride between test points as a fraction of the block size.
	StepFraction float64
	// MaxCells caps how far a ray travels, in blocks.
	MaxCells   float64
	DebugColor color.RGBA
}

func New() *Caster {
	return &Caster{
		StepFraction: DefaultStepFraction,
		MaxCells:     DefaultMaxCells,
		DebugColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Cast advances a test point from the pose position along angle until it
// enters a non-empty cell, leaves the grid, or exceeds the range cap. A ray
// starting outside the grid travels until it enters; one that can never
// enter stops after the first step. When plot is not nil every test point
// is drawn into it.
func (c *Caster) Cast(m maze.Maze, pose model.Pose, angle float64, blockSize int, plot Plotter) Intersect {
	bs := float64(blockSize)
	if bs <= 0 {
		return Intersect{Impact: maze.Empty}
	}

	stepFraction := c.StepFraction
	if stepFraction <= 0 {
		stepFraction = DefaultStepFraction
	}
	maxCells := c.MaxCells
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}

	step := stepFraction * bs
	maxDist := maxCells * bs
	correction := math.Cos(angle - pose.A)

	ox, oy := pose.Pos.X, pose.Pos.Y
	cos, sin := math.Cos(angle), math.Sin(angle)

	b := bounds{w: float64(m.Width()) * bs, h: float64(m.Height()) * bs}
	entry, ok := b.entry(ox, oy, cos, sin)
	if !ok || entry > maxDist {
		return Intersect{Distance: step * correction, Impact: maze.Empty}
	}
	entered := b.contains(ox, oy)

	prevI, prevJ := cellIndex(ox, bs), cellIndex(oy, bs)

	for n := 1; ; n++ {
		d := float64(n) * step
		if d > maxDist {
			return Intersect{Distance: maxDist * correction, Impact: maze.Empty}
		}

		x, y := ox+d*cos, oy+d*sin
		if plot != nil {
			plot.SetPixel(int(x), int(y), c.DebugColor)
		}

		i, j := cellIndex(x, bs), cellIndex(y, bs)
		if !b.contains(x, y) {
			// a ray that only grazes a corner may step over the grid entirely
			if entered || d > entry+step {
				return Intersect{Distance: d * correction, Impact: maze.Empty}
			}
			prevI, prevJ = i, j
			continue
		}
		entered = true

		cell, _ := m.Cell(i, j)
		if cell != maze.Empty {
			impact, offset := resolveHit(m, ox, oy, cos, sin, i, j, prevI, prevJ, bs, cell)
			return Intersect{
				Distance: d * correction,
				Impact:   impact,
				Offset:   offset,
			}
		}

		prevI, prevJ = i, j
	}
}

// bounds is the grid's bounding box in world units, [0, w) x [0, h).
type bounds struct {
	w, h float64
}

func (b bounds) contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// entry returns how far along the ray the box starts, 0 when the origin is
// already inside. ok is false when the ray misses the box.
func (b bounds) entry(ox, oy, cos, sin float64) (float64, bool) {
	near, far := 0.0, math.Inf(1)
	for _, axis := range [2]struct{ o, dir, size float64 }{
		{ox, cos, b.w},
		{oy, sin, b.h},
	} {
		if math.Abs(axis.dir) < 1e-12 {
			if axis.o < 0 || axis.o >= axis.size {
				return 0, false
			}
			continue
		}
		t0, t1 := -axis.o/axis.dir, (axis.size-axis.o)/axis.dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		near = math.Max(near, t0)
		far = math.Min(far, t1)
	}
	return near, near < far
}

func cellIndex(v, bs float64) int {
	return int(math.Floor(v / bs))
}

// resolveHit finds the face the ray entered a wall through and where along
// that face it crossed. When the last step clipped a cell corner the two
// boundary crossings are replayed in order, which can move the impact to the
// corner cell. The crossing point is solved from the ray equation so
// neighbouring rays give continuous offsets whatever the step length.
func resolveHit(m maze.Maze, ox, oy, cos, sin float64, i, j, prevI, prevJ int, bs float64, cell rune) (rune, float64) {
	crossedX := i != prevI
	crossedY := j != prevJ

	var tx, ty float64
	if crossedX {
		tx = (float64(max(i, prevI))*bs - ox) / cos
	}
	if crossedY {
		ty = (float64(max(j, prevJ))*bs - oy) / sin
	}

	if crossedX && crossedY {
		if tx <= ty {
			if corner, _ := m.Cell(i, prevJ); corner != maze.Empty {
				return corner, frac((oy + tx*sin) / bs)
			}
			crossedX = false
		} else {
			if corner, _ := m.Cell(prevI, j); corner != maze.Empty {
				return corner, frac((ox + ty*cos) / bs)
			}
			crossedY = false
		}
	}

	switch {
	case crossedX:
		return cell, frac((oy + tx*sin) / bs)
	case crossedY:
		return cell, frac((ox + ty*cos) / bs)
	}

	// the ray started inside the wall
	if math.Abs(cos) >= math.Abs(sin) {
		return cell, frac(oy / bs)
	}
	return cell, frac(ox / bs)
}

func frac(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}
