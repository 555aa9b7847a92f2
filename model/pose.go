package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Pose is where the viewer stands and looks. A is the heading and FOV the
// horizontal field of view, both in radians.
type Pose struct {
	Pos geom.Vector2
	A   float64
	FOV float64
}

// Dir is the unit heading vector.
func (p Pose) Dir() (float64, float64) {
	return math.Cos(p.A), math.Sin(p.A)
}

// DistanceTo is the straight-line distance from the viewer to a point.
func (p Pose) DistanceTo(v geom.Vector2) float64 {
	return geom.Distance(p.Pos.X, p.Pos.Y, v.X, v.Y)
}
