package component

import (
	"github.com/jakecoffman/cp"
	"golang.org/x/image/math/f64"
)

// Transform stores position, scale, and rotation in world space.
// Z is the draw depth consumed by the z-order sequencer.
type Transform struct {
	X, Y, Z  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Translation returns the full 3D translation.
func (t *Transform) Translation() f64.Vec3 {
	return f64.Vec3{t.X, t.Y, t.Z}
}

// SetTranslation overwrites the full 3D translation.
func (t *Transform) SetTranslation(v f64.Vec3) {
	t.X, t.Y, t.Z = v[0], v[1], v[2]
}

// Planar returns the (x, y) translation as a physics vector, used for
// the anchor engine's proximity math.
func (t *Transform) Planar() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
