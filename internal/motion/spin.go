package motion

import "github.com/Faultbox/cube-orbitals/internal/engine/scene"

// Spin is a fixed per-frame rotation increment, in radians, for each axis.
type Spin struct {
	X, Y, Z float64
}

// Apply adds one frame of rotation to t.
func (s Spin) Apply(t *scene.Transform) {
	t.Rotation.X += s.X
	t.Rotation.Y += s.Y
	t.Rotation.Z += s.Z
}
