package scene

import (
	"github.com/Faultbox/cube-orbitals/internal/engine/model"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// NewCube builds a box of the given extents with a glossy material, attaches
// it to s and returns it. Extents are passed through unchecked.
func NewCube(s *Scene, width, height, depth float32, color math.Color) *Mesh {
	geometry := model.Box(width, height, depth)
	material := NewPhongMaterial(color)

	cube := NewMesh(geometry, material)
	s.Attach(cube)

	return cube
}
