package scene

import (
	"github.com/Faultbox/cube-orbitals/internal/engine/model"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// Vector is a double-precision 3D value used for object transforms.
// Motion accumulates here every frame, so it stays in float64 and is only
// narrowed when the model matrix is built.
type Vector struct {
	X, Y, Z float64
}

// Transform holds an object's placement in the scene.
// Rotation is Euler angles in radians, applied X then Y then Z.
type Transform struct {
	Position Vector
	Rotation Vector
}

// Matrix returns translate * rotate for this transform.
func (t *Transform) Matrix() math.Mat4 {
	return math.Translate(
		float32(t.Position.X), float32(t.Position.Y), float32(t.Position.Z),
	).Mul(math.EulerXYZ(
		float32(t.Rotation.X), float32(t.Rotation.Y), float32(t.Rotation.Z),
	))
}

// Mesh is a renderable object: geometry, material and a mutable transform.
type Mesh struct {
	Name     string
	Geometry *model.Mesh
	Material *PhongMaterial
	Visible  bool

	Transform
}

// NewMesh combines geometry and material into a visible mesh at the origin.
func NewMesh(geometry *model.Mesh, material *PhongMaterial) *Mesh {
	return &Mesh{
		Geometry: geometry,
		Material: material,
		Visible:  true,
	}
}
