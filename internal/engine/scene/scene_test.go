package scene

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/cube-orbitals/internal/engine/lighting"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

func TestNewCubeAttaches(t *testing.T) {
	s := New()
	large := NewCube(s, 2, 2, 2, math.ColorFromHex(0x22ffaa))
	small := NewCube(s, 1, 1, 1, math.ColorFromHex(0xaa22ff))

	meshes := s.Meshes()
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0] != large || meshes[1] != small {
		t.Error("meshes should be returned in attachment order")
	}
}

func TestNewCubeGeometryAndMaterial(t *testing.T) {
	s := New()
	cube := NewCube(s, 1, 2, 3, math.ColorFromHex(0xaa22ff))

	if got := cube.Geometry.Bounds.Size(); got != [3]float32{1, 2, 3} {
		t.Errorf("geometry size: got %v, want [1 2 3]", got)
	}
	if cube.Material.Color.Hex() != 0xaa22ff {
		t.Errorf("material color: got %06x, want aa22ff", cube.Material.Color.Hex())
	}
	if cube.Material.Shininess != DefaultShininess {
		t.Errorf("shininess: got %v, want %v", cube.Material.Shininess, DefaultShininess)
	}
	if cube.Material.Specular.Hex() != DefaultSpecular {
		t.Errorf("specular: got %06x, want %06x", cube.Material.Specular.Hex(), DefaultSpecular)
	}
	if !cube.Visible {
		t.Error("new cube should be visible")
	}
	if cube.Position != (Vector{}) || cube.Rotation != (Vector{}) {
		t.Error("new cube should start at the origin with no rotation")
	}
}

func TestAttachTwiceIsNoop(t *testing.T) {
	s := New()
	cube := NewCube(s, 1, 1, 1, math.White)
	s.Attach(cube)

	if len(s.Meshes()) != 1 {
		t.Errorf("expected 1 mesh after re-attach, got %d", len(s.Meshes()))
	}
}

func TestAddLight(t *testing.T) {
	s := New()
	l := lighting.NewDirectionalLight(math.White, 1)
	s.AddLight(l)

	if len(s.Lights()) != 1 || s.Lights()[0] != l {
		t.Errorf("expected the added light, got %v", s.Lights())
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{
		Position: Vector{X: 5, Y: -2, Z: 1},
		Rotation: Vector{Y: gomath.Pi / 2},
	}
	m := tr.Matrix()

	// Rotation is applied before translation.
	got := m.TransformPoint(math.Vec3{X: 1})
	want := math.Vec3{X: 5, Y: -2, Z: 0}
	if d := got.Sub(want).Length(); d > 1e-5 {
		t.Errorf("Matrix().TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformMatrixIdentity(t *testing.T) {
	var tr Transform
	if tr.Matrix() != math.Identity() {
		t.Error("zero transform should produce the identity matrix")
	}
}
