package camera

import (
	"testing"

	"github.com/Faultbox/cube-orbitals/pkg/math"
)

func TestAspectRatio(t *testing.T) {
	if got := AspectRatio(1280, 720); got < 1.777 || got > 1.778 {
		t.Errorf("AspectRatio(1280, 720) = %v, want ~1.7778", got)
	}
	if got := AspectRatio(800, 800); got != 1 {
		t.Errorf("AspectRatio(800, 800) = %v, want 1", got)
	}
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 1000)
	c.Position = math.Vec3{X: 0, Y: 0, Z: 7}

	// The world origin ends up 7 units in front of the camera.
	got := c.ViewMatrix().TransformPoint(math.Vec3{})
	if got.X != 0 || got.Y != 0 || got.Z < -7.001 || got.Z > -6.999 {
		t.Errorf("origin in view space: got %v, want (0, 0, -7)", got)
	}
}

func TestOriginProjectsToScreenCenter(t *testing.T) {
	c := NewPerspectiveCamera(75, 16.0/9.0, 0.1, 1000)
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	ndc := c.ViewProjection().TransformPoint(math.Vec3{})
	if ndc.X != 0 || ndc.Y != 0 {
		t.Errorf("origin in NDC: got %v, want x=y=0", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("origin depth %v outside clip range", ndc.Z)
	}
}

func TestPointsBehindFarPlaneClip(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 10)
	c.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	ndc := c.ViewProjection().TransformPoint(math.Vec3{X: 0, Y: 0, Z: -20})
	if ndc.Z <= 1 {
		t.Errorf("point past far plane should have depth > 1, got %v", ndc.Z)
	}
}
