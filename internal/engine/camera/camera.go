// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// PerspectiveCamera is a pinhole camera that looks down -Z from its position.
type PerspectiveCamera struct {
	// Vertical field of view in degrees
	FOV float32

	// Viewport width / height, fixed at startup
	Aspect float32

	// Clipping planes
	Near float32
	Far  float32

	Position math.Vec3
}

// NewPerspectiveCamera creates a camera at the origin.
// fov is in degrees, aspect is width/height.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// AspectRatio computes width/height for a viewport.
func AspectRatio(width, height int) float32 {
	return float32(width) / float32(height)
}

// ProjectionMatrix returns the perspective projection for this camera.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	fovY := float32(float64(c.FOV) * gomath.Pi / 180.0)
	return math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the view matrix for this camera.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	forward := math.Vec3{X: 0, Y: 0, Z: -1}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, c.Position.Add(forward), up)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
