// Package scene provides the scene graph drawn each frame: meshes with
// mutable transforms plus the lights that shade them.
package scene

import (
	"github.com/Faultbox/cube-orbitals/internal/engine/lighting"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// Scene is the set of objects and lights composed for drawing.
type Scene struct {
	Background math.Color

	meshes []*Mesh
	lights []*lighting.DirectionalLight
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{}
}

// Attach adds a mesh to the set drawn each frame.
// Attaching the same mesh twice is a no-op.
func (s *Scene) Attach(m *Mesh) {
	for _, existing := range s.meshes {
		if existing == m {
			return
		}
	}
	s.meshes = append(s.meshes, m)
}

// AddLight adds a light to the scene.
func (s *Scene) AddLight(l *lighting.DirectionalLight) {
	s.lights = append(s.lights, l)
}

// Meshes returns the attached meshes in attachment order.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Lights returns the scene lights.
func (s *Scene) Lights() []*lighting.DirectionalLight {
	return s.lights
}
