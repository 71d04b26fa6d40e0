// Package lighting provides light sources for 3D rendering.
package lighting

import "github.com/Faultbox/cube-orbitals/pkg/math"

// DirectionalLight shines from Position toward Target with parallel rays.
type DirectionalLight struct {
	Color     math.Color
	Intensity float32
	Position  math.Vec3
	Target    math.Vec3
}

// NewDirectionalLight creates a light aimed at the origin.
func NewDirectionalLight(color math.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
		Position:  math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// Direction returns the normalized vector pointing from the target toward
// the light, which is what the shading equation dots against normals.
func (l *DirectionalLight) Direction() math.Vec3 {
	return l.Position.Sub(l.Target).Normalize()
}

// Radiance returns the light color scaled by its intensity.
func (l *DirectionalLight) Radiance() math.Color {
	return l.Color.Scale(l.Intensity)
}
