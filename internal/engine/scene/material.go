package scene

import "github.com/Faultbox/cube-orbitals/pkg/math"

// Default glossy material parameters.
const (
	DefaultShininess = 30
	DefaultSpecular  = 0x111111
)

// PhongMaterial is a glossy surface shaded with ambient, diffuse and
// Blinn-Phong specular terms.
type PhongMaterial struct {
	Color     math.Color
	Specular  math.Color
	Shininess float32
}

// NewPhongMaterial creates a glossy material of the given color.
func NewPhongMaterial(color math.Color) *PhongMaterial {
	return &PhongMaterial{
		Color:     color,
		Specular:  math.ColorFromHex(DefaultSpecular),
		Shininess: DefaultShininess,
	}
}
