package motion

import "github.com/Faultbox/cube-orbitals/internal/engine/scene"

// Orbit bounces a position inside a box, one independent Bounce per axis.
type Orbit struct {
	X Bounce
	Y Bounce
	Z Bounce
}

// NewOrbit creates an orbit inside [-halfX, halfX] x [-halfY, halfY] x
// [-halfZ, halfZ] at the given speed. All axes start out decreasing.
func NewOrbit(halfX, halfY, halfZ, speed float64) *Orbit {
	return &Orbit{
		X: NewBounce(-halfX, halfX, speed),
		Y: NewBounce(-halfY, halfY, speed),
		Z: NewBounce(-halfZ, halfZ, speed),
	}
}

// Apply moves t by one frame. Axes are stepped x, z, y; they share no
// state so the order only matters for readability of traces.
func (o *Orbit) Apply(t *scene.Transform) {
	t.Position.X = o.X.Step(t.Position.X)
	t.Position.Z = o.Z.Step(t.Position.Z)
	t.Position.Y = o.Y.Step(t.Position.Y)
}

// Directions returns the current x, y, z directions.
func (o *Orbit) Directions() (x, y, z Direction) {
	return o.X.Dir, o.Y.Dir, o.Z.Dir
}
