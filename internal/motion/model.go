package motion

import "github.com/Faultbox/cube-orbitals/internal/engine/scene"

// Body ties a transform to the motion that drives it.
// Orbit is nil for objects that only spin in place.
type Body struct {
	Name      string
	Transform *scene.Transform
	Spin      Spin
	Orbit     *Orbit
}

// Model owns every moving body and advances them one frame at a time.
// It is not safe for concurrent use; the frame loop is its only caller.
type Model struct {
	bodies []*Body
	frame  uint64
}

// NewModel creates a model over the given bodies.
func NewModel(bodies ...*Body) *Model {
	return &Model{bodies: bodies}
}

// Add registers another body.
func (m *Model) Add(b *Body) {
	m.bodies = append(m.bodies, b)
}

// Bodies returns the managed bodies in registration order.
func (m *Model) Bodies() []*Body {
	return m.bodies
}

// Advance applies exactly one frame of rotation and translation to every
// body. Rotation is applied before translation.
func (m *Model) Advance() {
	for _, b := range m.bodies {
		b.Spin.Apply(b.Transform)
		if b.Orbit != nil {
			b.Orbit.Apply(b.Transform)
		}
	}
	m.frame++
}

// Frame returns how many times Advance has run.
func (m *Model) Frame() uint64 {
	return m.frame
}
