// Package motion implements the per-frame motion model: unconditional
// rotation accumulation and a bounded bounce along each position axis.
package motion

// Direction is the travel direction along one axis.
type Direction int

const (
	// Decreasing moves the coordinate toward the lower bound.
	// It is the zero value, so new axes start out heading down.
	Decreasing Direction = iota
	// Increasing moves the coordinate toward the upper bound.
	Increasing
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Increasing {
		return Decreasing
	}
	return Increasing
}

func (d Direction) String() string {
	switch d {
	case Decreasing:
		return "decreasing"
	case Increasing:
		return "increasing"
	default:
		return "unknown"
	}
}
