package motion

// Bounce drives one coordinate back and forth between two bounds at a
// constant speed, producing a triangle wave.
//
// The bound check happens before the move: on the frame the coordinate is
// found at or past a bound, the direction flips and the coordinate stays
// put. Movement toward the other bound starts on the next frame. When Speed
// does not divide Upper-Lower evenly, the coordinate may pass a bound by
// less than one step before it turns around; it is never clamped back.
type Bounce struct {
	Lower float64
	Upper float64
	Speed float64
	Dir   Direction
}

// NewBounce creates a bounce between lower and upper that starts out
// heading toward lower.
func NewBounce(lower, upper, speed float64) Bounce {
	return Bounce{
		Lower: lower,
		Upper: upper,
		Speed: speed,
		Dir:   Decreasing,
	}
}

// Step advances the coordinate p by one frame and returns its new value.
func (b *Bounce) Step(p float64) float64 {
	next, _ := b.StepReport(p)
	return next
}

// StepReport is Step, also reporting whether the direction flipped.
func (b *Bounce) StepReport(p float64) (float64, bool) {
	switch b.Dir {
	case Increasing:
		if p >= b.Upper {
			b.Dir = Decreasing
			return p, true
		}
		return p + b.Speed, false
	default:
		if p <= b.Lower {
			b.Dir = Increasing
			return p, true
		}
		return p - b.Speed, false
	}
}
