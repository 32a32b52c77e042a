package likelihood

import "math"

// Interval is one closed prior range [Lo, Hi].
type Interval struct {
	Lo float64
	Hi float64
}

// Bounds is a box prior: one interval per parameter, in theta order.
type Bounds []Interval

// Validate checks every interval has finite Lo < Hi.
func (b Bounds) Validate() error {
	for _, iv := range b {
		if !(iv.Lo < iv.Hi) || math.IsInf(iv.Lo, 0) || math.IsInf(iv.Hi, 0) ||
			math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
			return ErrBadBounds
		}
	}

	return nil
}

// LogPrior returns 0 when theta lies inside every interval and −Inf
// otherwise. Prior violations are values, not errors: every evaluation
// call site handles them inline. A dimension mismatch is a programmer
// error and reported as ErrDimensionMismatch.
func (b Bounds) LogPrior(theta []float64) (float64, error) {
	if len(theta) != len(b) {
		return 0, ErrDimensionMismatch
	}
	for i, v := range theta {
		if v < b[i].Lo || v > b[i].Hi || math.IsNaN(v) {
			return math.Inf(-1), nil
		}
	}

	return 0, nil
}

// Contains reports whether theta lies inside the box.
func (b Bounds) Contains(theta []float64) bool {
	lp, err := b.LogPrior(theta)

	return err == nil && !math.IsInf(lp, -1)
}

// Clip returns a copy of theta with every component forced into its
// interval, used when seeding walker start positions.
func (b Bounds) Clip(theta []float64) []float64 {
	out := make([]float64, len(theta))
	for i, v := range theta {
		if i < len(b) {
			v = math.Max(b[i].Lo, math.Min(b[i].Hi, v))
		}
		out[i] = v
	}

	return out
}
