package likelihood

import "math"

// interp linearly interpolates (xs, ys) at x, returning NaN outside the
// grid so callers can mask uncovered points. xs must be increasing, which
// the spectrum and loader invariants already guarantee.
func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || x < xs[0] || x > xs[n-1] {
		return math.NaN()
	}

	// Binary search for the right edge of the bracketing interval.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	if xs[lo] == x {
		return ys[lo]
	}

	t := (x - xs[lo]) / (xs[hi] - xs[lo])

	return ys[lo] + t*(ys[hi]-ys[lo])
}
