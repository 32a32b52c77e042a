package cosmo

import "math"

// quadTol is the relative tolerance of the adaptive distance quadrature.
const quadTol = 1e-8

// maxQuadDepth caps the adaptive recursion; the 1/E integrands here are
// smooth, so the cap is never reached in practice.
const maxQuadDepth = 30

// simpsonAdaptive integrates f over [a,b] by adaptive Simpson's rule with
// Richardson-style error control. Returns 0 for degenerate intervals.
func simpsonAdaptive(f func(float64) float64, a, b, tol float64) float64 {
	if b <= a {
		return 0
	}

	fa, fb := f(a), f(b)
	m := 0.5 * (a + b)
	fm := f(m)
	whole := simpsonRule(a, b, fa, fm, fb)

	return simpsonStep(f, a, b, fa, fm, fb, whole, tol, maxQuadDepth)
}

// simpsonRule is the three-point Simpson estimate on [a,b].
func simpsonRule(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6.0 * (fa + 4.0*fm + fb)
}

func simpsonStep(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	m := 0.5 * (a + b)
	lm, rm := 0.5*(a+m), 0.5*(m+b)
	flm, frm := f(lm), f(rm)

	left := simpsonRule(a, m, fa, flm, fm)
	right := simpsonRule(m, b, fm, frm, fb)
	delta := left + right - whole

	// 15 = 2^4 − 1: Richardson factor for Simpson's rule.
	if depth <= 0 || math.Abs(delta) <= 15.0*tol*math.Max(1.0, math.Abs(left+right)) {
		return left + right + delta/15.0
	}

	half := 0.5 * tol

	return simpsonStep(f, a, m, fa, flm, fm, left, half, depth-1) +
		simpsonStep(f, m, b, fm, frm, fb, right, half, depth-1)
}
