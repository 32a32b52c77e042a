package cosmo

import "math"

// Growth-integration policy.
const (
	// growthAInit is the starting scale factor deep in the matter era,
	// where the growing mode is D ∝ a.
	growthAInit = 1e-4

	// growthStep is the target RK2 step in a.
	growthStep = 1e-3

	// growthMinSteps is the minimum number of RK2 steps per grid interval.
	growthMinSteps = 5
)

// GrowthModel integrates the linear growth factor
//
//	D'' + [(3/a) + dlnH/dlna] D' = 1.5·Ωm(a)·(1+μ(a))·D/a²
//
// with a pluggable μ(a) modification of the effective gravitational
// coupling. A nil MuOfA means standard gravity (μ ≡ 0).
type GrowthModel struct {
	Cosmo LCDM
	MuOfA func(a float64) float64
	W     float64 // equation of state; zero value is interpreted as w=−1
}

// w returns the configured equation of state, defaulting to −1.
func (g GrowthModel) w() float64 {
	if g.W == 0 {
		return -1
	}

	return g.W
}

// mu evaluates the μ(a) hook, treating nil as standard gravity.
func (g GrowthModel) mu(a float64) float64 {
	if g.MuOfA == nil {
		return 0
	}

	return g.MuOfA(a)
}

// OmegaMOfA returns Ωm(a) = Ωm·a⁻³/E²(a).
func (g GrowthModel) OmegaMOfA(a float64) float64 {
	z := 1.0/a - 1.0
	e := g.Cosmo.E(z, g.w())

	return g.Cosmo.OmegaM / (a * a * a * e * e)
}

// dlnHdlna returns dlnH/dlna = −(1 + 3·w·ΩDE(a))/2.
func (g GrowthModel) dlnHdlna(a float64) float64 {
	z := 1.0/a - 1.0
	e := g.Cosmo.E(z, g.w())
	odeA := g.Cosmo.OmegaDE() * math.Pow(a, -3.0*(1.0+g.w())) / (e * e)

	return -0.5 * (1.0 + 3.0*g.w()*odeA)
}

// deriv returns (D', D'') at scale factor a for state (D, D'). Both terms
// of the friction coefficient carry 1/a: in the matter era the growing
// mode D = a solves the equation exactly.
func (g GrowthModel) deriv(a, d, dp float64) (float64, float64) {
	dpp := -((3.0+g.dlnHdlna(a))/a)*dp + 1.5*g.OmegaMOfA(a)*(1.0+g.mu(a))*d/(a*a)

	return dp, dpp
}

// advance integrates the state from a0 to a1 with midpoint (RK2) steps.
func (g GrowthModel) advance(a0, a1, d, dp float64) (float64, float64) {
	steps := int((a1 - a0) / growthStep)
	if steps < growthMinSteps {
		steps = growthMinSteps
	}
	da := (a1 - a0) / float64(steps)

	a := a0
	for i := 0; i < steps; i++ {
		k1d, k1p := g.deriv(a, d, dp)
		midD, midP := d+0.5*da*k1d, dp+0.5*da*k1p
		k2d, k2p := g.deriv(a+0.5*da, midD, midP)
		d += da * k2d
		dp += da * k2p
		a += da
	}

	return d, dp
}

// Solve integrates D(a) on a strictly increasing grid in (0, 1] and returns
// the growth factor normalized so that D(a=1) = 1.
//
// Errors:
//   - ErrEmptyGrid          — grid is empty.
//   - ErrGridNotIncreasing  — grid is not strictly increasing.
//   - ErrGridOutOfRange     — a grid point lies outside (0, 1].
func (g GrowthModel) Solve(aGrid []float64) ([]float64, error) {
	if err := validateGrid(aGrid); err != nil {
		return nil, err
	}

	// Growing-mode initial conditions deep in the matter era: D = a, D' = 1.
	aStart := math.Max(aGrid[0], growthAInit)
	d, dp := aStart, 1.0

	out := make([]float64, len(aGrid))
	a := aStart
	for i, ai := range aGrid {
		if ai > a {
			d, dp = g.advance(a, ai, d, dp)
			a = ai
		}
		out[i] = d
	}

	// Normalize D(1)=1, integrating the remaining stretch if the grid
	// stops short of today.
	dToday, _ := d, dp
	if a < 1.0 {
		dToday, _ = g.advance(a, 1.0, d, dp)
	}
	for i := range out {
		out[i] /= dToday
	}

	return out, nil
}

// FSigma8 returns fσ8(z) = f(z)·σ8·D(z) with f = dlnD/dlna = a·D'/D and D
// normalized to D(0 redshift) = 1, for comparison against growth-rate data.
func (g GrowthModel) FSigma8(z, sigma8 float64) (float64, error) {
	if z < 0 {
		return 0, ErrGridOutOfRange
	}

	a := 1.0 / (1.0 + z)
	d, dp := g.advance(growthAInit, a, growthAInit, 1.0)

	dToday, _ := d, dp
	if a < 1.0 {
		dToday, _ = g.advance(a, 1.0, d, dp)
	}

	f := a * dp / d

	return f * sigma8 * d / dToday, nil
}

func validateGrid(aGrid []float64) error {
	if len(aGrid) == 0 {
		return ErrEmptyGrid
	}
	for i, a := range aGrid {
		if a <= 0 || a > 1 {
			return ErrGridOutOfRange
		}
		if i > 0 && a <= aGrid[i-1] {
			return ErrGridNotIncreasing
		}
	}

	return nil
}
