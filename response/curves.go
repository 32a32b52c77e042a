// SPDX-License-Identifier: MIT
package response

import "math"

// SOfZ is the smooth redshift transition shared by the μ and Σ sectors:
//
//	S(z) = 1 / (1 + ((1+z)/(1+zt))^n)
//
// S → 1 for z ≪ zt and S → 0 for z ≫ zt; it is monotone in z for n > 0 and
// bounded in (0, 1] for all finite inputs.
func SOfZ(z, zt, n float64) float64 {
	return 1.0 / (1.0 + math.Pow((1.0+z)/(1.0+zt), n))
}

// kScale is the shared small-scale window 1/(1+(k/k0)^−m): → 1 for k ≫ k0,
// → 0 for k ≪ k0. k ≤ 0 is treated as fully suppressed.
func kScale(k, k0, m float64) float64 {
	if k <= 0 || k0 <= 0 {
		return 0
	}

	return 1.0 / (1.0 + math.Pow(k/k0, -m))
}

// MuModel yields the growth response μ(k,z). Both CondensateParams and
// BinnedCondensateParams satisfy it; Transfer accepts either.
type MuModel interface {
	// Mu returns μ(k,z) with k in h/Mpc.
	Mu(k, z float64) float64
}

// Mu returns μ(k,z) = μ0 · kScale(k) · S(z): the scale- and
// redshift-dependent modification of the Newtonian potential.
func (p CondensateParams) Mu(k, z float64) float64 {
	return p.Mu0 * kScale(k, p.K0, p.M) * SOfZ(z, p.Zt, p.N)
}

// Mu returns the two-bin μ(k,z): piecewise-constant amplitude in redshift
// with the usual k-scaling.
func (p BinnedCondensateParams) Mu(k, z float64) float64 {
	amp := p.MuHigh
	if z <= p.ZSplit {
		amp = p.MuLow
	}

	return amp * kScale(k, p.K0, p.M)
}

// MuOfA maps scale factor a to the binned amplitude μ(a), for growth-only
// usage where no k-dependence is wanted. a is floored at minScaleFactor to
// keep z = 1/a − 1 finite.
func (p BinnedCondensateParams) MuOfA(a float64) float64 {
	z := 1.0/math.Max(a, minScaleFactor) - 1.0
	if z <= p.ZSplit {
		return p.MuLow
	}

	return p.MuHigh
}

// minScaleFactor bounds 1/a when converting a → z.
const minScaleFactor = 1e-8

// Sigma returns Σ(k,z) = Σ0 · kScale(k) · S(z): the lensing /
// anisotropic-stress response.
func (p ElasticityParams) Sigma(k, z float64) float64 {
	return p.Sigma0 * kScale(k, p.K0, p.M) * SOfZ(z, p.Zt, p.N)
}

// CoherenceLength returns ℓc(z) = ℓc0 · (1+z)^−ν · S(z) in Mpc/h.
func (p ThreadbareParams) CoherenceLength(z float64) float64 {
	return p.Lc0 * math.Pow(1.0+z, -p.Nu) * SOfZ(z, p.Zt, p.N)
}

// Gamma returns the decoherence rate Γ(a) = Γ0 · (a*²/(a²+a*²))^p in s⁻¹,
// with a low-gravity trigger around AStar. For AStar ≪ 1 the rate vanishes
// toward a → 1: the present-day limit is standard gravity.
func (p DecoherenceParams) Gamma(a float64) float64 {
	gamma0 := math.Pow(10.0, p.Log10Gamma0)
	a2 := p.AStar * p.AStar

	return gamma0 * math.Pow(a2/(a*a+a2), p.P)
}
