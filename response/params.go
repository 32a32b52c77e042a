// SPDX-License-Identifier: MIT
// This file defines the immutable LGPD parameter records and their
// documented defaults. Records are plain value types: construct once per
// likelihood evaluation from a sampler-proposed point and never mutate.

package response

// Defaults — single source of truth for zero-configuration behavior.
// These constants MUST match the Default*Params constructors below.
const (
	// DefaultLog10Gamma0 is the decoherence-rate normalization, log10(Γ0/s⁻¹).
	DefaultLog10Gamma0 = -18.0

	// DefaultAStar is the critical scale factor controlling low-gravity onset.
	DefaultAStar = 1.0

	// DefaultOnsetSteepness is the steepness exponent p of the Γ(a) transition.
	DefaultOnsetSteepness = 2.0

	// DefaultTemp is the fixed-point blackbody temperature in Kelvin.
	DefaultTemp = 2.725

	// DefaultK0 is the transition scale k0 in h/Mpc shared by μ and Σ.
	DefaultK0 = 0.05

	// DefaultScaleSlope is the scale-slope exponent m shared by μ and Σ.
	DefaultScaleSlope = 2.0

	// DefaultZt is the transition redshift shared by μ and Σ.
	DefaultZt = 1.0

	// DefaultZSteepness is the redshift-steepness exponent n shared by μ and Σ.
	DefaultZSteepness = 2.0

	// DefaultCoherenceLength is the present-day coherence length ℓc0 in Mpc/h.
	DefaultCoherenceLength = 300.0
)

// DecoherenceParams fixes the photonic decoherence sector.
//
// Fields:
//   - Log10Gamma0 — normalization log10(Γ0/s⁻¹) of the decoherence rate.
//   - AStar       — scale-factor-like onset of the low-gravity regime.
//   - P           — steepness of the low-gravity transition.
//   - Temp        — fixed-point blackbody temperature (Kelvin, ~2.725).
//   - XiDamp      — dimensionless anisotropy-damping amplitude (≥ 0).
type DecoherenceParams struct {
	Log10Gamma0 float64
	AStar       float64
	P           float64
	Temp        float64
	XiDamp      float64
}

// DefaultDecoherenceParams returns the documented defaults with zero damping.
func DefaultDecoherenceParams() DecoherenceParams {
	return DecoherenceParams{
		Log10Gamma0: DefaultLog10Gamma0,
		AStar:       DefaultAStar,
		P:           DefaultOnsetSteepness,
		Temp:        DefaultTemp,
		XiDamp:      0,
	}
}

// CondensateParams parameterizes μ(k,z), the modification of the Newtonian
// potential Φ → (1+μ)Φ.
//
// Fields:
//   - Mu0 — amplitude today; μ vanishes identically when Mu0 = 0.
//   - K0  — transition scale [h/Mpc].
//   - M   — scale-slope exponent.
//   - Zt  — transition redshift.
//   - N   — redshift steepness.
type CondensateParams struct {
	Mu0 float64
	K0  float64
	M   float64
	Zt  float64
	N   float64
}

// DefaultCondensateParams returns the documented defaults with zero amplitude.
func DefaultCondensateParams() CondensateParams {
	return CondensateParams{Mu0: 0, K0: DefaultK0, M: DefaultScaleSlope, Zt: DefaultZt, N: DefaultZSteepness}
}

// BinnedCondensateParams is the two-bin redshift parameterization of μ(k,z):
//
//	μ(k,z) = μ_low  for z ≤ ZSplit
//	       = μ_high for z > ZSplit
//
// with the same k-scaling as CondensateParams. Intended for redshift-trend
// testing, not precision fits.
type BinnedCondensateParams struct {
	MuLow  float64
	MuHigh float64
	ZSplit float64
	K0     float64
	M      float64
}

// ElasticityParams parameterizes Σ(k,z), the lensing / anisotropic-stress
// modification. Field meanings mirror CondensateParams with Sigma0 as the
// present-day amplitude.
type ElasticityParams struct {
	Sigma0 float64
	K0     float64
	M      float64
	Zt     float64
	N      float64
}

// DefaultElasticityParams returns the documented defaults with zero amplitude.
func DefaultElasticityParams() ElasticityParams {
	return ElasticityParams{Sigma0: 0, K0: DefaultK0, M: DefaultScaleSlope, Zt: DefaultZt, N: DefaultZSteepness}
}

// ThreadbareParams fixes the finite coherence length ℓc(z) controlling the
// large-scale response.
//
// Fields:
//   - Lc0 — present-day coherence length [Mpc/h].
//   - Nu  — redshift-decay exponent.
//   - Zt  — transition redshift.
//   - N   — redshift steepness.
type ThreadbareParams struct {
	Lc0 float64
	Nu  float64
	Zt  float64
	N   float64
}

// DefaultThreadbareParams returns the documented defaults.
func DefaultThreadbareParams() ThreadbareParams {
	return ThreadbareParams{Lc0: DefaultCoherenceLength, Nu: 1, Zt: DefaultZt, N: DefaultZSteepness}
}
