// SPDX-License-Identifier: MIT
package response

import "math"

// Damping-envelope policy.
const (
	// DefaultEllDamp is the damping multipole ℓd in D(ℓ)=exp(−ξ·ℓ(ℓ+1)/ℓd²).
	DefaultEllDamp = 1500.0

	// MinEllDamp bounds ℓd away from zero; ℓd² is a denominator.
	MinEllDamp = 1.0
)

// Reference points where scalar response amplitudes are quoted.
const (
	// lensingK / lensingZ: Σ is evaluated at k=0.1 h/Mpc, z=2 for the
	// effective lensing amplitude A_L ≈ 1+Σ.
	lensingK = 0.1
	lensingZ = 2.0

	// largeScaleK: μ is quoted on large scales, k=0.01 h/Mpc at z=0.
	largeScaleK = 0.01
)

// Transfer collects the LGPD effects that feed into observables: the
// decoherence damping envelope, an A_L-like lensing amplitude from Σ, and
// a large-scale μ amplitude. It is an immutable aggregate; build one per
// parameter point via NewTransfer.
type Transfer struct {
	dec     DecoherenceParams
	mu      MuModel
	elas    ElasticityParams
	ellDamp float64
}

// TransferOption adjusts optional Transfer policy.
type TransferOption func(*Transfer)

// WithEllDamp overrides the damping multipole ℓd. Values below MinEllDamp
// are rejected by NewTransfer with ErrDampingScaleTooSmall.
func WithEllDamp(ellDamp float64) TransferOption {
	return func(t *Transfer) { t.ellDamp = ellDamp }
}

// NewTransfer validates and assembles a Transfer.
//
// Errors:
//   - ErrNegativeDamping       — dec.XiDamp < 0.
//   - ErrDampingScaleTooSmall  — ℓd < MinEllDamp (via WithEllDamp).
//   - ErrNilMuModel            — mu is nil.
func NewTransfer(dec DecoherenceParams, mu MuModel, elas ElasticityParams, opts ...TransferOption) (Transfer, error) {
	t := Transfer{dec: dec, mu: mu, elas: elas, ellDamp: DefaultEllDamp}
	for _, opt := range opts {
		opt(&t)
	}

	if mu == nil {
		return Transfer{}, ErrNilMuModel
	}
	if dec.XiDamp < 0 {
		return Transfer{}, ErrNegativeDamping
	}
	if t.ellDamp < MinEllDamp {
		return Transfer{}, ErrDampingScaleTooSmall
	}

	return t, nil
}

// Decoherence returns the decoherence parameter record.
func (t Transfer) Decoherence() DecoherenceParams { return t.dec }

// DampingEnvelope returns D(ℓ) = exp(−ξ_damp·ℓ(ℓ+1)/ℓd²), the multiplicative
// anisotropy-damping factor at multipole ℓ. D ≡ 1 when ξ_damp = 0 and
// 0 < D ≤ 1 otherwise.
func (t Transfer) DampingEnvelope(ell float64) float64 {
	return math.Exp(-t.dec.XiDamp * ell * (ell + 1.0) / (t.ellDamp * t.ellDamp))
}

// LensingAmp returns the effective lensing amplitude A_L ≈ 1 + Σ(k,z) at
// the reference point (k=0.1 h/Mpc, z=2). A_L = 1 exactly when Sigma0 = 0.
func (t Transfer) LensingAmp() float64 {
	return 1.0 + t.elas.Sigma(lensingK, lensingZ)
}

// MuTodayLargeScales quotes μ on large scales (k=0.01 h/Mpc) at z=0 as a
// rough amplitude proxy for the acoustic-contrast boost.
func (t Transfer) MuTodayLargeScales() float64 {
	return t.mu.Mu(largeScaleK, 0)
}
