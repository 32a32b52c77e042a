// SPDX-License-Identifier: MIT
// Package response defines the LGPD parameter records and the smooth
// response curves they generate: μ(k,z), Σ(k,z), the decoherence rate
// Γ(a) and the multipole damping envelope.
//
// 🚀 What does response compute?
//
//	Pure functions from immutable parameter records to bounded, smooth
//	departures from standard gravity:
//	  • μ(k,z) — modified Newtonian potential, Φ → (1+μ)Φ
//	  • Σ(k,z) — lensing / anisotropic-stress modification
//	  • Γ(a)   — decoherence rate with a low-gravity onset around a*
//	  • D(ℓ)   — damping envelope exp(−ξ·ℓ(ℓ+1)/ℓd²) on anisotropy power
//
// ✨ Key guarantees:
//   - Identity limit: every curve vanishes when its amplitude parameter
//     is zero, so the modified spectrum reduces exactly to the baseline.
//   - Boundedness: curves saturate at extreme (k,z); no divergences.
//   - Γ(a) → 0 as a → 1 for a* ≪ 1: the present-day, strong-field limit
//     is standard gravity.
//   - ℓd is validated away from zero and ξ_damp away from negative values
//     (amplification is unphysical here); violations are sentinel errors,
//     never silent clamps.
//
// ⚙️ Usage:
//
//	tr, err := response.NewTransfer(
//		response.DefaultDecoherenceParams(),
//		response.CondensateParams{Mu0: 0.1, K0: 0.07, M: 2, Zt: 1.5, N: 3},
//		response.ElasticityParams{Sigma0: 0.1, K0: 0.1, M: 2, Zt: 1.5, N: 3},
//	)
//	if err != nil { ... }
//	env := tr.DampingEnvelope(1200) // multiplicative Dl factor at ℓ=1200
//
// All records are plain value types: create once per likelihood
// evaluation, never mutate.
package response
