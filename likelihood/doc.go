// Package likelihood turns modified spectra and auxiliary observables into
// a single scalar log-likelihood, and composes it with box priors into the
// log-posterior the sampler explores.
//
// 🚀 Structure:
//
//	  • Accumulator — independent, additively-combinable χ² parts, one per
//	    dataset (CMB bands per channel, BAO, SNe, growth). A dataset that
//	    is never added contributes exactly zero.
//	  • Bandpower terms — model Dl linearly interpolated onto the data ℓ
//	    grid; bands outside the model grid are masked out; diagonal
//	    Gaussian or full covariance (Cholesky) error models.
//	  • Series terms — model callbacks evaluated at the data redshifts.
//	  • Bounds — box priors; LogPrior is 0 inside and −Inf outside, and is
//	    always evaluated before any spectrum work.
//	  • NewLogPosterior — prior + likelihood with −Inf short-circuit.
//
// ✨ Failure policy (no silent fallbacks):
//   - prior violations are values (−Inf), never errors — every caller
//     handles them inline;
//   - malformed data (length mismatch, σ ≤ 0, non-positive-definite
//     covariance) is a hard error that aborts the run;
//   - the total log-likelihood is −χ²/2 and must be finite for every
//     in-prior point.
package likelihood
