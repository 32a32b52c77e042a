// Package spectrum holds CMB power spectra and applies the phenomenological
// LGPD modulation to a fixed baseline.
//
// 🚀 What does spectrum do?
//
//	  • Spectrum — an ℓ-ordered set of C_ell channels (TT/TE/EE, optional
//	    BB and PP), loaded from an .npz archive or generated synthetically
//	  • Dl↔Cl conversion, Dl = ℓ(ℓ+1)C_ell/2π
//	  • Modulate — damping envelope on every channel, an A_L-like lensing
//	    rescale of TT/EE above ℓ=300, and a tanh-windowed μ contrast boost,
//	    all multiplicative in Dl space
//	  • BinChannel — fixed-step band averaging for synthetic bandpowers
//
// ✨ Contracts:
//   - Modulate preserves the ℓ grid and channel set exactly.
//   - Identity parameters (all amplitudes zero) reproduce the baseline to
//     within 1e-12 relative tolerance.
//   - A NaN or Inf anywhere in the output is a hard ErrNaNInf — it signals
//     a bug or out-of-prior input and is never clamped away.
//
// The modulation is a projection approximation for model exploration, not
// a line-of-sight Boltzmann integral; precision claims stop at χ² trends.
package spectrum
