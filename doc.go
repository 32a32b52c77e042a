// Package lgpd is a phenomenological cosmology sandbox: it parameterizes
// smooth departures from ΛCDM (the LGPD model), modulates precomputed CMB
// power spectra, and fits the parameters against binned data with an
// affine-invariant ensemble MCMC.
//
// 🚀 What is lgpd?
//
//	A deterministic, pure-Go fitting pipeline that brings together:
//		• Parameter model: μ(k,z), Σ(k,z) response curves & decoherence damping
//		• Background: ΛCDM distances, growth D(a) with a μ(a) hook, fσ8
//		• Spectra: baseline C_ell loading, Dl↔Cl, phenomenological modulation
//		• Likelihoods: binned CMB bandpowers (diagonal or full covariance),
//		  BAO, SNe and growth terms, box priors with −∞ rejection
//		• Sampler: Goodman–Weare stretch-move ensemble MCMC, explicit seeding
//		• Diagnostics: split-R̂, autocorrelation time, effective sample size
//
// ✨ Why choose lgpd?
//
//   - Deterministic – explicit seeds, no global random state
//   - Loud failures – malformed data aborts with the offending path,
//     never a silent fallback
//   - Pure Go – no cgo, SQLite checkpoints via modernc.org/sqlite
//   - Linear control flow – loader → modulator → likelihood → sampler →
//     diagnostics, no feedback loops
//
// Under the hood, everything is organized per concern:
//
//	cosmo/       — ΛCDM background, distances & linear growth
//	response/    — LGPD parameter records & response curves
//	spectrum/    — baseline spectra, modulation & band binning
//	npz/         — NumPy .npy/.npz archive codec for spectra & chains
//	dataset/     — CSV observation loading with strict validation
//	likelihood/  — χ² accumulation, priors & log-posterior composition
//	mcmc/        — affine-invariant ensemble sampler & chain storage
//	chaindb/     — SQLite step-boundary checkpoints for resumable runs
//	diagnostics/ — convergence statistics & JSON reports
//	plc/         — explicit adapter boundary for the official Planck likelihood
//	cmd/lgpdfit/ — CLI: demo, fit, bin, diagnose
//
// The modified spectrum reduces to the baseline bit-for-bit when every
// modification amplitude is zero — the ΛCDM recovery contract exercised
// throughout the test suite.
//
//	go get github.com/lowgrav/lgpd
package lgpd
