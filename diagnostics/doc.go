// Package diagnostics judges whether a flattened posterior chain can be
// trusted: split-chain convergence statistics, autocorrelation times,
// effective sample sizes, and a serializable summary report.
//
// 🚀 What & why
//
//   - SplitRHat compares the two halves of a chain per parameter. Values
//     near 1 mean both halves explore the same distribution; values above
//     DefaultRHatThreshold flag an unconverged fit.
//   - AutocorrTime estimates how many steps separate effectively
//     independent samples, and ESS divides it out of the raw count.
//   - BuildReport bundles the statistics with log-probability summaries
//     into a Report that marshals to JSON for run directories.
//
// ✨ Notes
//
//   - A failed convergence check is reported, never fatal: the numbers
//     are still meaningful and the caller decides what to do.
//   - Statistics need a minimum chain length; too-short inputs return
//     ErrTooFewSamples rather than noise.
package diagnostics
