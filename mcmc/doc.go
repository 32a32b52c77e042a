// SPDX-License-Identifier: MIT
// Package mcmc drives an affine-invariant ensemble MCMC (the
// Goodman–Weare stretch move) over a log-posterior, producing an
// append-only posterior chain with explicit, reproducible seeding.
//
// 🚀 Algorithm outline (stretch move):
//
//	For each step, every walker Xi in turn:
//	  1. draw a complementary walker Xj (j ≠ i) from the current ensemble
//	  2. draw z from g(z) ∝ 1/√z on [1/a, a]   (a = StretchA, default 2)
//	  3. propose Y = Xj + z·(Xi − Xj)
//	  4. accept with probability min(1, z^(d−1)·p(Y)/p(Xi))
//
//	The proposal distribution is affine-invariant: no tuning of per-axis
//	step sizes, which suits correlated posteriors like μ0–Σ0.
//
// ✨ Guarantees:
//   - Determinism: a fixed Seed yields a bit-identical chain; all
//     randomness flows through one explicitly threaded generator, never
//     package-global state.
//   - State machine: INITIALIZED → BURNING_IN → SAMPLING → COMPLETE, with
//     FAILED on any error; a failed run never emits a partial chain as if
//     final, and COMPLETE is terminal.
//   - Rejections (−Inf log-probability) are handled inline; errors from
//     the posterior abort the run.
//   - Cancellation is honored between ensemble steps via context.Context;
//     an optional Checkpointer receives every completed step so an
//     interrupted run can resume rather than restart.
//
// ⚙️ Usage:
//
//	s, err := mcmc.New(logPost, ndim, mcmc.DefaultOptions())
//	init := s.InitBall(theta0, bounds.Clip)
//	chain, err := s.Run(ctx, init)
//	thetas, logp, err := chain.Flatten(opts.Burn)
//
// Complexity per step: O(Walkers · cost(logProb)); memory O(Walkers ·
// Steps · dim) for the stored chain.
package mcmc
