// SPDX-License-Identifier: MIT
// Package mcmc: sentinel error set, matched via errors.Is.

package mcmc

import "errors"

var (
	// ErrTooFewWalkers indicates Walkers < 2·dim (the stretch move needs a
	// spanning complementary ensemble).
	ErrTooFewWalkers = errors.New("mcmc: need at least 2*dim walkers")

	// ErrBadStretch indicates a stretch scale a ≤ 1.
	ErrBadStretch = errors.New("mcmc: stretch scale must exceed 1")

	// ErrBadSteps indicates Steps ≤ 0 or Burn outside [0, Steps).
	ErrBadSteps = errors.New("mcmc: invalid step/burn-in configuration")

	// ErrBadInit indicates initial positions of the wrong shape, or an
	// ensemble whose every walker starts at −Inf log-probability.
	ErrBadInit = errors.New("mcmc: invalid initial ensemble")

	// ErrNotRunnable indicates Run was called on a sampler that is not in
	// the INITIALIZED state; COMPLETE and FAILED are terminal.
	ErrNotRunnable = errors.New("mcmc: sampler already run")

	// ErrBurnExceedsChain indicates a burn-in discard covering the whole chain.
	ErrBurnExceedsChain = errors.New("mcmc: burn-in exceeds chain length")
)
