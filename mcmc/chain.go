// SPDX-License-Identifier: MIT
package mcmc

import "github.com/lowgrav/lgpd/npz"

// Chain is the append-only record of a sampling run: Steps ensemble
// snapshots of Walkers positions with their log-probabilities. Layout is
// step-major, then walker, then parameter.
type Chain struct {
	Walkers int
	Steps   int
	Dim     int

	thetas  []float64 // len Walkers*Steps*Dim
	logProb []float64 // len Walkers*Steps
}

// newChain preallocates storage for a full run.
func newChain(walkers, steps, dim int) *Chain {
	return &Chain{
		Walkers: walkers,
		Dim:     dim,
		thetas:  make([]float64, 0, walkers*steps*dim),
		logProb: make([]float64, 0, walkers*steps),
	}
}

// append records one completed ensemble step.
func (c *Chain) append(pos [][]float64, logp []float64) {
	for w := range pos {
		c.thetas = append(c.thetas, pos[w]...)
		c.logProb = append(c.logProb, logp[w])
	}
	c.Steps++
}

// At returns the parameter vector of (step, walker) without copying.
func (c *Chain) At(step, walker int) []float64 {
	base := (step*c.Walkers + walker) * c.Dim

	return c.thetas[base : base+c.Dim]
}

// LogProbAt returns the log-probability of (step, walker).
func (c *Chain) LogProbAt(step, walker int) float64 {
	return c.logProb[step*c.Walkers+walker]
}

// Flatten discards the first burn steps and returns the remaining samples
// as (Steps−burn)·Walkers parameter vectors with matching
// log-probabilities. The result is a copy; the chain stays intact.
//
// Errors: ErrBurnExceedsChain when burn ≥ Steps or burn < 0.
func (c *Chain) Flatten(burn int) ([][]float64, []float64, error) {
	if burn < 0 || burn >= c.Steps {
		return nil, nil, ErrBurnExceedsChain
	}

	n := (c.Steps - burn) * c.Walkers
	thetas := make([][]float64, 0, n)
	logp := make([]float64, 0, n)
	for step := burn; step < c.Steps; step++ {
		for w := 0; w < c.Walkers; w++ {
			theta := make([]float64, c.Dim)
			copy(theta, c.At(step, w))
			thetas = append(thetas, theta)
			logp = append(logp, c.LogProbAt(step, w))
		}
	}

	return thetas, logp, nil
}

// SaveNPZ persists the post-burn-in flattened chain as an .npz archive
// with members "chain" (N×Dim) and "logprob" (N), the layout downstream
// diagnostics read.
func (c *Chain) SaveNPZ(path string, burn int) error {
	thetas, logp, err := c.Flatten(burn)
	if err != nil {
		return err
	}

	flat := make([]float64, 0, len(thetas)*c.Dim)
	for _, theta := range thetas {
		flat = append(flat, theta...)
	}

	return npz.WriteFile(path, map[string]npz.Array{
		"chain":   {Shape: []int{len(thetas), c.Dim}, Data: flat},
		"logprob": npz.Vector(logp),
	})
}
