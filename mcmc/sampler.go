// SPDX-License-Identifier: MIT
package mcmc

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Sampler runs one ensemble MCMC over a log-posterior. Create with New,
// seed positions with InitBall, execute once with Run. A Sampler is not
// reusable: COMPLETE and FAILED are terminal states.
type Sampler struct {
	logProb LogProbFunc
	opts    Options
	dim     int
	rng     *rand.Rand
	state   State
}

// New validates the configuration and builds an INITIALIZED sampler.
//
// Errors:
//   - ErrTooFewWalkers — opts.Walkers < 2·dim.
//   - ErrBadStretch    — opts.StretchA ≤ 1.
//   - ErrBadSteps      — Steps ≤ 0 or Burn outside [0, Steps).
func New(logProb LogProbFunc, dim int, opts Options) (*Sampler, error) {
	if opts.Walkers < 2*dim {
		return nil, ErrTooFewWalkers
	}
	if opts.StretchA <= 1 {
		return nil, ErrBadStretch
	}
	if opts.Steps <= 0 || opts.Burn < 0 || opts.Burn >= opts.Steps {
		return nil, ErrBadSteps
	}

	return &Sampler{
		logProb: logProb,
		opts:    opts,
		dim:     dim,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		state:   StateInitialized,
	}, nil
}

// State returns the current lifecycle state.
func (s *Sampler) State() State { return s.state }

// InitBall draws Walkers start positions from a Gaussian ball of radius
// InitSpread around theta0 and passes each through clip (typically
// Bounds.Clip) so every walker starts inside the prior. Uses the
// sampler's own generator: positions are part of the reproducible run.
func (s *Sampler) InitBall(theta0 []float64, clip func([]float64) []float64) [][]float64 {
	pos := make([][]float64, s.opts.Walkers)
	for w := range pos {
		p := make([]float64, len(theta0))
		for d := range p {
			p[d] = theta0[d] + s.opts.InitSpread*s.rng.NormFloat64()
		}
		if clip != nil {
			p = clip(p)
		}
		pos[w] = p
	}

	return pos
}

// Run executes the configured number of ensemble steps from init and
// returns the full chain. On any posterior error, checkpoint failure or
// cancellation the sampler transitions to FAILED and returns no chain.
func (s *Sampler) Run(ctx context.Context, init [][]float64) (*Chain, error) {
	if s.state != StateInitialized {
		return nil, ErrNotRunnable
	}

	pos, logp, err := s.prepare(init)
	if err != nil {
		s.state = StateFailed

		return nil, err
	}

	chain := newChain(s.opts.Walkers, s.opts.Steps, s.dim)
	s.state = StateBurningIn

	for step := 0; step < s.opts.Steps; step++ {
		if step >= s.opts.Burn {
			s.state = StateSampling
		}

		if err := ctx.Err(); err != nil {
			s.state = StateFailed

			return nil, fmt.Errorf("mcmc: canceled before step %d: %w", step, err)
		}

		if err := s.advance(pos, logp); err != nil {
			s.state = StateFailed

			return nil, err
		}

		chain.append(pos, logp)

		if s.opts.Checkpoint != nil {
			if err := s.opts.Checkpoint.SaveStep(step, pos, logp); err != nil {
				s.state = StateFailed

				return nil, fmt.Errorf("mcmc: checkpoint at step %d: %w", step, err)
			}
		}
	}

	s.state = StateComplete

	return chain, nil
}

// prepare validates shapes and evaluates the initial log-probabilities.
func (s *Sampler) prepare(init [][]float64) ([][]float64, []float64, error) {
	if len(init) != s.opts.Walkers {
		return nil, nil, fmt.Errorf("%w: got %d walkers, want %d", ErrBadInit, len(init), s.opts.Walkers)
	}

	pos := make([][]float64, len(init))
	logp := make([]float64, len(init))
	finite := 0
	for w, p := range init {
		if len(p) != s.dim {
			return nil, nil, fmt.Errorf("%w: walker %d has dim %d, want %d", ErrBadInit, w, len(p), s.dim)
		}
		pos[w] = append([]float64(nil), p...)

		lp, err := s.logProb(pos[w])
		if err != nil {
			return nil, nil, fmt.Errorf("mcmc: initial evaluation of walker %d: %w", w, err)
		}
		logp[w] = lp
		if !math.IsInf(lp, -1) {
			finite++
		}
	}
	if finite == 0 {
		return nil, nil, fmt.Errorf("%w: every walker starts outside the posterior support", ErrBadInit)
	}

	return pos, logp, nil
}

// advance applies one stretch-move sweep over the ensemble in place.
// Walkers update sequentially, each drawing its complement from the
// current (partially updated) ensemble; rejections keep the old state.
func (s *Sampler) advance(pos [][]float64, logp []float64) error {
	a := s.opts.StretchA
	prop := make([]float64, s.dim)

	for i := range pos {
		// Complementary walker j ≠ i.
		j := s.rng.Intn(len(pos) - 1)
		if j >= i {
			j++
		}

		// z ~ g(z) ∝ 1/√z on [1/a, a] via inverse-CDF sampling.
		u := s.rng.Float64()
		z := (u*(a-1.0) + 1.0)
		z = z * z / a

		for d := 0; d < s.dim; d++ {
			prop[d] = pos[j][d] + z*(pos[i][d]-pos[j][d])
		}

		lp, err := s.logProb(prop)
		if err != nil {
			return fmt.Errorf("mcmc: posterior at proposal for walker %d: %w", i, err)
		}

		logq := float64(s.dim-1)*math.Log(z) + lp - logp[i]
		if logq >= 0 || math.Log(s.rng.Float64()) < logq {
			copy(pos[i], prop)
			logp[i] = lp
		}
	}

	return nil
}
