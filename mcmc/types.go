// SPDX-License-Identifier: MIT
package mcmc

// Defaults — single source of truth, mirrored by DefaultOptions.
const (
	DefaultWalkers    = 24
	DefaultSteps      = 500
	DefaultBurn       = 200
	DefaultStretchA   = 2.0
	DefaultSeed       = 42
	DefaultInitSpread = 1e-3
)

// LogProbFunc evaluates the log-posterior at theta. −Inf is an inline
// rejection; a non-nil error is fatal and fails the run.
type LogProbFunc func(theta []float64) (float64, error)

// Checkpointer receives every completed ensemble step, in order, from the
// single driving goroutine. Implementations persist at step boundaries so
// an interrupted run can resume from the last complete ensemble.
type Checkpointer interface {
	SaveStep(step int, pos [][]float64, logp []float64) error
}

// State is the sampler lifecycle. COMPLETE and FAILED are terminal.
type State int

const (
	StateInitialized State = iota
	StateBurningIn
	StateSampling
	StateComplete
	StateFailed
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "INITIALIZED"
	case StateBurningIn:
		return "BURNING_IN"
	case StateSampling:
		return "SAMPLING"
	case StateComplete:
		return "COMPLETE"
	case StateFailed:
		return "FAILED"
	}

	return "UNKNOWN"
}

// Options configures a sampling run.
//
// Fields:
//   - Walkers    — ensemble size; must be ≥ 2·dim.
//   - Steps      — total ensemble steps, burn-in included.
//   - Burn       — leading steps discarded by Flatten and summaries.
//   - StretchA   — stretch scale a > 1; larger proposes bolder moves.
//   - Seed       — random seed; a fixed seed reproduces the chain exactly.
//   - InitSpread — σ of the Gaussian ball drawn by InitBall.
//   - Checkpoint — optional step-boundary persistence hook.
type Options struct {
	Walkers    int
	Steps      int
	Burn       int
	StretchA   float64
	Seed       int64
	InitSpread float64
	Checkpoint Checkpointer
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Walkers:    DefaultWalkers,
		Steps:      DefaultSteps,
		Burn:       DefaultBurn,
		StretchA:   DefaultStretchA,
		Seed:       DefaultSeed,
		InitSpread: DefaultInitSpread,
	}
}
