package likelihood

import "math"

// LogProbFunc evaluates a log-probability at theta. A −Inf value is a
// rejection and is recovered inline by the sampler; a non-nil error is
// fatal and aborts the run (malformed data, numerical failure).
type LogProbFunc func(theta []float64) (float64, error)

// NewLogPosterior composes a box prior with a log-likelihood. The prior is
// evaluated first and −Inf short-circuits before any spectrum or model
// computation is attempted.
func NewLogPosterior(bounds Bounds, loglike LogProbFunc) LogProbFunc {
	return func(theta []float64) (float64, error) {
		lp, err := bounds.LogPrior(theta)
		if err != nil {
			return 0, err
		}
		if math.IsInf(lp, -1) {
			return lp, nil
		}

		ll, err := loglike(theta)
		if err != nil {
			return 0, err
		}

		return lp + ll, nil
	}
}
