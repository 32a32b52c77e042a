// Package likelihood: sentinel error set, matched via errors.Is.

package likelihood

import "errors"

var (
	// ErrLengthMismatch indicates index-misaligned data and model columns.
	ErrLengthMismatch = errors.New("likelihood: length mismatch")

	// ErrEmptyData indicates a dataset with no points after masking.
	ErrEmptyData = errors.New("likelihood: no usable data points")

	// ErrNonPositiveSigma indicates a zero or negative uncertainty in a
	// diagonal error model.
	ErrNonPositiveSigma = errors.New("likelihood: non-positive sigma")

	// ErrNotPositiveDefinite indicates a covariance matrix whose Cholesky
	// factorization failed.
	ErrNotPositiveDefinite = errors.New("likelihood: covariance not positive definite")

	// ErrBandOutsideModel indicates a covariance-model band outside the
	// model ℓ range; with correlated errors masking is not an option.
	ErrBandOutsideModel = errors.New("likelihood: data band outside model grid")

	// ErrDimensionMismatch indicates a parameter vector whose length
	// differs from the prior bounds.
	ErrDimensionMismatch = errors.New("likelihood: theta/bounds dimension mismatch")

	// ErrBadBounds indicates a prior interval with Lo ≥ Hi or non-finite
	// endpoints.
	ErrBadBounds = errors.New("likelihood: invalid prior bounds")
)
