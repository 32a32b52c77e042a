// Package dataset: sentinel error set. Loaders wrap these with the
// offending path via %w; callers match with errors.Is.

package dataset

import "errors"

var (
	// ErrMissingFile indicates a required input file does not exist.
	ErrMissingFile = errors.New("dataset: missing input file")

	// ErrBadRow indicates a row with the wrong column count or a
	// non-numeric cell.
	ErrBadRow = errors.New("dataset: malformed row")

	// ErrNonPositiveSigma indicates a zero or negative uncertainty.
	ErrNonPositiveSigma = errors.New("dataset: non-positive sigma")

	// ErrEmpty indicates a file with a header but no data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrNonSquare indicates a covariance matrix that is not square.
	ErrNonSquare = errors.New("dataset: covariance matrix not square")
)
