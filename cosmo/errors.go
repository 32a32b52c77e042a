// Package cosmo: sentinel error set. Growth integration validates its grid
// up front and reports violations through these sentinels via errors.Is.

package cosmo

import "errors"

var (
	// ErrEmptyGrid is returned when a growth solve receives no scale factors.
	ErrEmptyGrid = errors.New("cosmo: empty scale-factor grid")

	// ErrGridNotIncreasing is returned when the scale-factor grid is not
	// strictly increasing.
	ErrGridNotIncreasing = errors.New("cosmo: scale-factor grid must be strictly increasing")

	// ErrGridOutOfRange is returned when a grid point lies outside (0, 1].
	ErrGridOutOfRange = errors.New("cosmo: scale factor must lie in (0, 1]")
)
