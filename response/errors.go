// SPDX-License-Identifier: MIT
// Package response: sentinel error set.
// All validation failures in this package are reported through these
// sentinels and matched by callers via errors.Is. No function panics on
// user-supplied parameter values.

package response

import "errors"

var (
	// ErrNegativeDamping is returned when ξ_damp < 0: negative damping
	// would amplify anisotropy power, which is out of scope.
	ErrNegativeDamping = errors.New("response: xi_damp must be non-negative")

	// ErrDampingScaleTooSmall is returned when the damping multipole ℓd
	// is below MinEllDamp; ℓd appears squared in a denominator.
	ErrDampingScaleTooSmall = errors.New("response: damping scale ell_d too small")

	// ErrNilMuModel is returned when a Transfer is built without a μ model.
	ErrNilMuModel = errors.New("response: nil mu model")
)
