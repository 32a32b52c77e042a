// Package spectrum: sentinel error set, matched via errors.Is.

package spectrum

import "errors"

var (
	// ErrEmptySpectrum indicates a spectrum without multipoles.
	ErrEmptySpectrum = errors.New("spectrum: empty multipole grid")

	// ErrLengthMismatch indicates channel columns of unequal length.
	ErrLengthMismatch = errors.New("spectrum: channel length mismatch")

	// ErrMissingField indicates a required named array is absent from an archive.
	ErrMissingField = errors.New("spectrum: missing required field")

	// ErrNaNInf indicates a NaN/Inf in a modulated spectrum: a fatal,
	// bug-indicating condition, never silently clamped.
	ErrNaNInf = errors.New("spectrum: NaN or Inf in modulated spectrum")

	// ErrBadBinStep indicates a non-positive ℓ bin step.
	ErrBadBinStep = errors.New("spectrum: bin step must be positive")
)
