// Package npz: sentinel error set, matched by callers via errors.Is.
// Read-path errors are wrapped with the offending file or member name at
// the boundary; the sentinels themselves stay bare.

package npz

import "errors"

var (
	// ErrBadMagic indicates the stream does not start with the \x93NUMPY magic.
	ErrBadMagic = errors.New("npz: bad npy magic")

	// ErrUnsupportedVersion indicates an npy format version other than 1.0.
	ErrUnsupportedVersion = errors.New("npz: unsupported npy format version")

	// ErrBadHeader indicates a malformed npy header dictionary.
	ErrBadHeader = errors.New("npz: malformed npy header")

	// ErrUnsupportedDType indicates a dtype outside {<f8, <f4, <i8, <i4}.
	ErrUnsupportedDType = errors.New("npz: unsupported dtype")

	// ErrFortranOrder indicates a Fortran-ordered array, which is not supported.
	ErrFortranOrder = errors.New("npz: fortran order not supported")

	// ErrBadShape indicates a shape/payload size mismatch or rank > 3.
	ErrBadShape = errors.New("npz: shape does not match payload")
)
