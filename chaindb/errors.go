package chaindb

import "errors"

var (
	// ErrRunExists is returned by CreateRun when the identifier is
	// already present in the runs table.
	ErrRunExists = errors.New("chaindb: run already exists")

	// ErrRunNotFound is returned by OpenRun for an unknown identifier.
	ErrRunNotFound = errors.New("chaindb: run not found")

	// ErrNoSteps is returned by LastStep when the run has not recorded
	// any ensemble yet.
	ErrNoSteps = errors.New("chaindb: run has no recorded steps")

	// ErrShapeMismatch is returned by SaveStep when the ensemble does
	// not match the walker count and dimension declared at CreateRun.
	ErrShapeMismatch = errors.New("chaindb: ensemble shape does not match run")
)
