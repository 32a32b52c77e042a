package diagnostics

import "errors"

var (
	// ErrTooFewSamples is returned when a chain is too short for the
	// requested statistic to mean anything.
	ErrTooFewSamples = errors.New("diagnostics: too few samples")

	// ErrDimensionMismatch is returned when the sample and log-prob
	// arrays disagree on the number of draws.
	ErrDimensionMismatch = errors.New("diagnostics: sample/logprob length mismatch")

	// ErrRaggedSamples is returned when sample vectors differ in length.
	ErrRaggedSamples = errors.New("diagnostics: ragged sample dimensions")
)
