package likelihood

import (
	"fmt"
	"math"

	"github.com/lowgrav/lgpd/dataset"
)

// Canonical part names for the auxiliary probes.
const (
	PartBAO    = "BAO"
	PartSNe    = "SNe"
	PartGrowth = "Growth"
)

// ModelFunc evaluates a theory observable at one redshift. A model error
// (for example a growth solve failure) aborts the evaluation; it is a
// bug-indicating condition, not a rejection.
type ModelFunc func(z float64) (float64, error)

// AddSeries scores a redshift series against a model callback under a
// diagonal Gaussian error model and records the part under name.
//
// Errors: ErrLengthMismatch, ErrNonPositiveSigma, ErrEmptyData, plus any
// error surfaced by the model callback.
func (a *Accumulator) AddSeries(name string, data dataset.Series, model ModelFunc) error {
	if len(data.Obs) != data.Len() || len(data.Sigma) != data.Len() {
		return fmt.Errorf("%w: %s data columns", ErrLengthMismatch, name)
	}
	if data.Len() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyData, name)
	}

	var chi2 float64
	for i, z := range data.Z {
		if data.Sigma[i] <= 0 {
			return fmt.Errorf("%w: %s point %d", ErrNonPositiveSigma, name, i)
		}

		m, err := model(z)
		if err != nil {
			return fmt.Errorf("likelihood: %s model at z=%g: %w", name, z, err)
		}
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("likelihood: %s model at z=%g: non-finite value", name, z)
		}

		r := (data.Obs[i] - m) / data.Sigma[i]
		chi2 += r * r
	}

	a.add(name, chi2, data.Len())

	return nil
}

// AddBAO scores DV/rd data.
func (a *Accumulator) AddBAO(data dataset.Series, model ModelFunc) error {
	return a.AddSeries(PartBAO, data, model)
}

// AddSNe scores distance-modulus data.
func (a *Accumulator) AddSNe(data dataset.Series, model ModelFunc) error {
	return a.AddSeries(PartSNe, data, model)
}

// AddGrowth scores fσ8 data.
func (a *Accumulator) AddGrowth(data dataset.Series, model ModelFunc) error {
	return a.AddSeries(PartGrowth, data, model)
}
