package likelihood

import (
	"fmt"
	"math"

	"github.com/lowgrav/lgpd/dataset"
)

// AddBandpowers scores binned CMB data against a model Dl curve under a
// diagonal Gaussian error model and records the χ² part under name.
//
// The model is linearly interpolated onto the data band centers; bands
// outside the model ℓ range are masked out. σ ≤ 0 is a hard error (the
// loaders reject it too; this guards hand-built inputs).
//
// Errors: ErrLengthMismatch, ErrNonPositiveSigma, ErrEmptyData.
func (a *Accumulator) AddBandpowers(name string, data dataset.Bandpowers, modelEll, modelDl []float64) error {
	if len(data.Dl) != data.Len() || len(data.Sigma) != data.Len() {
		return fmt.Errorf("%w: %s data columns", ErrLengthMismatch, name)
	}
	if len(modelDl) != len(modelEll) {
		return fmt.Errorf("%w: %s model columns", ErrLengthMismatch, name)
	}

	var chi2 float64
	var n int
	for i := range data.Ell {
		if data.Sigma[i] <= 0 {
			return fmt.Errorf("%w: %s band %d", ErrNonPositiveSigma, name, i)
		}

		m := interp(data.Ell[i], modelEll, modelDl)
		if math.IsNaN(m) {
			continue // band not covered by the model grid
		}

		r := (data.Dl[i] - m) / data.Sigma[i]
		chi2 += r * r
		n++
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyData, name)
	}

	a.add(name, chi2, n)

	return nil
}

// AddBandpowersCov scores binned CMB data with a full covariance matrix:
// χ² = rᵀC⁻¹r via Cholesky solves. With correlated errors no band may be
// masked, so every band center must lie inside the model grid.
//
// Errors: ErrLengthMismatch, ErrBandOutsideModel, ErrNotPositiveDefinite.
func (a *Accumulator) AddBandpowersCov(name string, data dataset.Bandpowers, cov dataset.Covariance, modelEll, modelDl []float64) error {
	n := data.Len()
	if len(data.Dl) != n || cov.N != n {
		return fmt.Errorf("%w: %s covariance is %d×%d for %d bands", ErrLengthMismatch, name, cov.N, cov.N, n)
	}
	if len(modelDl) != len(modelEll) {
		return fmt.Errorf("%w: %s model columns", ErrLengthMismatch, name)
	}

	resid := make([]float64, n)
	for i := range data.Ell {
		m := interp(data.Ell[i], modelEll, modelDl)
		if math.IsNaN(m) {
			return fmt.Errorf("%w: %s band at ell=%g", ErrBandOutsideModel, name, data.Ell[i])
		}
		resid[i] = data.Dl[i] - m
	}

	chi2, err := covChi2(resid, cov)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	a.add(name, chi2, n)

	return nil
}
