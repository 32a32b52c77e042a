package likelihood_test

import (
	"math"
	"testing"

	"github.com/lowgrav/lgpd/dataset"
	"github.com/lowgrav/lgpd/likelihood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccumulator_Additivity verifies the combined log-likelihood is the
// sum of per-dataset parts and that an absent dataset contributes zero.
func TestAccumulator_Additivity(t *testing.T) {
	bands := dataset.Bandpowers{
		Ell:   []float64{10, 20, 30},
		Dl:    []float64{100, 200, 300},
		Sigma: []float64{10, 10, 10},
	}
	modelEll := []float64{5, 15, 25, 35}
	modelDl := []float64{90, 190, 290, 390}

	var one likelihood.Accumulator
	require.NoError(t, one.AddBandpowers("TT", bands, modelEll, modelDl))
	soloChi2, soloDof := one.Summary()
	assert.Equal(t, 3, soloDof)

	series := dataset.Series{Z: []float64{0.5}, Obs: []float64{1.0}, Sigma: []float64{0.1}}
	var both likelihood.Accumulator
	require.NoError(t, both.AddBandpowers("TT", bands, modelEll, modelDl))
	require.NoError(t, both.AddBAO(series, func(z float64) (float64, error) { return 1.2, nil }))

	chi2, dof := both.Summary()
	assert.InDelta(t, soloChi2+4.0, chi2, 1e-12, "parts must add: (1.2-1.0)^2/0.1^2 = 4")
	assert.Equal(t, 4, dof)
	assert.InDelta(t, -0.5*chi2, both.LogLike(), 1e-12)

	var empty likelihood.Accumulator
	assert.Zero(t, empty.LogLike(), "no datasets means zero contribution")
}

// TestAddBandpowers_MasksUncoveredBands verifies bands outside the model
// grid are skipped while covered bands still score.
func TestAddBandpowers_MasksUncoveredBands(t *testing.T) {
	bands := dataset.Bandpowers{
		Ell:   []float64{10, 5000},
		Dl:    []float64{100, 1},
		Sigma: []float64{10, 1},
	}
	modelEll := []float64{2, 100}
	modelDl := []float64{100, 100}

	var acc likelihood.Accumulator
	require.NoError(t, acc.AddBandpowers("TT", bands, modelEll, modelDl))

	parts := acc.Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, 1, parts[0].N, "the ell=5000 band must be masked")
	assert.InDelta(t, 0.0, parts[0].Chi2, 1e-12, "model matches data exactly at ell=10")
}

// TestAddBandpowers_FailurePolicy verifies the hard errors.
func TestAddBandpowers_FailurePolicy(t *testing.T) {
	var acc likelihood.Accumulator

	short := dataset.Bandpowers{Ell: []float64{10, 20}, Dl: []float64{1}, Sigma: []float64{1, 1}}
	err := acc.AddBandpowers("TT", short, []float64{1, 100}, []float64{1, 1})
	assert.ErrorIs(t, err, likelihood.ErrLengthMismatch)

	zero := dataset.Bandpowers{Ell: []float64{10}, Dl: []float64{1}, Sigma: []float64{0}}
	err = acc.AddBandpowers("TT", zero, []float64{1, 100}, []float64{1, 1})
	assert.ErrorIs(t, err, likelihood.ErrNonPositiveSigma)

	faraway := dataset.Bandpowers{Ell: []float64{9999}, Dl: []float64{1}, Sigma: []float64{1}}
	err = acc.AddBandpowers("TT", faraway, []float64{1, 100}, []float64{1, 1})
	assert.ErrorIs(t, err, likelihood.ErrEmptyData, "fully masked dataset must fail, not silently skip")
}

// TestAddBandpowersCov_MatchesDiagonal verifies the covariance path agrees
// with the diagonal path when the covariance is diagonal.
func TestAddBandpowersCov_MatchesDiagonal(t *testing.T) {
	bands := dataset.Bandpowers{
		Ell:   []float64{10, 20},
		Dl:    []float64{105, 195},
		Sigma: []float64{5, 10},
	}
	modelEll := []float64{5, 25}
	modelDl := []float64{100, 200}

	var diag likelihood.Accumulator
	require.NoError(t, diag.AddBandpowers("TT", bands, modelEll, modelDl))

	cov := dataset.Covariance{N: 2, Data: []float64{25, 0, 0, 100}}
	var full likelihood.Accumulator
	require.NoError(t, full.AddBandpowersCov("TT", bands, cov, modelEll, modelDl))

	dChi2, _ := diag.Summary()
	fChi2, _ := full.Summary()
	assert.InDelta(t, dChi2, fChi2, 1e-9)
}

// TestAddBandpowersCov_FailurePolicy verifies correlated-error guards.
func TestAddBandpowersCov_FailurePolicy(t *testing.T) {
	bands := dataset.Bandpowers{Ell: []float64{10, 5000}, Dl: []float64{1, 1}, Sigma: []float64{1, 1}}
	cov := dataset.Covariance{N: 2, Data: []float64{1, 0, 0, 1}}

	var acc likelihood.Accumulator
	err := acc.AddBandpowersCov("TT", bands, cov, []float64{1, 100}, []float64{1, 1})
	assert.ErrorIs(t, err, likelihood.ErrBandOutsideModel, "masking is not allowed with a covariance")

	inBands := dataset.Bandpowers{Ell: []float64{10, 20}, Dl: []float64{1, 1}, Sigma: []float64{1, 1}}
	notPD := dataset.Covariance{N: 2, Data: []float64{1, 2, 2, 1}}
	err = acc.AddBandpowersCov("TT", inBands, notPD, []float64{1, 100}, []float64{1, 1})
	assert.ErrorIs(t, err, likelihood.ErrNotPositiveDefinite)
}

// TestBounds_PriorRejection verifies property: any theta with a component
// outside its interval yields −Inf, evaluated without touching the
// likelihood.
func TestBounds_PriorRejection(t *testing.T) {
	bounds := likelihood.Bounds{{Lo: -0.3, Hi: 0.3}, {Lo: 0, Hi: 1}}
	require.NoError(t, bounds.Validate())

	lp, err := bounds.LogPrior([]float64{0.1, 0.5})
	require.NoError(t, err)
	assert.Zero(t, lp)

	for _, theta := range [][]float64{
		{0.4, 0.5}, {-0.4, 0.5}, {0.1, -0.01}, {0.1, 1.01}, {math.NaN(), 0.5},
	} {
		lp, err = bounds.LogPrior(theta)
		require.NoError(t, err)
		assert.True(t, math.IsInf(lp, -1), "theta %v must be rejected", theta)
	}

	_, err = bounds.LogPrior([]float64{0.1})
	assert.ErrorIs(t, err, likelihood.ErrDimensionMismatch)

	bad := likelihood.Bounds{{Lo: 1, Hi: 1}}
	assert.ErrorIs(t, bad.Validate(), likelihood.ErrBadBounds)
}

// TestNewLogPosterior_ShortCircuit verifies the likelihood is never
// evaluated for out-of-prior points.
func TestNewLogPosterior_ShortCircuit(t *testing.T) {
	bounds := likelihood.Bounds{{Lo: 0, Hi: 1}}

	calls := 0
	lp := likelihood.NewLogPosterior(bounds, func(theta []float64) (float64, error) {
		calls++

		return -1.5, nil
	})

	v, err := lp([]float64{2.0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
	assert.Zero(t, calls, "likelihood must not run outside the prior")

	v, err = lp([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)
	assert.Equal(t, 1, calls)
}

// TestSelfComparisonNoiseFloor covers the concrete scenario: 50 bands of
// data generated from the model itself with 5% errors and identity
// parameters give χ² at the self-comparison noise floor.
func TestSelfComparisonNoiseFloor(t *testing.T) {
	n := 50
	ell := make([]float64, n)
	dl := make([]float64, n)
	sigma := make([]float64, n)
	for i := 0; i < n; i++ {
		ell[i] = float64(10 + 20*i)
		dl[i] = 1000.0 * math.Exp(-ell[i]/2000.0)
		sigma[i] = 0.05 * dl[i]
	}

	data := dataset.Bandpowers{Ell: ell, Dl: dl, Sigma: sigma}

	var acc likelihood.Accumulator
	require.NoError(t, acc.AddBandpowers("TT", data, ell, dl))

	chi2, dof := acc.Summary()
	assert.Equal(t, n, dof)
	assert.Less(t, chi2, 1e-18, "self-comparison must sit at the noise floor")
}
