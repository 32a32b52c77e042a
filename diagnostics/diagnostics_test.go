package diagnostics_test

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/lowgrav/lgpd/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gaussianDraws produces a deterministic N×dim sample block.
func gaussianDraws(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, dim)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		out[i] = row
	}

	return out
}

// TestSplitRHat_StationaryChain verifies draws from one distribution
// score near unity.
func TestSplitRHat_StationaryChain(t *testing.T) {
	samples := gaussianDraws(2000, 3, 1)

	rhat, err := diagnostics.SplitRHat(samples)
	require.NoError(t, err)
	require.Len(t, rhat, 3)

	for p, r := range rhat {
		assert.InDelta(t, 1.0, r, 0.05, "parameter %d", p)
	}
	assert.True(t, diagnostics.Converged(rhat, diagnostics.DefaultRHatThreshold))
}

// TestSplitRHat_DriftingChain verifies a mean shift between halves is
// flagged.
func TestSplitRHat_DriftingChain(t *testing.T) {
	samples := gaussianDraws(2000, 2, 2)
	for i := len(samples) / 2; i < len(samples); i++ {
		samples[i][0] += 5.0
	}

	rhat, err := diagnostics.SplitRHat(samples)
	require.NoError(t, err)

	assert.Greater(t, rhat[0], 1.5, "shifted parameter must fail convergence")
	assert.InDelta(t, 1.0, rhat[1], 0.05, "untouched parameter stays converged")
	assert.False(t, diagnostics.Converged(rhat, diagnostics.DefaultRHatThreshold))
}

// TestSplitRHat_DegenerateInputs exercises the failure sentinels and the
// constant-parameter convention.
func TestSplitRHat_DegenerateInputs(t *testing.T) {
	_, err := diagnostics.SplitRHat([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, diagnostics.ErrTooFewSamples)

	_, err = diagnostics.SplitRHat([][]float64{{1, 2}, {1}, {1, 2}, {1, 2}})
	assert.ErrorIs(t, err, diagnostics.ErrRaggedSamples)

	constant := make([][]float64, 100)
	for i := range constant {
		constant[i] = []float64{3.14}
	}
	rhat, err := diagnostics.SplitRHat(constant)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rhat[0], "a pinned parameter is trivially converged")
}

// TestAutocorrTime_WhiteVsCorrelated verifies the estimator separates
// independent draws from a sticky series.
func TestAutocorrTime_WhiteVsCorrelated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	white := make([]float64, 4000)
	for i := range white {
		white[i] = rng.NormFloat64()
	}
	tauWhite, err := diagnostics.AutocorrTime(white)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tauWhite, 1.0, "independent draws decorrelate immediately")

	// AR(1) with phi=0.9 has integrated time (1+phi)/(1-phi) = 19.
	ar := make([]float64, 4000)
	for i := 1; i < len(ar); i++ {
		ar[i] = 0.9*ar[i-1] + rng.NormFloat64()
	}
	tauAR, err := diagnostics.AutocorrTime(ar)
	require.NoError(t, err)
	assert.Greater(t, tauAR, 5.0)
	assert.Less(t, tauAR, 60.0)

	assert.Greater(t, diagnostics.ESS(4000, tauWhite), diagnostics.ESS(4000, tauAR))
}

// TestBuildReport_RoundTrip verifies the report fields and its JSON
// serialization.
func TestBuildReport_RoundTrip(t *testing.T) {
	samples := gaussianDraws(500, 2, 4)
	logp := make([]float64, len(samples))
	for i, row := range samples {
		logp[i] = -0.5 * (row[0]*row[0] + row[1]*row[1])
	}

	report, err := diagnostics.BuildReport(samples, logp)
	require.NoError(t, err)

	assert.Equal(t, 500, report.NSamples)
	assert.Equal(t, 2, report.NParams)
	assert.Len(t, report.SplitRHat, 2)
	assert.Len(t, report.Tau, 2)
	assert.Len(t, report.ESS, 2)
	assert.Equal(t, logp[report.LogProb.BestIndex], report.LogProb.Max)
	assert.Equal(t, samples[report.LogProb.BestIndex], report.BestTheta)
	assert.LessOrEqual(t, report.LogProb.Min, report.LogProb.Mean)
	assert.LessOrEqual(t, report.LogProb.Mean, report.LogProb.Max)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.WriteJSON(path))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)

	var back diagnostics.Report
	require.NoError(t, json.Unmarshal(buf, &back))
	assert.Equal(t, report.NSamples, back.NSamples)
	assert.Equal(t, report.SplitRHat, back.SplitRHat)

	_, err = diagnostics.BuildReport(samples, logp[:10])
	assert.ErrorIs(t, err, diagnostics.ErrDimensionMismatch)
}
