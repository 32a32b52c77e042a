package diagnostics

import (
	"fmt"
	"math"
)

const (
	// DefaultRHatThreshold is the conventional cutoff above which a
	// split-chain statistic flags non-convergence.
	DefaultRHatThreshold = 1.1

	// minSplitSamples is the smallest chain length SplitRHat accepts:
	// each half needs at least two draws for a variance.
	minSplitSamples = 4

	// sokalC is the autocorrelation window constant: the window is the
	// earliest lag M with M >= sokalC * tau(M).
	sokalC = 5.0
)

// SplitRHat computes the Gelman-Rubin statistic per parameter by
// comparing the first and second halves of a flattened chain. Samples
// are draws in row-major order, one parameter vector per row.
func SplitRHat(samples [][]float64) ([]float64, error) {
	if len(samples) < minSplitSamples {
		return nil, fmt.Errorf("%w: need at least %d draws for split statistics, got %d",
			ErrTooFewSamples, minSplitSamples, len(samples))
	}

	dim := len(samples[0])
	for i, row := range samples {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: draw %d has dim %d, draw 0 has %d",
				ErrRaggedSamples, i, len(row), dim)
		}
	}

	half := len(samples) / 2
	n := float64(half)
	rhat := make([]float64, dim)

	for p := 0; p < dim; p++ {
		m1, v1 := meanVarColumn(samples[:half], p)
		m2, v2 := meanVarColumn(samples[len(samples)-half:], p)

		w := 0.5 * (v1 + v2)
		grand := 0.5 * (m1 + m2)
		b := n * ((m1-grand)*(m1-grand) + (m2-grand)*(m2-grand))

		if w == 0 {
			// A constant parameter is trivially converged.
			rhat[p] = 1.0

			continue
		}
		varPlus := (n-1.0)/n*w + b/n
		rhat[p] = math.Sqrt(varPlus / w)
	}

	return rhat, nil
}

// Converged reports whether every statistic sits below the threshold.
func Converged(rhat []float64, threshold float64) bool {
	for _, r := range rhat {
		if r > threshold || math.IsNaN(r) {
			return false
		}
	}

	return true
}

// AutocorrTime estimates the integrated autocorrelation time of a
// scalar series using an automatic window.
func AutocorrTime(x []float64) (float64, error) {
	if len(x) < minSplitSamples {
		return 0, fmt.Errorf("%w: need at least %d draws for autocorrelation, got %d",
			ErrTooFewSamples, minSplitSamples, len(x))
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	c0 := 0.0
	for _, v := range x {
		c0 += (v - mean) * (v - mean)
	}
	c0 /= float64(len(x))
	if c0 == 0 {
		// A constant series carries no autocorrelation information.
		return 1.0, nil
	}

	tau := 1.0
	for lag := 1; lag < len(x); lag++ {
		c := 0.0
		for i := 0; i+lag < len(x); i++ {
			c += (x[i] - mean) * (x[i+lag] - mean)
		}
		c /= float64(len(x))

		tau += 2.0 * c / c0
		if float64(lag) >= sokalC*tau {
			break
		}
	}
	if tau < 1.0 {
		tau = 1.0
	}

	return tau, nil
}

// ESS converts a series length and autocorrelation time into an
// effective number of independent draws.
func ESS(n int, tau float64) float64 {
	if tau <= 0 {
		return 0
	}

	return float64(n) / tau
}

func meanVarColumn(rows [][]float64, col int) (mean, variance float64) {
	for _, row := range rows {
		mean += row[col]
	}
	mean /= float64(len(rows))

	for _, row := range rows {
		d := row[col] - mean
		variance += d * d
	}
	variance /= float64(len(rows) - 1)

	return mean, variance
}
