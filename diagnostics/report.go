package diagnostics

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogProbStats summarizes the log-probability trace of a chain.
type LogProbStats struct {
	Mean      float64 `json:"mean"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	BestIndex int     `json:"best_index"`
}

// Report is the serializable convergence summary for one chain.
type Report struct {
	NSamples  int          `json:"n_samples"`
	NParams   int          `json:"n_params"`
	SplitRHat []float64    `json:"split_rhat"`
	Tau       []float64    `json:"autocorr_time"`
	ESS       []float64    `json:"ess"`
	Converged bool         `json:"converged"`
	Threshold float64      `json:"rhat_threshold"`
	LogProb   LogProbStats `json:"logprob"`
	BestTheta []float64    `json:"best_theta"`
}

// BuildReport computes the full diagnostic suite for a flattened chain.
func BuildReport(samples [][]float64, logp []float64) (*Report, error) {
	if len(samples) != len(logp) {
		return nil, fmt.Errorf("%w: %d samples vs %d logprob values",
			ErrDimensionMismatch, len(samples), len(logp))
	}

	rhat, err := SplitRHat(samples)
	if err != nil {
		return nil, err
	}
	dim := len(samples[0])

	tau := make([]float64, dim)
	ess := make([]float64, dim)
	series := make([]float64, len(samples))
	for p := 0; p < dim; p++ {
		for i, row := range samples {
			series[i] = row[p]
		}
		t, err := AutocorrTime(series)
		if err != nil {
			return nil, err
		}
		tau[p] = t
		ess[p] = ESS(len(samples), t)
	}

	stats := LogProbStats{Min: math.Inf(1), Max: math.Inf(-1)}
	for i, lp := range logp {
		stats.Mean += lp
		if lp < stats.Min {
			stats.Min = lp
		}
		if lp > stats.Max {
			stats.Max = lp
			stats.BestIndex = i
		}
	}
	stats.Mean /= float64(len(logp))

	best := make([]float64, dim)
	copy(best, samples[stats.BestIndex])

	return &Report{
		NSamples:  len(samples),
		NParams:   dim,
		SplitRHat: rhat,
		Tau:       tau,
		ESS:       ess,
		Converged: Converged(rhat, DefaultRHatThreshold),
		Threshold: DefaultRHatThreshold,
		LogProb:   stats,
		BestTheta: best,
	}, nil
}

// WriteJSON writes the report as indented JSON to path.
func (r *Report) WriteJSON(path string) error {
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("diagnostics: marshal report: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("diagnostics: write %s: %w", path, err)
	}

	return nil
}
