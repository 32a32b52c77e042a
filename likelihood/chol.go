package likelihood

import (
	"math"

	"github.com/lowgrav/lgpd/dataset"
)

// covChi2 computes rᵀC⁻¹r without inverting C: factor C = LLᵀ, solve
// Ly = r by forward substitution, and return |y|², since
// rᵀC⁻¹r = (L⁻¹r)ᵀ(L⁻¹r).
func covChi2(resid []float64, cov dataset.Covariance) (float64, error) {
	lower, err := cholesky(cov)
	if err != nil {
		return 0, err
	}

	n := cov.N
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := resid[i]
		for k := 0; k < i; k++ {
			sum -= lower[i*n+k] * y[k]
		}
		y[i] = sum / lower[i*n+i]
	}

	var chi2 float64
	for _, v := range y {
		chi2 += v * v
	}

	return chi2, nil
}

// cholesky returns the lower-triangular factor of a symmetric
// positive-definite matrix in row-major order, or
// ErrNotPositiveDefinite when a pivot is not strictly positive.
func cholesky(cov dataset.Covariance) ([]float64, error) {
	n := cov.N
	lower := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := cov.At(i, j)
			for k := 0; k < j; k++ {
				sum -= lower[i*n+k] * lower[j*n+k]
			}

			if i == j {
				if sum <= 0 || math.IsNaN(sum) {
					return nil, ErrNotPositiveDefinite
				}
				lower[i*n+j] = math.Sqrt(sum)
			} else {
				lower[i*n+j] = sum / lower[j*n+j]
			}
		}
	}

	return lower, nil
}
