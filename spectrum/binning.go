package spectrum

// Toy bandpower error model: 5% of the band mean plus a small floor.
const (
	binSigmaFraction = 0.05
	binSigmaFloor    = 1.0
)

// BinChannel averages a Dl column into fixed-step ℓ bands and attaches the
// toy 5%-plus-floor uncertainties, producing synthetic bandpowers in the
// ell,Dl,sigma shape consumed by the binned likelihood. Empty bands are
// skipped; band centers are the mean ℓ of their members.
//
// Errors:
//   - ErrBadBinStep    — step ≤ 0.
//   - ErrEmptySpectrum — no multipoles.
//   - ErrLengthMismatch — dl length differs from the grid.
func BinChannel(ell, dl []float64, step int) (centers, means, sigmas []float64, err error) {
	if step <= 0 {
		return nil, nil, nil, ErrBadBinStep
	}
	if len(ell) == 0 {
		return nil, nil, nil, ErrEmptySpectrum
	}
	if len(dl) != len(ell) {
		return nil, nil, nil, ErrLengthMismatch
	}

	lo := ell[0]
	hi := ell[len(ell)-1]
	for lower := lo; lower < hi; lower += float64(step) {
		upper := lower + float64(step)

		var sumEll, sumDl float64
		var n int
		for i, l := range ell {
			// Last band is closed on the right so ℓmax is not dropped.
			if l >= lower && (l < upper || (upper >= hi && l == hi)) {
				sumEll += l
				sumDl += dl[i]
				n++
			}
		}
		if n == 0 {
			continue
		}

		mean := sumDl / float64(n)
		centers = append(centers, sumEll/float64(n))
		means = append(means, mean)
		sigmas = append(sigmas, binSigmaFraction*abs(mean)+binSigmaFloor)
	}

	return centers, means, sigmas, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
