package spectrum

import "math"

// Synthetic toy-baseline shape constants: crude acoustic peaks from damped
// log-periodic oscillations. Exploration and demos only.
const (
	synthTTAmp = 1000.0
	synthEEAmp = 50.0
	synthTEAmp = 150.0
)

// Synthetic builds a toy baseline covering ℓ = 2…lmax, used by demo mode
// when no Boltzmann-solver baseline is on disk. The TT/TE/EE shapes mimic
// damped acoustic oscillations; TE flips sign log-periodically.
func Synthetic(lmax int) Spectrum {
	if lmax < 2 {
		lmax = 2
	}

	n := lmax - 1
	ell := make([]float64, n)
	dlTT := make([]float64, n)
	dlTE := make([]float64, n)
	dlEE := make([]float64, n)

	for i := 0; i < n; i++ {
		l := float64(i + 2)
		ell[i] = l
		logL := math.Log(l)

		dlTT[i] = synthTTAmp * math.Exp(-(l/2500.0)*(l/2500.0)) * (1.0 + 0.25*math.Sin(logL*3.5))
		dlEE[i] = synthEEAmp * math.Exp(-(l/1800.0)*(l/1800.0)) * (1.0 + 0.2*math.Sin(logL*3.2+0.5))

		sign := 1.0
		if math.Sin(logL) < 0 {
			sign = -1.0
		}
		dlTE[i] = synthTEAmp * math.Exp(-(l/2200.0)*(l/2200.0)) * (1.0 + 0.2*math.Sin(logL*3.4+0.3)) * sign
	}

	return Spectrum{
		Ell: ell,
		TT:  DlToCl(ell, dlTT),
		TE:  DlToCl(ell, dlTE),
		EE:  DlToCl(ell, dlEE),
	}
}
