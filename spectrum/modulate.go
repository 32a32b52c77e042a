package spectrum

import (
	"math"

	"github.com/lowgrav/lgpd/response"
)

// Modulation shape constants, fixed by the phenomenology rather than fit:
// lensing rescale applies above lensingEllMin; the μ contrast window turns
// on around ℓ~80 and saturates toward ℓ~1200.
const (
	lensingEllMin   = 300.0
	muWindowCenter  = 80.0
	muWindowWidth   = 80.0
	muWindowEllRef  = 1200.0
	muContrastScale = 0.2
)

// Modulate applies the LGPD transfer to a baseline spectrum and returns a
// fresh spectrum on the same ℓ grid with the same channel set.
//
// Per multipole, in Dl space:
//  1. every channel is multiplied by the decoherence damping envelope;
//  2. TT and EE above ℓ=300 are rescaled by the A_L-like lensing amplitude;
//  3. every channel gains the tanh-windowed μ contrast factor
//     1 + 0.2·μ0·w(ℓ).
//
// Guarantees: output length equals input length; identity parameters
// reproduce the input within 1e-12 relative tolerance; NaN or Inf in the
// output is reported as ErrNaNInf, never clamped.
func Modulate(base Spectrum, tr response.Transfer) (Spectrum, error) {
	if err := base.Validate(); err != nil {
		return Spectrum{}, err
	}

	n := base.Len()
	env := make([]float64, n)
	window := make([]float64, n)
	for i, l := range base.Ell {
		env[i] = tr.DampingEnvelope(l)
		window[i] = 0.5 * (1.0 + math.Tanh((l-muWindowCenter)/muWindowWidth)) *
			(1.0 - math.Exp(-(l/muWindowEllRef)*(l/muWindowEllRef)))
	}

	lensAmp := tr.LensingAmp()
	muToday := tr.MuTodayLargeScales()

	out := Spectrum{Ell: append([]float64(nil), base.Ell...)}
	for _, ch := range base.Channels() {
		dl := ClToDl(base.Ell, base.Channel(ch))
		for i, l := range base.Ell {
			dl[i] *= env[i]
			if (ch == TT || ch == EE) && l > lensingEllMin {
				dl[i] *= lensAmp
			}
			dl[i] *= 1.0 + muContrastScale*muToday*window[i]
		}
		out.setChannel(ch, DlToCl(base.Ell, dl))
	}

	if err := checkFinite(out); err != nil {
		return Spectrum{}, err
	}

	return out, nil
}

// checkFinite scans every channel for NaN/Inf.
func checkFinite(s Spectrum) error {
	for _, ch := range s.Channels() {
		for _, v := range s.Channel(ch) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}
