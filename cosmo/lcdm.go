package cosmo

import "math"

// Physical constants and fixed scales.
const (
	// SpeedOfLight in km/s.
	SpeedOfLight = 299792.458

	// SoundHorizon is the effective drag-epoch sound horizon rd in Mpc used
	// by DVOverRd. Treated as a fixed external constant, not a fit parameter.
	SoundHorizon = 147.1
)

// Default ΛCDM background (Planck-like).
const (
	DefaultH0     = 67.74
	DefaultOmegaM = 0.315
	DefaultOmegaB = 0.049
	DefaultOmegaK = 0.0
	DefaultTcmb   = 2.7255
)

// LCDM is a flat-or-curved ΛCDM background expansion history. The struct is
// a plain value: derived quantities are computed on demand.
type LCDM struct {
	H0     float64 // km/s/Mpc
	OmegaM float64
	OmegaB float64
	OmegaK float64
	Tcmb   float64 // Kelvin
}

// DefaultLCDM returns the documented default background.
func DefaultLCDM() LCDM {
	return LCDM{H0: DefaultH0, OmegaM: DefaultOmegaM, OmegaB: DefaultOmegaB, OmegaK: DefaultOmegaK, Tcmb: DefaultTcmb}
}

// LittleH returns h = H0/100.
func (c LCDM) LittleH() float64 { return c.H0 / 100.0 }

// OmegaDE returns the dark-energy density parameter 1 − Ωm − Ωk.
func (c LCDM) OmegaDE() float64 { return 1.0 - c.OmegaM - c.OmegaK }

// WEff returns the CPL equation of state w(a) = w0 + wa(1−a).
func WEff(a, w0, wa float64) float64 { return w0 + wa*(1.0-a) }

// E returns the dimensionless expansion rate
//
//	E(z) = sqrt(Ωm(1+z)³ + Ωk(1+z)² + ΩDE(1+z)^{3(1+w)})
//
// for a constant equation of state w (w = −1 recovers ΛCDM).
func (c LCDM) E(z, w float64) float64 {
	zp := 1.0 + z

	return math.Sqrt(c.OmegaM*zp*zp*zp + c.OmegaK*zp*zp + c.OmegaDE()*math.Pow(zp, 3.0*(1.0+w)))
}

// H returns the expansion rate H(z) = H0·E(z) in km/s/Mpc.
func (c LCDM) H(z, w float64) float64 { return c.H0 * c.E(z, w) }

// ComovingDistance returns the transverse comoving distance to redshift z
// in Mpc, integrating 1/E by adaptive Simpson quadrature and applying the
// sinh/sin curvature branch when Ωk ≠ 0.
func (c LCDM) ComovingDistance(z, w float64) float64 {
	chi := simpsonAdaptive(func(zp float64) float64 {
		return 1.0 / c.E(zp, w)
	}, 0, z, quadTol) * SpeedOfLight / c.H0

	if c.OmegaK == 0 {
		return chi
	}

	sqrtOk := math.Sqrt(math.Abs(c.OmegaK))
	if c.OmegaK > 0 {
		return math.Sinh(sqrtOk*chi) / sqrtOk
	}

	return math.Sin(sqrtOk*chi) / sqrtOk
}

// AngularDiameterDistance returns DA(z) = DC(z)/(1+z) in Mpc.
func (c LCDM) AngularDiameterDistance(z, w float64) float64 {
	return c.ComovingDistance(z, w) / (1.0 + z)
}

// LuminosityDistance returns DL(z) = (1+z)·DC(z) in Mpc.
func (c LCDM) LuminosityDistance(z, w float64) float64 {
	return (1.0 + z) * c.ComovingDistance(z, w)
}

// DistanceModulus returns μ(z) = 5·log10(DL/Mpc) + 25, the SNe observable.
// DL is floored at a small positive value so z→0 stays finite.
func (c LCDM) DistanceModulus(z float64) float64 {
	dl := math.Max(c.LuminosityDistance(z, -1), minLuminosityDistance)

	return 5.0*math.Log10(dl) + 25.0
}

// DVOverRd returns the BAO volume-averaged distance ratio
//
//	DV(z)/rd, DV = (c·z·DC²/H)^(1/3)
//
// with the fixed effective sound horizon SoundHorizon. A simplified DV,
// adequate for relative χ² comparisons, not absolute calibration.
func (c LCDM) DVOverRd(z float64) float64 {
	chi := c.ComovingDistance(z, -1)
	dv := math.Cbrt(SpeedOfLight * z * chi * chi / c.H(z, -1))

	return dv / SoundHorizon
}

const minLuminosityDistance = 1e-6
