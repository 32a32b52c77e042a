// Package cosmo provides the ΛCDM background expansion, comoving distance
// integrals and the linear growth factor D(a) with an optional μ(a)
// modification of the effective gravitational coupling.
//
// 🚀 What does cosmo compute?
//
//	  • E(z), H(z) — dimensionless and physical expansion rates, with an
//	    optional CPL dark-energy equation of state w(a) = w0 + wa(1−a)
//	  • Comoving, angular-diameter and luminosity distances (adaptive
//	    Simpson quadrature; open/closed curvature branches)
//	  • DistanceModulus(z) for SNe and DVOverRd(z) for BAO comparisons
//	  • GrowthModel — integrates
//	      D'' + [(3/a) + dlnH/dlna] D' = 1.5·Ωm(a)·(1+μ(a))·D/a²
//	    on an increasing scale-factor grid, normalized to D(1)=1
//	  • FSigma8(z) = f(z)·σ8·D(z), f = dlnD/dlna, for growth-rate data
//
// ⚙️ Usage:
//
//	lcdm := cosmo.DefaultLCDM()
//	dL := lcdm.LuminosityDistance(0.5)
//	gm := cosmo.GrowthModel{Cosmo: lcdm, MuOfA: func(a float64) float64 { return 0.1 }}
//	fs8, err := gm.FSigma8(0.3, 0.8)
//
// Everything is deterministic and allocation-light; distances are exact to
// the configured quadrature tolerance, growth to the fixed RK2 step size.
package cosmo
