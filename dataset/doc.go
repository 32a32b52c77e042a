// Package dataset loads the observation files the likelihood compares
// against: binned CMB bandpowers, BAO, SNe and growth-rate points, and
// optional covariance matrices.
//
// 🚀 File formats (comma-separated, one header row unless noted):
//
//	bandpowers  — ell, Dl, sigma
//	z-series    — z, <observable>, sigma   (BAO DV/rd, SNe μ, growth fσ8)
//	covariance  — headerless N×N matrix
//
// ✨ Validation policy — fail loudly at load time:
//   - missing files, short rows, non-numeric cells: fatal, error carries
//     the offending path (and row where known)
//   - non-positive sigma: fatal (a zero variance would divide the χ²)
//   - non-square covariance: fatal
//
// Nothing is skipped or defaulted; an absent dataset is expressed by not
// loading it, never by loading it loosely.
//
// ⚙️ Usage:
//
//	repo := dataset.Repository{Root: "data"}
//	if repo.Has("planck_tt_binned.csv") {
//		tt, err := repo.LoadBandpowers("planck_tt_binned.csv")
//		...
//	}
package dataset
