package dataset

import (
	"os"
	"path/filepath"
)

// Repository roots all observation files at a single data directory,
// mirroring the layout convention of the fitting scripts. The zero value
// resolves names against the working directory.
type Repository struct {
	Root string
}

// Path resolves a file name against the repository root.
func (r Repository) Path(name string) string {
	return filepath.Join(r.Root, name)
}

// Has reports whether a named file exists, for multiprobe auto-detection.
func (r Repository) Has(name string) bool {
	_, err := os.Stat(r.Path(name))

	return err == nil
}

// LoadBandpowers loads binned CMB bandpowers (ell, Dl, sigma) by name.
func (r Repository) LoadBandpowers(name string) (Bandpowers, error) {
	return LoadBandpowers(r.Path(name))
}

// LoadSeries loads a redshift series (z, observable, sigma) by name.
func (r Repository) LoadSeries(name string) (Series, error) {
	return LoadSeries(r.Path(name))
}

// LoadCovariance loads a headerless N×N covariance matrix by name.
func (r Repository) LoadCovariance(name string) (Covariance, error) {
	return LoadCovariance(r.Path(name))
}
