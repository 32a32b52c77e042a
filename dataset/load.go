package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Bandpowers are binned CMB measurements: band center ℓ, bandpower Dl in
// μK², and 1σ uncertainty. Columns are index-aligned and immutable once
// loaded.
type Bandpowers struct {
	Ell   []float64
	Dl    []float64
	Sigma []float64
}

// Len returns the number of bands.
func (b Bandpowers) Len() int { return len(b.Ell) }

// Series are redshift-ordered measurements (BAO DV/rd, SNe distance
// modulus, growth fσ8): redshift, observable, 1σ uncertainty.
type Series struct {
	Z     []float64
	Obs   []float64
	Sigma []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Z) }

// Covariance is a dense square covariance matrix in row-major order.
type Covariance struct {
	N    int
	Data []float64 // len N*N
}

// At returns C[i,j].
func (c Covariance) At(i, j int) float64 { return c.Data[i*c.N+j] }

// LoadBandpowers reads a binned bandpower CSV (header ell,Dl,sigma).
func LoadBandpowers(path string) (Bandpowers, error) {
	cols, err := loadThreeColumns(path)
	if err != nil {
		return Bandpowers{}, err
	}

	return Bandpowers{Ell: cols[0], Dl: cols[1], Sigma: cols[2]}, nil
}

// LoadSeries reads a redshift-series CSV (header z,<observable>,sigma).
func LoadSeries(path string) (Series, error) {
	cols, err := loadThreeColumns(path)
	if err != nil {
		return Series{}, err
	}

	return Series{Z: cols[0], Obs: cols[1], Sigma: cols[2]}, nil
}

// loadThreeColumns reads the shared 3-column numeric layout with one
// header row, enforcing the validation policy (see package doc).
func loadThreeColumns(path string) ([3][]float64, error) {
	var cols [3][]float64

	rows, err := readCSV(path, 1)
	if err != nil {
		return cols, err
	}
	if len(rows) == 0 {
		return cols, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	for i, row := range rows {
		if len(row) != 3 {
			return cols, fmt.Errorf("%w: %s row %d: want 3 columns, got %d", ErrBadRow, path, i+2, len(row))
		}
		var vals [3]float64
		for j, cell := range row {
			v, convErr := strconv.ParseFloat(cell, 64)
			if convErr != nil {
				return cols, fmt.Errorf("%w: %s row %d: %q is not numeric", ErrBadRow, path, i+2, cell)
			}
			vals[j] = v
		}
		if vals[2] <= 0 {
			return cols, fmt.Errorf("%w: %s row %d: sigma=%g", ErrNonPositiveSigma, path, i+2, vals[2])
		}
		for j := range vals {
			cols[j] = append(cols[j], vals[j])
		}
	}

	return cols, nil
}

// LoadCovariance reads a headerless square matrix CSV.
func LoadCovariance(path string) (Covariance, error) {
	rows, err := readCSV(path, 0)
	if err != nil {
		return Covariance{}, err
	}
	if len(rows) == 0 {
		return Covariance{}, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	n := len(rows)
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Covariance{}, fmt.Errorf("%w: %s row %d: %d columns for %d rows", ErrNonSquare, path, i+1, len(row), n)
		}
		for _, cell := range row {
			v, convErr := strconv.ParseFloat(cell, 64)
			if convErr != nil {
				return Covariance{}, fmt.Errorf("%w: %s row %d: %q is not numeric", ErrBadRow, path, i+1, cell)
			}
			data = append(data, v)
		}
	}

	return Covariance{N: n, Data: data}, nil
}

// readCSV loads all records, skipping the first skipRows rows. A missing
// file maps to ErrMissingFile with the path attached.
func readCSV(path string, skipRows int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}

		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.TrimLeadingSpace = true
	rd.FieldsPerRecord = -1 // row widths validated by the callers

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parsing %s: %w", path, err)
	}
	if skipRows > len(records) {
		skipRows = len(records)
	}

	return records[skipRows:], nil
}
