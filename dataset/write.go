package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteBandpowersCSV writes bandpowers in the canonical ell,Dl,sigma
// layout, the format LoadBandpowers reads back.
func WriteBandpowersCSV(path string, b Bandpowers) error {
	if len(b.Dl) != b.Len() || len(b.Sigma) != b.Len() {
		return fmt.Errorf("%w: %s: unequal column lengths", ErrBadRow, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ell", "Dl", "sigma"}); err != nil {
		f.Close()

		return fmt.Errorf("dataset: writing %s: %w", path, err)
	}
	for i := range b.Ell {
		row := []string{
			strconv.FormatFloat(b.Ell[i], 'g', -1, 64),
			strconv.FormatFloat(b.Dl[i], 'g', -1, 64),
			strconv.FormatFloat(b.Sigma[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()

			return fmt.Errorf("dataset: writing %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()

		return fmt.Errorf("dataset: flushing %s: %w", path, err)
	}

	return f.Close()
}
