package spectrum

import (
	"fmt"

	"github.com/lowgrav/lgpd/npz"
)

// Archive field names, matching the Boltzmann-solver export convention.
const (
	fieldEll = "ell"
	fieldTT  = "cltt"
	fieldTE  = "clte"
	fieldEE  = "clee"
	fieldBB  = "clbb"
	fieldPP  = "clpp"
)

// LoadNPZ reads a baseline spectrum from an .npz archive with named fields
// ell, cltt, clte, clee and optional clbb, clpp, one row per multipole.
// Missing mandatory fields and mismatched column lengths are fatal; the
// error names the field and path.
func LoadNPZ(path string) (Spectrum, error) {
	arrays, err := npz.ReadFile(path)
	if err != nil {
		return Spectrum{}, err
	}

	required := []string{fieldEll, fieldTT, fieldTE, fieldEE}
	for _, name := range required {
		if _, ok := arrays[name]; !ok {
			return Spectrum{}, fmt.Errorf("%w: %s in %s", ErrMissingField, name, path)
		}
	}

	s := Spectrum{
		Ell: arrays[fieldEll].Data,
		TT:  arrays[fieldTT].Data,
		TE:  arrays[fieldTE].Data,
		EE:  arrays[fieldEE].Data,
	}
	if arr, ok := arrays[fieldBB]; ok {
		s.BB = arr.Data
	}
	if arr, ok := arrays[fieldPP]; ok {
		s.PP = arr.Data
	}

	if err := s.Validate(); err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// SaveNPZ writes a spectrum as an .npz archive with the same field naming.
func SaveNPZ(path string, s Spectrum) error {
	if err := s.Validate(); err != nil {
		return err
	}

	arrays := map[string]npz.Array{
		fieldEll: npz.Vector(s.Ell),
		fieldTT:  npz.Vector(s.TT),
		fieldTE:  npz.Vector(s.TE),
		fieldEE:  npz.Vector(s.EE),
	}
	if s.BB != nil {
		arrays[fieldBB] = npz.Vector(s.BB)
	}
	if s.PP != nil {
		arrays[fieldPP] = npz.Vector(s.PP)
	}

	return npz.WriteFile(path, arrays)
}
