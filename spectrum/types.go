package spectrum

import "math"

// Channel names a spectrum column.
type Channel string

// Spectrum channels. TT/TE/EE are mandatory; BB and PP are optional.
const (
	TT Channel = "TT"
	TE Channel = "TE"
	EE Channel = "EE"
	BB Channel = "BB"
	PP Channel = "PP"
)

// Spectrum is an ℓ-ordered set of C_ell columns covering ℓ = 2…ℓmax. It is
// treated as read-only once built: Modulate returns a fresh copy and never
// touches its input.
type Spectrum struct {
	Ell []float64
	TT  []float64
	TE  []float64
	EE  []float64
	BB  []float64 // optional, nil when absent
	PP  []float64 // optional, nil when absent
}

// Len returns the number of multipoles.
func (s Spectrum) Len() int { return len(s.Ell) }

// Channels lists the channels present, in canonical order.
func (s Spectrum) Channels() []Channel {
	chs := []Channel{TT, TE, EE}
	if s.BB != nil {
		chs = append(chs, BB)
	}
	if s.PP != nil {
		chs = append(chs, PP)
	}

	return chs
}

// Channel returns the C_ell column for ch, nil if absent.
func (s Spectrum) Channel(ch Channel) []float64 {
	switch ch {
	case TT:
		return s.TT
	case TE:
		return s.TE
	case EE:
		return s.EE
	case BB:
		return s.BB
	case PP:
		return s.PP
	}

	return nil
}

// setChannel stores col under ch on the (copied) spectrum.
func (s *Spectrum) setChannel(ch Channel, col []float64) {
	switch ch {
	case TT:
		s.TT = col
	case TE:
		s.TE = col
	case EE:
		s.EE = col
	case BB:
		s.BB = col
	case PP:
		s.PP = col
	}
}

// Validate checks the structural invariants: a non-empty grid and equal
// column lengths for every present channel.
func (s Spectrum) Validate() error {
	if s.Len() == 0 {
		return ErrEmptySpectrum
	}
	for _, ch := range s.Channels() {
		if len(s.Channel(ch)) != s.Len() {
			return ErrLengthMismatch
		}
	}

	return nil
}

// dlEpsilon regularizes ℓ(ℓ+1) in the Dl→Cl inverse so ℓ=0 rows, if ever
// present in external data, stay finite.
const dlEpsilon = 1e-12

// ClToDl converts C_ell to Dl = ℓ(ℓ+1)C_ell/2π elementwise.
func ClToDl(ell, cl []float64) []float64 {
	out := make([]float64, len(cl))
	for i := range cl {
		out[i] = ell[i] * (ell[i] + 1.0) * cl[i] / (2.0 * math.Pi)
	}

	return out
}

// DlToCl converts Dl back to C_ell = 2π·Dl/(ℓ(ℓ+1)).
func DlToCl(ell, dl []float64) []float64 {
	out := make([]float64, len(dl))
	for i := range dl {
		out[i] = 2.0 * math.Pi * dl[i] / (ell[i]*(ell[i]+1.0) + dlEpsilon)
	}

	return out
}
