package likelihood

// Part is one independent dataset's contribution: its χ² and the number of
// points that entered it.
type Part struct {
	Name string
	Chi2 float64
	N    int
}

// Accumulator collects independent χ² parts. The zero value is ready to
// use; an accumulator with no parts has χ² = 0 and log-likelihood 0, which
// is how absent datasets contribute nothing.
type Accumulator struct {
	parts []Part
}

// add records a named contribution.
func (a *Accumulator) add(name string, chi2 float64, n int) {
	a.parts = append(a.parts, Part{Name: name, Chi2: chi2, N: n})
}

// Parts returns the recorded contributions in insertion order.
func (a *Accumulator) Parts() []Part { return a.parts }

// Summary returns the total χ² and combined degrees-of-freedom count.
func (a *Accumulator) Summary() (chi2 float64, dof int) {
	for _, p := range a.parts {
		chi2 += p.Chi2
		dof += p.N
	}

	return chi2, dof
}

// LogLike returns −χ²/2 over all recorded parts.
func (a *Accumulator) LogLike() float64 {
	chi2, _ := a.Summary()

	return -0.5 * chi2
}
