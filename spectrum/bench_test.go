package spectrum_test

import (
	"testing"

	"github.com/lowgrav/lgpd/response"
	"github.com/lowgrav/lgpd/spectrum"
)

// BenchmarkModulate measures one full-spectrum modulation, the inner-loop
// cost of every likelihood evaluation.
func BenchmarkModulate(b *testing.B) {
	base := spectrum.Synthetic(2500)

	dec := response.DefaultDecoherenceParams()
	dec.XiDamp = 0.05
	cond := response.DefaultCondensateParams()
	cond.Mu0 = 0.1
	elas := response.DefaultElasticityParams()
	elas.Sigma0 = 0.1

	tr, err := response.NewTransfer(dec, cond, elas)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectrum.Modulate(base, tr); err != nil {
			b.Fatal(err)
		}
	}
}
