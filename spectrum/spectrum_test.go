package spectrum_test

import (
	"path/filepath"
	"testing"

	"github.com/lowgrav/lgpd/npz"
	"github.com/lowgrav/lgpd/response"
	"github.com/lowgrav/lgpd/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityTransfer(t *testing.T) response.Transfer {
	t.Helper()
	tr, err := response.NewTransfer(
		response.DefaultDecoherenceParams(),
		response.DefaultCondensateParams(),
		response.DefaultElasticityParams(),
	)
	require.NoError(t, err)

	return tr
}

// TestModulate_IdentityRecoversBaseline checks the ΛCDM recovery contract:
// with every amplitude at zero, modulation reproduces the baseline to well
// below the likelihood noise floor.
func TestModulate_IdentityRecoversBaseline(t *testing.T) {
	base := spectrum.Synthetic(500)

	mod, err := spectrum.Modulate(base, identityTransfer(t))
	require.NoError(t, err)
	require.Equal(t, base.Len(), mod.Len(), "length must be preserved")

	for _, ch := range base.Channels() {
		in, out := base.Channel(ch), mod.Channel(ch)
		for i := range in {
			assert.InDelta(t, in[i], out[i], 1e-12*(1.0+absf(in[i])),
				"channel %s must be untouched at ell=%g", ch, base.Ell[i])
		}
	}
}

// TestModulate_PreservesShape verifies grid and channel set survive a
// non-trivial modulation.
func TestModulate_PreservesShape(t *testing.T) {
	base := spectrum.Synthetic(300)

	dec := response.DefaultDecoherenceParams()
	dec.XiDamp = 0.2
	elas := response.DefaultElasticityParams()
	elas.Sigma0 = 0.1
	cond := response.DefaultCondensateParams()
	cond.Mu0 = 0.1
	tr, err := response.NewTransfer(dec, cond, elas)
	require.NoError(t, err)

	mod, err := spectrum.Modulate(base, tr)
	require.NoError(t, err)
	assert.Equal(t, base.Ell, mod.Ell)
	assert.Equal(t, base.Channels(), mod.Channels())
	assert.NoError(t, mod.Validate())
}

// TestModulate_DampingMonotonicity verifies that raising ξ_damp strictly
// lowers TT power at every ℓ above 500.
func TestModulate_DampingMonotonicity(t *testing.T) {
	base := spectrum.Synthetic(2000)
	cond := response.DefaultCondensateParams()
	elas := response.DefaultElasticityParams()

	prevTT := spectrum.ClToDl(base.Ell, base.TT)
	for _, xi := range []float64{0.05, 0.15, 0.4} {
		dec := response.DefaultDecoherenceParams()
		dec.XiDamp = xi
		tr, err := response.NewTransfer(dec, cond, elas)
		require.NoError(t, err)

		mod, err := spectrum.Modulate(base, tr)
		require.NoError(t, err)
		dlTT := spectrum.ClToDl(mod.Ell, mod.TT)

		for i, l := range mod.Ell {
			if l <= 500 {
				continue
			}
			assert.Less(t, absf(dlTT[i]), absf(prevTT[i]),
				"more damping must mean less high-ell power at ell=%g", l)
		}
		prevTT = dlTT
	}
}

// TestModulate_RejectsMalformed verifies structural validation runs before
// any modulation work.
func TestModulate_RejectsMalformed(t *testing.T) {
	_, err := spectrum.Modulate(spectrum.Spectrum{}, identityTransfer(t))
	assert.ErrorIs(t, err, spectrum.ErrEmptySpectrum)

	bad := spectrum.Synthetic(100)
	bad.EE = bad.EE[:10]
	_, err = spectrum.Modulate(bad, identityTransfer(t))
	assert.ErrorIs(t, err, spectrum.ErrLengthMismatch)
}

// TestArchive_RoundTrip saves and reloads a spectrum through the npz codec.
func TestArchive_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.npz")
	in := spectrum.Synthetic(128)
	require.NoError(t, spectrum.SaveNPZ(path, in))

	out, err := spectrum.LoadNPZ(path)
	require.NoError(t, err)
	assert.Equal(t, in.Ell, out.Ell)
	assert.Equal(t, in.TT, out.TT)
	assert.Equal(t, in.TE, out.TE)
	assert.Equal(t, in.EE, out.EE)
	assert.Nil(t, out.BB, "absent channel must stay absent")
}

// TestLoadNPZ_MissingField verifies a truncated archive fails loudly with
// the missing field named.
func TestLoadNPZ_MissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.npz")
	s := spectrum.Synthetic(64)
	require.NoError(t, npz.WriteFile(path, map[string]npz.Array{
		"ell":  npz.Vector(s.Ell),
		"cltt": npz.Vector(s.TT),
		"clte": npz.Vector(s.TE),
		// clee deliberately absent
	}))

	_, err := spectrum.LoadNPZ(path)
	assert.ErrorIs(t, err, spectrum.ErrMissingField)
	assert.Contains(t, err.Error(), "clee")

	_, err = spectrum.LoadNPZ(filepath.Join(t.TempDir(), "absent.npz"))
	require.Error(t, err, "missing archive must fail loudly")
}

// TestBinChannel_Bands verifies band centers, means and the positive toy
// uncertainties.
func TestBinChannel_Bands(t *testing.T) {
	base := spectrum.Synthetic(200)
	dl := spectrum.ClToDl(base.Ell, base.TT)

	centers, means, sigmas, err := spectrum.BinChannel(base.Ell, dl, 30)
	require.NoError(t, err)
	require.NotEmpty(t, centers)
	require.Len(t, means, len(centers))
	require.Len(t, sigmas, len(centers))

	for i := range centers {
		assert.Greater(t, sigmas[i], 0.0, "band sigma must be positive")
		if i > 0 {
			assert.Greater(t, centers[i], centers[i-1], "band centers must increase")
		}
	}

	_, _, _, err = spectrum.BinChannel(base.Ell, dl, 0)
	assert.ErrorIs(t, err, spectrum.ErrBadBinStep)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
