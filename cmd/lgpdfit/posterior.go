package main

import (
	"fmt"
	"strings"

	"github.com/lowgrav/lgpd/cosmo"
	"github.com/lowgrav/lgpd/dataset"
	"github.com/lowgrav/lgpd/likelihood"
	"github.com/lowgrav/lgpd/response"
	"github.com/lowgrav/lgpd/spectrum"
)

// Observation file names the fit auto-detects under the data directory.
const (
	fileCMBTT     = "cmb_tt.csv"
	fileCMBTE     = "cmb_te.csv"
	fileCMBEE     = "cmb_ee.csv"
	fileCMBTTCov  = "cmb_tt_cov.csv"
	fileBAO       = "bao_dv.csv"
	fileSNe       = "sne_mu.csv"
	fileGrowth    = "growth_fs8.csv"
	muGrowthScale = 0.01
)

// probeData is everything the posterior closure needs, loaded once.
type probeData struct {
	baseline spectrum.Spectrum

	cmb    map[spectrum.Channel]dataset.Bandpowers
	ttCov  *dataset.Covariance
	bao    *dataset.Series
	sne    *dataset.Series
	growth *dataset.Series
}

// loadProbes reads every observation file present under the repository
// root. At least one probe must be found.
func loadProbes(repo dataset.Repository, baseline spectrum.Spectrum) (*probeData, error) {
	pd := &probeData{
		baseline: baseline,
		cmb:      make(map[spectrum.Channel]dataset.Bandpowers),
	}

	cmbFiles := map[spectrum.Channel]string{
		spectrum.TT: fileCMBTT,
		spectrum.TE: fileCMBTE,
		spectrum.EE: fileCMBEE,
	}
	for ch, name := range cmbFiles {
		if !repo.Has(name) {
			continue
		}
		bp, err := repo.LoadBandpowers(name)
		if err != nil {
			return nil, err
		}
		pd.cmb[ch] = bp
	}

	if repo.Has(fileCMBTTCov) {
		if _, ok := pd.cmb[spectrum.TT]; !ok {
			return nil, fmt.Errorf("%s present without %s", fileCMBTTCov, fileCMBTT)
		}
		cov, err := repo.LoadCovariance(fileCMBTTCov)
		if err != nil {
			return nil, err
		}
		pd.ttCov = &cov
	}

	series := []struct {
		name string
		dst  **dataset.Series
	}{
		{fileBAO, &pd.bao},
		{fileSNe, &pd.sne},
		{fileGrowth, &pd.growth},
	}
	for _, s := range series {
		if !repo.Has(s.name) {
			continue
		}
		sr, err := repo.LoadSeries(s.name)
		if err != nil {
			return nil, err
		}
		*s.dst = &sr
	}

	if len(pd.cmb) == 0 && pd.bao == nil && pd.sne == nil && pd.growth == nil {
		return nil, fmt.Errorf("no observation files found under %s", repo.Root)
	}

	return pd, nil
}

// probeNames lists what was detected, for the run log.
func (pd *probeData) probeNames() []string {
	var names []string
	for _, ch := range []spectrum.Channel{spectrum.TT, spectrum.TE, spectrum.EE} {
		if _, ok := pd.cmb[ch]; ok {
			names = append(names, "cmb_"+strings.ToLower(string(ch)))
		}
	}
	if pd.bao != nil {
		names = append(names, "bao")
	}
	if pd.sne != nil {
		names = append(names, "sne")
	}
	if pd.growth != nil {
		names = append(names, "growth")
	}

	return names
}

// transferFrom maps a sampled point onto the response model, holding
// every shape parameter at its documented default.
func transferFrom(theta []float64) (response.Transfer, response.CondensateParams, error) {
	cond := response.DefaultCondensateParams()
	cond.Mu0 = theta[0]

	elas := response.DefaultElasticityParams()
	elas.Sigma0 = theta[1]

	dec := response.DefaultDecoherenceParams()
	dec.Log10Gamma0 = theta[2]
	dec.XiDamp = theta[3]

	tr, err := response.NewTransfer(dec, cond, elas)

	return tr, cond, err
}

// logLike evaluates the combined log-likelihood at one parameter point.
func (pd *probeData) logLike(theta []float64, lcdm cosmo.LCDM, sigma8 float64) (float64, error) {
	tr, cond, err := transferFrom(theta)
	if err != nil {
		return 0, err
	}

	mod, err := spectrum.Modulate(pd.baseline, tr)
	if err != nil {
		return 0, err
	}

	var acc likelihood.Accumulator
	for ch, bp := range pd.cmb {
		modelDl := spectrum.ClToDl(mod.Ell, mod.Channel(ch))
		name := "cmb_" + strings.ToLower(string(ch))
		if ch == spectrum.TT && pd.ttCov != nil {
			err = acc.AddBandpowersCov(name, bp, *pd.ttCov, mod.Ell, modelDl)
		} else {
			err = acc.AddBandpowers(name, bp, mod.Ell, modelDl)
		}
		if err != nil {
			return 0, err
		}
	}

	if pd.bao != nil {
		if err := acc.AddBAO(*pd.bao, func(z float64) (float64, error) {
			return lcdm.DVOverRd(z), nil
		}); err != nil {
			return 0, err
		}
	}
	if pd.sne != nil {
		if err := acc.AddSNe(*pd.sne, func(z float64) (float64, error) {
			return lcdm.DistanceModulus(z), nil
		}); err != nil {
			return 0, err
		}
	}
	if pd.growth != nil {
		gm := cosmo.GrowthModel{
			Cosmo: lcdm,
			MuOfA: func(a float64) float64 {
				return cond.Mu(muGrowthScale, 1.0/a-1.0)
			},
		}
		if err := acc.AddGrowth(*pd.growth, func(z float64) (float64, error) {
			return gm.FSigma8(z, sigma8)
		}); err != nil {
			return 0, err
		}
	}

	return acc.LogLike(), nil
}

// buildPosterior wires the box prior and the multiprobe likelihood into
// one log-posterior.
func buildPosterior(cfg RunConfig, pd *probeData) likelihood.LogProbFunc {
	lcdm := cosmo.DefaultLCDM()

	return likelihood.NewLogPosterior(cfg.bounds(), func(theta []float64) (float64, error) {
		return pd.logLike(theta, lcdm, cfg.Sigma8)
	})
}
