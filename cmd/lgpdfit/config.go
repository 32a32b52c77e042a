package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lowgrav/lgpd/likelihood"
	"github.com/lowgrav/lgpd/mcmc"
)

// paramNames fixes the sampled parameter order everywhere: chains,
// checkpoints, and reports all use this layout.
var paramNames = []string{"mu0", "sigma0", "log10_gamma0", "xi_damp"}

// PriorConfig is one parameter's box prior and starting point.
type PriorConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Init float64 `yaml:"init"`
}

// SamplerConfig mirrors the sampler options in the run file.
type SamplerConfig struct {
	Walkers    int     `yaml:"walkers"`
	Steps      int     `yaml:"steps"`
	Burn       int     `yaml:"burn"`
	StretchA   float64 `yaml:"stretch_a"`
	Seed       int64   `yaml:"seed"`
	InitSpread float64 `yaml:"init_spread"`
}

// RunConfig is the YAML run file consumed by `lgpdfit fit`.
type RunConfig struct {
	Name     string                 `yaml:"name"`
	Baseline string                 `yaml:"baseline"`
	DataDir  string                 `yaml:"data"`
	OutDir   string                 `yaml:"out"`
	Sigma8   float64                `yaml:"sigma8"`
	Sampler  SamplerConfig          `yaml:"sampler"`
	Priors   map[string]PriorConfig `yaml:"priors"`
}

// defaultRunConfig carries the priors and sampler settings a run file
// may override piecemeal.
func defaultRunConfig() RunConfig {
	opts := mcmc.DefaultOptions()

	return RunConfig{
		Name:   "lgpd",
		OutDir: "runs",
		Sigma8: 0.8,
		Sampler: SamplerConfig{
			Walkers:    opts.Walkers,
			Steps:      opts.Steps,
			Burn:       opts.Burn,
			StretchA:   opts.StretchA,
			Seed:       opts.Seed,
			InitSpread: opts.InitSpread,
		},
		Priors: map[string]PriorConfig{
			"mu0":          {Min: -1, Max: 1, Init: 0},
			"sigma0":       {Min: -1, Max: 1, Init: 0},
			"log10_gamma0": {Min: -24, Max: -12, Init: -18},
			"xi_damp":      {Min: 0, Max: 0.2, Init: 0},
		},
	}
}

// loadRunConfig reads a YAML run file over the defaults.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()

	buf, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config %s: %w", path, err)
	}
	if cfg.Baseline == "" {
		return RunConfig{}, fmt.Errorf("run config %s: baseline is required", path)
	}
	for _, name := range paramNames {
		if _, ok := cfg.Priors[name]; !ok {
			return RunConfig{}, fmt.Errorf("run config %s: missing prior for %s", path, name)
		}
	}

	return cfg, nil
}

// bounds assembles the box prior in canonical parameter order.
func (c RunConfig) bounds() likelihood.Bounds {
	b := make(likelihood.Bounds, len(paramNames))
	for i, name := range paramNames {
		p := c.Priors[name]
		b[i] = likelihood.Interval{Lo: p.Min, Hi: p.Max}
	}

	return b
}

// initTheta assembles the starting point in canonical parameter order.
func (c RunConfig) initTheta() []float64 {
	theta := make([]float64, len(paramNames))
	for i, name := range paramNames {
		theta[i] = c.Priors[name].Init
	}

	return theta
}

// samplerOptions converts the run file section into sampler options.
func (c RunConfig) samplerOptions() mcmc.Options {
	return mcmc.Options{
		Walkers:    c.Sampler.Walkers,
		Steps:      c.Sampler.Steps,
		Burn:       c.Sampler.Burn,
		StretchA:   c.Sampler.StretchA,
		Seed:       c.Sampler.Seed,
		InitSpread: c.Sampler.InitSpread,
	}
}
