package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lowgrav/lgpd/chaindb"
	"github.com/lowgrav/lgpd/dataset"
	"github.com/lowgrav/lgpd/diagnostics"
	"github.com/lowgrav/lgpd/mcmc"
	"github.com/lowgrav/lgpd/spectrum"
)

// offsetCheckpointer shifts step indices so a resumed run appends to the
// same row space instead of colliding with the recorded steps.
type offsetCheckpointer struct {
	run  *chaindb.Run
	base int
}

func (o offsetCheckpointer) SaveStep(step int, pos [][]float64, logp []float64) error {
	return o.run.SaveStep(o.base+step, pos, logp)
}

// executeFit drives one complete fit: load the baseline and observations,
// sample the posterior with checkpointing, and write the chain archive,
// diagnostics report, and resolved config under a tagged run directory.
// A non-empty resumeID restarts an interrupted run from its last
// recorded ensemble instead of the config's starting point.
func executeFit(ctx context.Context, cfg RunConfig, resumeID string) error {
	baseline, err := spectrum.LoadNPZ(cfg.Baseline)
	if err != nil {
		return err
	}

	repo := dataset.Repository{Root: cfg.DataDir}
	probes, err := loadProbes(repo, baseline)
	if err != nil {
		return err
	}
	logger.Infow("probes detected", "probes", probes.probeNames(), "data", cfg.DataDir)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", cfg.OutDir, err)
	}
	store, err := chaindb.Open(filepath.Join(cfg.OutDir, "runs.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := cfg.samplerOptions()
	posterior := mcmc.LogProbFunc(buildPosterior(cfg, probes))

	var (
		run  *chaindb.Run
		init [][]float64
	)
	if resumeID != "" {
		run, err = store.OpenRun(resumeID)
		if err != nil {
			return err
		}
		last, pos, _, err := run.LastStep()
		if err != nil {
			return err
		}
		init = pos
		opts.Checkpoint = offsetCheckpointer{run: run, base: last + 1}
		logger.Infow("resuming run", "run", run.ID, "from_step", last+1)
	} else {
		run, err = store.CreateRun(cfg.Name+"-"+uuid.NewString()[:8],
			opts.Walkers, len(paramNames), opts.Seed)
		if err != nil {
			return err
		}
		opts.Checkpoint = run
		logger.Infow("starting run", "run", run.ID,
			"walkers", opts.Walkers, "steps", opts.Steps, "seed", opts.Seed)
	}

	s, err := mcmc.New(posterior, len(paramNames), opts)
	if err != nil {
		return err
	}
	if init == nil {
		init = s.InitBall(cfg.initTheta(), cfg.bounds().Clip)
	}

	runDir := filepath.Join(cfg.OutDir, run.ID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("create run directory %s: %w", runDir, err)
	}
	if err := writeConfigSnapshot(filepath.Join(runDir, "run.yaml"), cfg); err != nil {
		return err
	}

	chain, err := s.Run(ctx, init)
	if setErr := run.SetState(s.State().String()); setErr != nil && err == nil {
		err = setErr
	}
	if err != nil {
		return err
	}

	chainPath := filepath.Join(runDir, "chain.npz")
	if err := chain.SaveNPZ(chainPath, opts.Burn); err != nil {
		return err
	}

	thetas, logp, err := chain.Flatten(opts.Burn)
	if err != nil {
		return err
	}
	report, err := diagnostics.BuildReport(thetas, logp)
	if err != nil {
		return err
	}
	reportPath := filepath.Join(runDir, "report.json")
	if err := report.WriteJSON(reportPath); err != nil {
		return err
	}

	logger.Infow("fit complete",
		"run", run.ID,
		"chain", chainPath,
		"report", reportPath,
		"converged", report.Converged,
		"best_logp", report.LogProb.Max,
		"best_theta", report.BestTheta,
	)

	return nil
}

// writeConfigSnapshot records the fully resolved run file next to the
// outputs so a run directory is self-describing.
func writeConfigSnapshot(path string, cfg RunConfig) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config snapshot: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write config snapshot %s: %w", path, err)
	}

	return nil
}
