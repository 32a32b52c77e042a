package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lowgrav/lgpd/dataset"
	"github.com/lowgrav/lgpd/spectrum"
)

// Demo defaults: a small self-contained fit against synthetic bandpowers.
const (
	demoLmax    = 2000
	demoBinStep = 30
	demoWalkers = 16
)

func newDemoCmd() *cobra.Command {
	var (
		outDir string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a synthetic baseline and run a small end-to-end fit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create demo directory %s: %w", outDir, err)
			}

			base := spectrum.Synthetic(demoLmax)
			baselinePath := filepath.Join(outDir, "baseline.npz")
			if err := spectrum.SaveNPZ(baselinePath, base); err != nil {
				return err
			}
			logger.Infow("synthetic baseline written", "path", baselinePath, "lmax", demoLmax)

			// Bin the baseline itself into toy bandpowers: the identity
			// parameter point is then the exact posterior mode.
			files := map[spectrum.Channel]string{
				spectrum.TT: fileCMBTT,
				spectrum.TE: fileCMBTE,
				spectrum.EE: fileCMBEE,
			}
			for ch, name := range files {
				dl := spectrum.ClToDl(base.Ell, base.Channel(ch))
				centers, means, sigmas, err := spectrum.BinChannel(base.Ell, dl, demoBinStep)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, name)
				bp := dataset.Bandpowers{Ell: centers, Dl: means, Sigma: sigmas}
				if err := dataset.WriteBandpowersCSV(path, bp); err != nil {
					return err
				}
				logger.Infow("toy bandpowers written", "path", path, "bins", len(centers))
			}

			cfg := defaultRunConfig()
			cfg.Name = "demo"
			cfg.Baseline = baselinePath
			cfg.DataDir = outDir
			cfg.OutDir = outDir
			cfg.Sampler.Walkers = demoWalkers
			cfg.Sampler.Steps = quickSteps
			cfg.Sampler.Burn = quickBurn
			cfg.Sampler.Seed = seed

			return executeFit(cmd.Context(), cfg, "")
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "demo", "output directory")
	cmd.Flags().Int64Var(&seed, "seed", defaultRunConfig().Sampler.Seed, "sampler seed")

	return cmd
}
