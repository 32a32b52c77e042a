package main

import (
	"github.com/spf13/cobra"

	"github.com/lowgrav/lgpd/mcmc"
)

// Quick-mode sampler settings for smoke fits.
const (
	quickSteps = 200
	quickBurn  = 50
)

func newFitCmd() *cobra.Command {
	var (
		configPath string
		quick      bool
		seed       int64
		resumeID   string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Run a multiprobe MCMC fit described by a YAML run file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}
			if quick {
				cfg.Sampler.Steps = quickSteps
				cfg.Sampler.Burn = quickBurn
			}
			if cmd.Flags().Changed("seed") {
				cfg.Sampler.Seed = seed
			}

			return executeFit(cmd.Context(), cfg, resumeID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run file (required)")
	cmd.Flags().BoolVar(&quick, "quick", false, "reduced step count for smoke fits")
	cmd.Flags().Int64Var(&seed, "seed", mcmc.DefaultSeed, "override the run file's sampler seed")
	cmd.Flags().StringVar(&resumeID, "resume", "", "resume a recorded run from its last checkpoint")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
