package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lowgrav/lgpd/dataset"
	"github.com/lowgrav/lgpd/spectrum"
)

func newBinCmd() *cobra.Command {
	var (
		inPath  string
		outDir  string
		binStep int
	)

	cmd := &cobra.Command{
		Use:   "bin",
		Short: "Bin a baseline spectrum archive into CSV bandpowers",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := spectrum.LoadNPZ(inPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory %s: %w", outDir, err)
			}

			files := map[spectrum.Channel]string{
				spectrum.TT: fileCMBTT,
				spectrum.TE: fileCMBTE,
				spectrum.EE: fileCMBEE,
			}
			for ch, name := range files {
				dl := spectrum.ClToDl(base.Ell, base.Channel(ch))
				centers, means, sigmas, err := spectrum.BinChannel(base.Ell, dl, binStep)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, name)
				bp := dataset.Bandpowers{Ell: centers, Dl: means, Sigma: sigmas}
				if err := dataset.WriteBandpowersCSV(path, bp); err != nil {
					return err
				}
				logger.Infow("bandpowers written", "channel", ch, "path", path, "bins", len(centers))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "baseline spectrum archive (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&binStep, "step", 30, "multipoles per bin")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
