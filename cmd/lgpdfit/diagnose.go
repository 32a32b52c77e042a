package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lowgrav/lgpd/diagnostics"
	"github.com/lowgrav/lgpd/npz"
)

func newDiagnoseCmd() *cobra.Command {
	var (
		chainPath  string
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Compute convergence diagnostics for a posterior chain archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := npz.ReadFile(chainPath)
			if err != nil {
				return err
			}

			chain, ok := arrays["chain"]
			if !ok {
				return fmt.Errorf("%s: missing chain member", chainPath)
			}
			logprob, ok := arrays["logprob"]
			if !ok {
				return fmt.Errorf("%s: missing logprob member", chainPath)
			}
			if len(chain.Shape) != 2 {
				return fmt.Errorf("%s: chain must be 2-D, got shape %v", chainPath, chain.Shape)
			}

			n, dim := chain.Shape[0], chain.Shape[1]
			samples := make([][]float64, n)
			for i := 0; i < n; i++ {
				samples[i] = chain.Data[i*dim : (i+1)*dim]
			}

			report, err := diagnostics.BuildReport(samples, logprob.Data)
			if err != nil {
				return err
			}
			if err := report.WriteJSON(reportPath); err != nil {
				return err
			}

			logger.Infow("diagnostics written",
				"chain", chainPath,
				"report", reportPath,
				"samples", report.NSamples,
				"params", report.NParams,
				"split_rhat", report.SplitRHat,
				"converged", report.Converged,
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&chainPath, "chain", "c", "", "posterior chain archive (required)")
	cmd.Flags().StringVarP(&reportPath, "out", "o", "report.json", "report output path")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}
