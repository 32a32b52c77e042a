package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "lgpdfit",
		Short:         "Fit low-gravity phenomenological decoherence models to cosmological data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A local .env may carry PLC_ROOT/CLIK_PATH; its absence is normal.
			_ = godotenv.Load()

			var (
				zl  *zap.Logger
				err error
			)
			if debug {
				zl, err = zap.NewDevelopment()
			} else {
				zl, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = zl.Sugar()

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose development logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newFitCmd())
	root.AddCommand(newBinCmd())
	root.AddCommand(newDiagnoseCmd())

	return root
}
