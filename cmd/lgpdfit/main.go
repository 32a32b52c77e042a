// lgpdfit is the command-line driver of the LGPD fitting pipeline:
// synthetic demos, multiprobe MCMC fits, bandpower binning, and
// posterior diagnostics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lgpdfit:", err)
		os.Exit(1)
	}
}
