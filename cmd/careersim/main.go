package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"career-engine/internal/config"
	"career-engine/internal/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "careersim",
		Short: "Career progression simulator",
		Long: `careersim runs Monte Carlo simulations of a training and cruise
employment pipeline and reports completion, repayment and return metrics.

Scenarios start from the defaults or a named preset and may be overridden
from a YAML file and flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := config.ConfigureLogging(cfg.LogLevel); err != nil {
				return err
			}
			// Keep stdout for results.
			log.SetOutput(cmd.ErrOrStderr())
			workers = cfg.Workers
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Process config file (workers, log level)")

	rootCmd.AddCommand(
		newRunCmd(),
		newTraceCmd(),
		newSweepCmd(),
		newCompareCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

// workers is filled in from the process config before any command runs.
var workers int

func newRunner() *engine.Runner {
	return engine.NewRunner(engine.WithWorkers(workers))
}
