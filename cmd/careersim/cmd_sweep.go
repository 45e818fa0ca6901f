package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare outcomes for 1 to --max-cruises cruises",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			maxCruises, _ := cmd.Flags().GetInt("max-cruises")

			cfg, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			res, err := newRunner().Sweep(cmd.Context(), &cfg, maxCruises)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			printSweep(cmd.OutOrStdout(), res)
			return nil
		},
	}
	addScenarioFlags(cmd)
	cmd.Flags().Int("max-cruises", 6, "Largest cruise count to simulate")
	return cmd
}
