package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the state-by-state path of one simulated student",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			trace, err := newRunner().Trace(cmd.Context(), &cfg)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(trace)
			}
			printTrace(cmd.OutOrStdout(), trace)
			return nil
		},
	}
	addScenarioFlags(cmd)
	return cmd
}
