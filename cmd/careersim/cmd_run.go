package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"career-engine/internal/model"
	"career-engine/internal/scenario"
)

type runOutput struct {
	Scenario model.ScenarioConfig       `json:"scenario"`
	Warnings []model.CalculationMessage `json:"warnings"`
	Result   *model.AggregateResult     `json:"result"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a batch of students and print aggregate metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			warnings := scenario.Warnings(&cfg)

			res, err := newRunner().Run(cmd.Context(), &cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if warnings == nil {
					warnings = []model.CalculationMessage{}
				}
				return json.NewEncoder(out).Encode(runOutput{Scenario: cfg, Warnings: warnings, Result: res})
			}

			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w.Message)
			}
			printAggregate(out, res)
			return nil
		},
	}
	addScenarioFlags(cmd)
	return cmd
}
