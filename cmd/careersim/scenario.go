package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"career-engine/internal/model"
	"career-engine/internal/scenario"
)

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("scenario", "s", "", "YAML scenario file")
	cmd.Flags().StringP("preset", "p", "", "Preset to start from (baseline, optimistic, pessimistic)")
	cmd.Flags().IntP("students", "n", 0, "Number of simulated students")
	cmd.Flags().Int64("seed", 0, "Base random seed")
}

// scenarioFromFlags resolves the scenario selected on the command line: the
// preset or file first, then --students and --seed when given.
func scenarioFromFlags(cmd *cobra.Command) (model.ScenarioConfig, error) {
	file, _ := cmd.Flags().GetString("scenario")
	preset, _ := cmd.Flags().GetString("preset")

	var cfg model.ScenarioConfig
	var err error
	switch {
	case file != "" && preset != "":
		return cfg, errors.New("cannot specify both --scenario and --preset")
	case file != "":
		cfg, err = scenario.LoadFile(file)
	default:
		cfg, err = scenario.Resolve(preset, nil)
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("students") {
		cfg.NumStudents, _ = cmd.Flags().GetInt("students")
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.RandomSeed = &seed
	}
	return cfg, nil
}

// scenarioFromArg treats arg as a YAML file when one exists at that path and
// as a preset name otherwise.
func scenarioFromArg(arg string) (model.ScenarioConfig, error) {
	if _, err := os.Stat(arg); err == nil {
		return scenario.LoadFile(arg)
	}
	return scenario.Resolve(arg, nil)
}
