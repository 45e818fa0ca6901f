package scenario

import (
	"sort"

	"career-engine/internal/model"
)

// Preset is a named starting scenario.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	build       func() model.ScenarioConfig
}

// Config returns a fresh copy of the preset's scenario.
func (p Preset) Config() model.ScenarioConfig {
	return p.build()
}

var registry = map[string]Preset{
	"baseline": {
		Name:        "Baseline",
		Description: "Moderate assumptions about cruise career progression.",
		build:       baseline,
	},
	"optimistic": {
		Name:        "Optimistic",
		Description: "Favorable conditions with higher salaries and lower dropout rates.",
		build:       optimistic,
	},
	"pessimistic": {
		Name:        "Pessimistic",
		Description: "Challenging conditions with lower salaries and higher dropout rates.",
		build:       pessimistic,
	},
}

func Get(name string) (Preset, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered preset keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func baseline() model.ScenarioConfig {
	cfg := model.DefaultScenario()
	cfg.NumCruises = 4
	return cfg
}

func optimistic() model.ScenarioConfig {
	cfg := model.DefaultScenario()
	cfg.BasicTrainingDropoutRate = 0.05
	cfg.AdvancedTrainingDropoutRate = 0.08
	cfg.NumCruises = 5
	cfg.SubsequentSalaryIncreasePct = 15
	cfg.SubsequentSalaryVariationPct = 4

	cfg.DisneySalaries = []float64{5800, 6400, 7000, 7600, 8200}
	cfg.DisneyCruiseDropoutRate = 0.02
	cfg.DisneySalaryVariation = 4
	cfg.DisneyPaymentFraction = 0.15

	cfg.CostaSalaries = []float64{5200, 5600, 6000, 6400, 6800}
	cfg.CostaCruiseDropoutRate = 0.02
	cfg.CostaSalaryVariation = 4
	cfg.CostaPaymentFraction = 0.15
	return cfg
}

func pessimistic() model.ScenarioConfig {
	cfg := model.DefaultScenario()
	cfg.BasicTrainingDropoutRate = 0.15
	cfg.AdvancedTrainingDropoutRate = 0.20
	cfg.NumCruises = 3
	cfg.SubsequentSalaryIncreasePct = 8
	cfg.SubsequentSalaryVariationPct = 7

	cfg.DisneySalaries = []float64{4500, 4800, 5100}
	cfg.DisneyCruiseDropoutRate = 0.05
	cfg.DisneySalaryVariation = 8
	cfg.DisneyPaymentFraction = 0.12

	cfg.CostaSalaries = []float64{4000, 4250, 4500}
	cfg.CostaCruiseDropoutRate = 0.05
	cfg.CostaSalaryVariation = 8
	cfg.CostaPaymentFraction = 0.12
	return cfg
}
