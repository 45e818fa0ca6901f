package scenario

import (
	"fmt"

	"github.com/pkg/errors"

	"career-engine/internal/model"
)

const (
	NameTraining         = "Training"
	NameOfferStage       = "Offer Stage"
	NamePlacement        = "Transportation and placement"
	NameEarlyTermination = "Early Termination"
)

// Build validates cfg and expands it into the ordered state sequence. Shared
// states come first, followed by each provider's full cruise ladder; a trial
// walks only one of the ladders.
func Build(cfg *model.ScenarioConfig) ([]model.StateConfig, error) {
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}

	states := []model.StateConfig{{
		Kind:               model.KindTraining,
		Name:               NameTraining,
		Cost:               cfg.BasicTrainingCost,
		DropoutProbability: cfg.BasicTrainingDropoutRate,
		DurationMonths:     cfg.BasicTrainingDuration,
	}}

	if cfg.IncludeOfferStage {
		states = append(states, model.StateConfig{
			Kind:               model.KindOfferStage,
			Name:               NameOfferStage,
			Cost:               cfg.OfferStageCost,
			DropoutProbability: cfg.NoOfferRate,
			DurationMonths:     cfg.OfferStageDuration,
		})
	}

	if cfg.IncludeAdvancedTraining {
		states = append(states, model.StateConfig{
			Kind:               model.KindPlacement,
			Name:               NamePlacement,
			Cost:               cfg.AdvancedTrainingCost,
			DropoutProbability: cfg.AdvancedTrainingDropoutRate,
			DurationMonths:     cfg.AdvancedTrainingDuration,
		})
	}

	if cfg.IncludeEarlyTermination {
		states = append(states, model.StateConfig{
			Kind:               model.KindEarlyTermination,
			Name:               NameEarlyTermination,
			Cost:               cfg.EarlyTerminationCost,
			DropoutProbability: cfg.EarlyTerminationRate,
			DurationMonths:     cfg.EarlyTerminationDuration,
		})
	}

	for _, terms := range cfg.ProviderTerms() {
		states = append(states, ladder(cfg, terms)...)
	}

	return states, nil
}

// ladder emits one provider's cruises, with breaks between consecutive
// cruises when enabled.
func ladder(cfg *model.ScenarioConfig, terms model.ProviderTerms) []model.StateConfig {
	n := cfg.NumCruises
	if cfg.SalaryModel == model.SalaryModelLadder && len(terms.Salaries) < n {
		n = len(terms.Salaries)
	}
	if len(terms.Salaries) == 0 {
		n = 0
	}

	var states []model.StateConfig
	for k := 1; k <= n; k++ {
		cruise := model.StateConfig{
			Kind:               model.KindCruiseLeg,
			Name:               fmt.Sprintf("%s Cruise %d", terms.Provider, k),
			Provider:           terms.Provider,
			CruiseNumber:       k,
			DropoutProbability: terms.CruiseDropoutRate,
			DurationMonths:     terms.CruiseDuration,
			PaymentFraction:    terms.PaymentFraction,
			SalaryVariationPct: terms.SalaryVariation,
		}
		switch {
		case cfg.SalaryModel == model.SalaryModelLadder:
			cruise.BaseSalary = terms.Salaries[k-1]
		case k == 1:
			cruise.BaseSalary = terms.Salaries[0]
		default:
			cruise.SalaryFromPrevious = true
			cruise.SalaryIncreasePct = cfg.SubsequentSalaryIncreasePct
			cruise.SalaryVariationPct = cfg.SubsequentSalaryVariationPct
		}
		states = append(states, cruise)

		if cfg.IncludeBreaks && k < n {
			states = append(states, model.StateConfig{
				Kind:               model.KindBreak,
				Name:               fmt.Sprintf("%s Break %d", terms.Provider, k),
				Provider:           terms.Provider,
				DropoutProbability: cfg.BreakDropoutRate,
				DurationMonths:     cfg.BreakDuration,
			})
		}
	}
	return states
}
