package scenario

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"career-engine/internal/model"
)

// allocationTolerance is how far the provider allocations may drift from 100
// before a warning is raised.
const allocationTolerance = 0.5

// Validate reports every field of cfg the simulation cannot run with. The
// returned error is a *multierror.Error wrapping *model.ErrInvalidArgument
// values, or nil.
func Validate(cfg *model.ScenarioConfig) error {
	var result *multierror.Error
	add := func(err error) {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	if cfg.NumStudents < 1 {
		add(&model.ErrInvalidArgument{Name: "num_students", Value: cfg.NumStudents, Message: "must be at least 1"})
	}
	if cfg.NumCruises < 0 {
		add(&model.ErrInvalidArgument{Name: "num_cruises", Value: cfg.NumCruises, Message: "must be non-negative"})
	}
	if cfg.SalaryModel != model.SalaryModelLadder && cfg.SalaryModel != model.SalaryModelIncrease {
		add(&model.ErrInvalidArgument{
			Name:    "salary_model",
			Value:   cfg.SalaryModel,
			Message: fmt.Sprintf("must be %q or %q", model.SalaryModelLadder, model.SalaryModelIncrease),
		})
	}

	add(nonNegative("basic_training_cost", cfg.BasicTrainingCost))
	add(probability("basic_training_dropout_rate", cfg.BasicTrainingDropoutRate))
	add(duration("basic_training_duration", cfg.BasicTrainingDuration))

	if cfg.IncludeOfferStage {
		add(nonNegative("offer_stage_cost", cfg.OfferStageCost))
		add(probability("no_offer_rate", cfg.NoOfferRate))
		add(duration("offer_stage_duration", cfg.OfferStageDuration))
	}
	if cfg.IncludeAdvancedTraining {
		add(nonNegative("advanced_training_cost", cfg.AdvancedTrainingCost))
		add(probability("advanced_training_dropout_rate", cfg.AdvancedTrainingDropoutRate))
		add(duration("advanced_training_duration", cfg.AdvancedTrainingDuration))
	}
	if cfg.IncludeEarlyTermination {
		add(nonNegative("early_termination_cost", cfg.EarlyTerminationCost))
		add(probability("early_termination_rate", cfg.EarlyTerminationRate))
		add(duration("early_termination_duration", cfg.EarlyTerminationDuration))
	}
	if cfg.IncludeBreaks {
		add(probability("break_dropout_rate", cfg.BreakDropoutRate))
		add(duration("break_duration", cfg.BreakDuration))
	}
	if cfg.SalaryModel == model.SalaryModelIncrease {
		add(nonNegative("subsequent_salary_variation_pct", cfg.SubsequentSalaryVariationPct))
	}

	for _, terms := range cfg.ProviderTerms() {
		prefix := providerPrefix(terms.Provider)
		add(nonNegative(prefix+"_allocation_pct", terms.AllocationPct))
		add(probability(prefix+"_cruise_dropout_rate", terms.CruiseDropoutRate))
		add(duration(prefix+"_cruise_duration", terms.CruiseDuration))
		add(nonNegative(prefix+"_salary_variation_pct", terms.SalaryVariation))
		add(probability(prefix+"_payment_fraction", terms.PaymentFraction))
		for i, salary := range terms.Salaries {
			add(nonNegative(fmt.Sprintf("%s_salaries[%d]", prefix, i), salary))
		}
	}

	return result.ErrorOrNil()
}

// Warnings returns non-fatal observations about cfg. The caller owns range
// checks on allocations; they are reported here, never enforced.
func Warnings(cfg *model.ScenarioConfig) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	total := cfg.DisneyAllocationPct + cfg.CostaAllocationPct
	if total <= 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeNoProviderAllocated,
			Message: "No provider has a positive allocation; providers are drawn uniformly",
		})
	} else if math.Abs(total-100) > allocationTolerance {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeAllocationNot100,
			Message: fmt.Sprintf("Provider allocations sum to %.2f%%, draws are normalised to their total", total),
		})
	}

	if cfg.SalaryModel == model.SalaryModelLadder {
		for _, terms := range cfg.ProviderTerms() {
			if len(terms.Salaries) < cfg.NumCruises {
				msgs = append(msgs, model.CalculationMessage{
					Level:   model.LevelWarning,
					Code:    model.CodeLadderTruncated,
					Message: fmt.Sprintf("%s salary ladder has %d entries, simulating %d of %d cruises", terms.Provider, len(terms.Salaries), len(terms.Salaries), cfg.NumCruises),
				})
			}
		}
	}

	return msgs
}

func nonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) {
		return &model.ErrInvalidArgument{Name: name, Value: v, Message: "must be non-negative"}
	}
	return nil
}

func probability(name string, v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return &model.ErrInvalidArgument{Name: name, Value: v, Message: "must be within [0, 1]"}
	}
	return nil
}

func duration(name string, months int) error {
	if months < 1 {
		return &model.ErrInvalidArgument{Name: name, Value: months, Message: "must be at least 1 month"}
	}
	return nil
}

func providerPrefix(p model.Provider) string {
	switch p {
	case model.ProviderDisney:
		return "disney"
	case model.ProviderCosta:
		return "costa"
	}
	return string(p)
}
